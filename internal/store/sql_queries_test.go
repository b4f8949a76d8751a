// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/vheb/biomap/models"
)

func TestBuildInsertSpecies(t *testing.T) {
	query, args, err := buildInsertSpecies(models.Species{ScientificName: "Panthera onca"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(query, "INSERT INTO species") {
		t.Errorf("unexpected query prefix: %s", query)
	}
	if !strings.Contains(query, "RETURNING species_id, created_at") {
		t.Errorf("expected RETURNING clause, got: %s", query)
	}
	// every column except species_id and created_at
	if want := len(speciesColumns) - 2; len(args) != want {
		t.Errorf("expected %d args, got %d", want, len(args))
	}
	if !strings.Contains(query, `"order"`) || !strings.Contains(query, `"group"`) {
		t.Errorf("reserved-word columns must stay quoted: %s", query)
	}
}

func TestBuildSelectSpecies_OrdersByID(t *testing.T) {
	query, args, err := buildSelectSpecies(map[string]any{"species_id": int64(1)}, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(query, "ORDER BY species_id") {
		t.Errorf("expected deterministic ordering, got: %s", query)
	}
	if !strings.Contains(query, "LIMIT 1") {
		t.Errorf("expected limit, got: %s", query)
	}
	if len(args) != 1 {
		t.Errorf("expected 1 arg, got %d", len(args))
	}
}

func TestBuildSuggestNames_FieldSelection(t *testing.T) {
	tests := []struct {
		name      string
		mode      models.SuggestionMode
		wantField string
	}{
		{"common name mode", models.SuggestByCommonName, "common_name ILIKE"},
		{"scientific name mode", models.SuggestByScientificName, "scientific_name ILIKE"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			query, args, err := buildSuggestNames("muri", test.mode, 20)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(query, test.wantField) {
				t.Errorf("expected %q in query: %s", test.wantField, query)
			}
			if len(args) != 1 || args[0] != "%muri%" {
				t.Errorf("expected wildcard-wrapped arg, got %v", args)
			}
		})
	}
}
