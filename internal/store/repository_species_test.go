package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"

	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/models"
)

func newTestSpeciesRepo(t *testing.T) (*speciesRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &speciesRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

// speciesRow builds a full sqlmock row in speciesColumns scan order.
func speciesRow(id int64, scientificName string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"species_id",
		"kingdom", "phylum", "class", "order", "family", "genus",
		"scientific_name", "previous_scientific_name", "author", "common_name",
		"group", "assessment_period", "category", "possibly_extinct",
		"criteria", "justification", "endemic_to_brazil", "on_national_list",
		"states", "region", "biome", "hydrographic_basin",
		"federal_protected_area", "state_protected_area", "private_reserve",
		"migratory", "population_trend", "threats", "uses",
		"conservation_actions", "action_plan", "treaty_lists",
		"submitter_id", "created_at",
	}).AddRow(
		id,
		"Animalia", "Chordata", "Mammalia", "Primates", "Atelidae", "Brachyteles",
		scientificName, "", "E. Geoffroy, 1806", "muriqui",
		"Mamiferos", "12/2014", "EN", false,
		"A2c", "justification text", true, true,
		"SP|RJ", "SUDESTE", "Mata Atlantica", "",
		"", "", "",
		false, "Declinando", "", "",
		"", "", "",
		int64(1), time.Now(),
	)
}

func TestCreateSpecies_Success(t *testing.T) {
	repo, mock, db := newTestSpeciesRepo(t)
	defer db.Close()

	ctx := context.Background()
	species := models.Species{
		Kingdom: "Animalia", Phylum: "Chordata", Class: "Mammalia",
		Order: "Primates", Family: "Atelidae", Genus: "Brachyteles",
		ScientificName: "Brachyteles arachnoides",
		SubmitterID:    1,
	}

	now := time.Now()

	mock.ExpectQuery("INSERT INTO species").
		WillReturnRows(sqlmock.NewRows([]string{"species_id", "created_at"}).AddRow(42, now))

	created, err := repo.CreateSpecies(ctx, species)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.SpeciesID != 42 {
		t.Errorf("expected SpeciesID=42, got %d", created.SpeciesID)
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected CreatedAt to be populated from the insert")
	}
}

func TestCreateSpecies_ScientificNameConflict(t *testing.T) {
	repo, mock, db := newTestSpeciesRepo(t)
	defer db.Close()

	ctx := context.Background()
	species := models.Species{ScientificName: "Brachyteles arachnoides"}

	mock.ExpectQuery("INSERT INTO species").
		WillReturnError(pgError(pgerrcode.UniqueViolation, "species_scientific_name_key"))

	_, err := repo.CreateSpecies(ctx, species)
	if !errors.Is(err, ErrScientificNameAlreadyExists) {
		t.Fatalf("expected ErrScientificNameAlreadyExists, got %v", err)
	}
}

func TestCreateSpecies_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestSpeciesRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO species").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateSpecies(ctx, models.Species{})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestGetSpeciesByID_Success(t *testing.T) {
	repo, mock, db := newTestSpeciesRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM species").
		WithArgs(int64(42)).
		WillReturnRows(speciesRow(42, "Brachyteles arachnoides"))

	found, err := repo.GetSpeciesByID(ctx, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ScientificName != "Brachyteles arachnoides" {
		t.Errorf("unexpected species: %+v", found)
	}
}

func TestFindByNameExact_NotFound(t *testing.T) {
	repo, mock, db := newTestSpeciesRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM species").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByNameExact(ctx, "Ghostus speciesus")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindByNameSubstring_Success(t *testing.T) {
	repo, mock, db := newTestSpeciesRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM species").
		WithArgs("%arachnoides%").
		WillReturnRows(speciesRow(42, "Brachyteles arachnoides"))

	found, err := repo.FindByNameSubstring(ctx, "arachnoides")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.SpeciesID != 42 {
		t.Errorf("expected SpeciesID=42, got %d", found.SpeciesID)
	}
}

func TestSuggestNames_CommonNameMode(t *testing.T) {
	repo, mock, db := newTestSpeciesRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT common_name, scientific_name FROM species").
		WithArgs("%muri%").
		WillReturnRows(sqlmock.
			NewRows([]string{"common_name", "scientific_name"}).
			AddRow("muriqui", "Brachyteles arachnoides").
			AddRow("muriqui-do-norte", "Brachyteles hypoxanthus"))

	suggestions, err := repo.SuggestNames(ctx, "muri", models.SuggestByCommonName, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("expected 2 suggestions, got %d", len(suggestions))
	}
	if suggestions[0].Scientific != "Brachyteles arachnoides" {
		t.Errorf("unexpected first suggestion: %+v", suggestions[0])
	}
}

func TestSuggestNames_EmptyResult(t *testing.T) {
	repo, mock, db := newTestSpeciesRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT common_name, scientific_name FROM species").
		WillReturnRows(sqlmock.NewRows([]string{"common_name", "scientific_name"}))

	suggestions, err := repo.SuggestNames(ctx, "zzz", models.SuggestByScientificName, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(suggestions))
	}
}

func TestListScientificNames_OrderedScan(t *testing.T) {
	repo, mock, db := newTestSpeciesRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT species_id, scientific_name").
		WillReturnRows(sqlmock.
			NewRows([]string{"species_id", "scientific_name"}).
			AddRow(1, "Brachyteles arachnoides").
			AddRow(2, "Panthera onca"))

	names, err := repo.ListScientificNames(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0].SpeciesID != 1 || names[1].ScientificName != "Panthera onca" {
		t.Errorf("unexpected names: %+v", names)
	}
}
