// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"testing"
	"time"

	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
)

// fakeSweeper stands in for a background maintenance job and counts starts.
type fakeSweeper struct {
	name   string
	starts int
	log    *[]string
}

func (f *fakeSweeper) Run() {
	f.starts++
	if f.log != nil {
		*f.log = append(*f.log, f.name)
	}
}

func TestWorkers_Run_StartsEveryWorker(t *testing.T) {
	maps := &fakeSweeper{name: "maps"}
	cache := &fakeSweeper{name: "cache"}

	ws := &Workers{workers: []Worker{maps, cache}}
	ws.Run()

	for _, w := range []*fakeSweeper{maps, cache} {
		if w.starts != 1 {
			t.Errorf("worker %q: expected 1 start, got %d", w.name, w.starts)
		}
	}
}

func TestWorkers_Run_StartOrderIsDeclarationOrder(t *testing.T) {
	var started []string

	ws := &Workers{workers: []Worker{
		&fakeSweeper{name: "maps", log: &started},
		&fakeSweeper{name: "cache", log: &started},
		&fakeSweeper{name: "sessions", log: &started},
	}}
	ws.Run()

	expected := []string{"maps", "cache", "sessions"}
	if len(started) != len(expected) {
		t.Fatalf("expected %d starts, got %d", len(expected), len(started))
	}
	for i, name := range expected {
		if started[i] != name {
			t.Errorf("start[%d]: expected %q, got %q", i, name, started[i])
		}
	}
}

func TestWorkers_Run_NoWorkers(t *testing.T) {
	// Neither an empty list nor a zero value may panic.
	(&Workers{workers: []Worker{}}).Run()
	(&Workers{}).Run()
}

func TestWorkers_Run_RepeatedRunsRestart(t *testing.T) {
	sweeper := &fakeSweeper{name: "maps"}
	ws := &Workers{workers: []Worker{sweeper}}

	ws.Run()
	ws.Run()

	if sweeper.starts != 2 {
		t.Errorf("expected 2 starts after 2 runs, got %d", sweeper.starts)
	}
}

func TestNewWorkers_JanitorFollowsInterval(t *testing.T) {
	enabled := NewWorkers(config.Workers{
		JanitorInterval: time.Hour,
		ArtifactMaxAge:  24 * time.Hour,
	}, t.TempDir(), logger.Nop())
	if len(enabled.workers) != 1 {
		t.Errorf("expected the janitor with a positive interval, got %d workers", len(enabled.workers))
	}

	// A zero interval disables the janitor.
	disabled := NewWorkers(config.Workers{}, t.TempDir(), logger.Nop())
	if len(disabled.workers) != 0 {
		t.Errorf("expected no workers with a zero interval, got %d", len(disabled.workers))
	}
}
