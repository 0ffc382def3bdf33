//go:build integration

package checkpoint

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/kestrelgames/russianbank/internal/testutil"
)

var testDB *sql.DB

func setupPostgres(t *testing.T) *PostgresStore {
	t.Helper()
	if testDB == nil {
		testDB = testutil.SetupDB(t)
	}
	testutil.CleanupDB(t, testDB)

	store := NewPostgresStore(testDB)
	if err := store.EnsureSchema(context.Background()); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return store
}

func sampleCheckpoint() Checkpoint {
	return Checkpoint{
		Version:           CurrentVersion,
		Config:            ConfigRecord{PopulationSize: 16, GamesPerEvaluation: 4},
		CurrentGeneration: 3,
		BestIndividual:    IndividualRecord{Fitness: 0.7, GamesPlayed: 8},
		AllTimeBest:       IndividualRecord{Fitness: 0.75, GamesPlayed: 40},
		Population:        []IndividualRecord{{Fitness: 0.7}, {Fitness: 0.5}},
		GenerationHistory: []GenerationSummary{{Number: 2, BestFitness: 0.65, AvgFitness: 0.4, BestWeightsDiff: 5}},
		StartTime:         time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		TotalGamesPlayed:  120,
		Seed:              7,
	}
}

func TestPostgresStoreLoadMissingReturnsNotFound(t *testing.T) {
	store := setupPostgres(t)

	got, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if found || got != nil {
		t.Fatalf("expected not found, got %+v", got)
	}
}

func TestPostgresStoreSaveThenLoadRoundTrip(t *testing.T) {
	store := setupPostgres(t)
	want := sampleCheckpoint()

	if err := store.Save(context.Background(), want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("expected found")
	}
	if got.CurrentGeneration != want.CurrentGeneration {
		t.Errorf("CurrentGeneration = %d, want %d", got.CurrentGeneration, want.CurrentGeneration)
	}
	if got.AllTimeBest.Fitness != want.AllTimeBest.Fitness {
		t.Errorf("AllTimeBest.Fitness = %v, want %v", got.AllTimeBest.Fitness, want.AllTimeBest.Fitness)
	}
}

func TestPostgresStoreLoadReturnsMostRecentRow(t *testing.T) {
	store := setupPostgres(t)

	first := sampleCheckpoint()
	first.CurrentGeneration = 1
	if err := store.Save(context.Background(), first); err != nil {
		t.Fatalf("Save first: %v", err)
	}

	second := sampleCheckpoint()
	second.CurrentGeneration = 2
	if err := store.Save(context.Background(), second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	got, found, err := store.Load(context.Background())
	if err != nil || !found {
		t.Fatalf("Load: found=%v err=%v", found, err)
	}
	if got.CurrentGeneration != 2 {
		t.Errorf("CurrentGeneration = %d, want 2 (most recent)", got.CurrentGeneration)
	}
}
