package trainer

import (
	"context"
	"testing"

	"github.com/kestrelgames/russianbank/internal/ai"
	"github.com/kestrelgames/russianbank/internal/checkpoint"
)

// memStore is a minimal in-memory checkpoint.Store for exercising
// Trainer.Run/Resume without touching a filesystem, database, or Redis.
type memStore struct {
	saved *checkpoint.Checkpoint
}

func (m *memStore) Save(ctx context.Context, cp checkpoint.Checkpoint) error {
	saved := cp
	m.saved = &saved
	return nil
}

func (m *memStore) Load(ctx context.Context) (*checkpoint.Checkpoint, bool, error) {
	if m.saved == nil {
		return nil, false, nil
	}
	return m.saved, true, nil
}

func testConfig() Config {
	return Config{
		PopulationSize:     4,
		GamesPerEvaluation: 1,
		MutationRate:       0.2,
		MutationStrength:   0.1,
		EliteCount:         1,
		TournamentSize:     2,
		MaxTurnsPerGame:    200,
		CheckpointInterval: 1,
		Generations:        2,
		Workers:            2,
		DecisionCfg:        ai.DefaultConfig(),
		Seed:               99,
	}
}

func TestTrainerRunProducesHistoryAndCheckpoint(t *testing.T) {
	store := &memStore{}
	tr := New(testConfig(), store)

	if err := tr.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(tr.history) != 2 {
		t.Fatalf("len(history) = %d, want 2 generations", len(tr.history))
	}
	if store.saved == nil {
		t.Fatal("expected a checkpoint to have been saved")
	}
	if store.saved.CurrentGeneration != 2 {
		t.Errorf("saved CurrentGeneration = %d, want 2", store.saved.CurrentGeneration)
	}
	if len(store.saved.Population) != testConfig().PopulationSize {
		t.Errorf("saved population size = %d, want %d", len(store.saved.Population), testConfig().PopulationSize)
	}
}

func TestTrainerResumeRestoresGeneration(t *testing.T) {
	store := &memStore{}
	first := New(testConfig(), store)
	if err := first.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	resumed := New(testConfig(), store)
	found, err := resumed.Resume(context.Background())
	if err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if !found {
		t.Fatal("expected Resume to find the saved checkpoint")
	}
	if resumed.generation != first.generation {
		t.Errorf("resumed.generation = %d, want %d", resumed.generation, first.generation)
	}
	if len(resumed.population) != len(first.population) {
		t.Errorf("resumed population size = %d, want %d", len(resumed.population), len(first.population))
	}
}

func TestTrainerRunStopsEarlyOnCancelledContext(t *testing.T) {
	store := &memStore{}
	cfg := testConfig()
	cfg.Generations = 100
	tr := New(cfg, store)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := tr.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if tr.generation != 0 {
		t.Errorf("generation = %d, want 0 (cancelled before any generation ran)", tr.generation)
	}
	if store.saved == nil {
		t.Error("expected Run to checkpoint even when stopping immediately")
	}
}

func TestTrainerAllTimeBestFitnessIsMonotone(t *testing.T) {
	store := &memStore{}
	cfg := testConfig()
	cfg.Generations = 5
	tr := New(cfg, store)

	if err := tr.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	best := 0.0
	for i, gen := range tr.history {
		if gen.BestFitness > best {
			best = gen.BestFitness
		}
		if tr.allTimeBest.Fitness < best-1e-9 {
			t.Fatalf("after generation %d, allTimeBest.Fitness %v fell below the best-seen-so-far %v", i, tr.allTimeBest.Fitness, best)
		}
	}
}

func TestWeightsDiffZeroForIdenticalWeights(t *testing.T) {
	w := ai.DefaultWeights()
	if d := weightsDiff(w, w); d != 0 {
		t.Errorf("weightsDiff(w, w) = %v, want 0", d)
	}
}
