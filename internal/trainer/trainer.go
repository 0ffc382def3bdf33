package trainer

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/kestrelgames/russianbank/internal/ai"
	"github.com/kestrelgames/russianbank/internal/checkpoint"
	"github.com/kestrelgames/russianbank/internal/logger"
)

// Config holds every trainer-tunable parameter. The first eight fields are
// written to a checkpoint as checkpoint.ConfigRecord (and Seed to the
// checkpoint itself); Resume does not read them back, so the Config passed
// to New stays in effect for a resumed run.
type Config struct {
	PopulationSize     int
	GamesPerEvaluation int
	MutationRate       float64
	MutationStrength   float64
	EliteCount         int
	TournamentSize     int
	MaxTurnsPerGame    int
	CheckpointInterval int
	Generations        int
	Workers            int
	DecisionCfg        ai.Config
	Seed               int64
}

func (c Config) toRecord() checkpoint.ConfigRecord {
	return checkpoint.ConfigRecord{
		PopulationSize:     c.PopulationSize,
		GamesPerEvaluation: c.GamesPerEvaluation,
		MutationRate:       c.MutationRate,
		MutationStrength:   c.MutationStrength,
		EliteCount:         c.EliteCount,
		TournamentSize:     c.TournamentSize,
		MaxTurnsPerGame:    c.MaxTurnsPerGame,
		CheckpointInterval: c.CheckpointInterval,
	}
}

// GenerationSummary is one entry of the training run's history log, kept
// as its own exported type (rather than reusing checkpoint's wire type
// directly) so a future report-generation collaborator can depend on
// trainer without depending on the checkpoint package's JSON shape.
type GenerationSummary struct {
	Number          int
	BestFitness     float64
	AvgFitness      float64
	BestWeightsDiff float64
}

// Trainer runs the generation loop: evaluate, log, reproduce,
// checkpoint. It holds all coordinator-owned shared state (population,
// history, generation counter) and touches it only between generations,
// never from inside a fitness evaluation's worker pool.
type Trainer struct {
	cfg      Config
	store    checkpoint.Store
	baseline ai.Weights
	rng      *rand.Rand

	population       []Individual
	allTimeBest      Individual
	history          []GenerationSummary
	generation       int
	startTime        time.Time
	totalGamesPlayed int
}

// New builds a Trainer against store, ready for either Resume or a fresh
// Run starting at generation zero.
func New(cfg Config, store checkpoint.Store) *Trainer {
	return &Trainer{
		cfg:      cfg,
		store:    store,
		baseline: ai.DefaultWeights(),
		rng:      rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Resume loads the store's checkpoint, if one of the current schema
// version exists, and restores population/history/generation from it.
// It reports whether a checkpoint was found.
func (t *Trainer) Resume(ctx context.Context) (bool, error) {
	cp, ok, err := t.store.Load(ctx)
	if err != nil || !ok {
		return false, err
	}

	t.population = individualsFromRecords(cp.Population)
	t.allTimeBest = individualFromRecord(cp.AllTimeBest)
	t.generation = cp.CurrentGeneration
	t.startTime = cp.StartTime
	t.totalGamesPlayed = cp.TotalGamesPlayed
	t.history = historyFromRecords(cp.GenerationHistory)
	return true, nil
}

// Run executes generations until cfg.Generations completes, or ctx is
// cancelled at a generation boundary, in which case Run checkpoints the
// current population and returns. A second, harder shutdown signal is
// the caller's signal handler's responsibility, not Run's: Run only ever
// checks ctx once per generation.
func (t *Trainer) Run(ctx context.Context) error {
	if t.population == nil {
		t.population = InitializePopulation(t.cfg.PopulationSize, t.rng)
		t.startTime = time.Now()
	}

	for t.generation < t.cfg.Generations {
		select {
		case <-ctx.Done():
			return t.checkpoint(ctx)
		default:
		}

		seeds := make([]int64, t.cfg.GamesPerEvaluation)
		for i := range seeds {
			seeds[i] = t.rng.Int63()
		}

		evalCfg := EvaluationConfig{
			GamesPerEvaluation: t.cfg.GamesPerEvaluation,
			MaxTurnsPerGame:    t.cfg.MaxTurnsPerGame,
			Workers:            t.cfg.Workers,
			DecisionCfg:        t.cfg.DecisionCfg,
		}

		for i := range t.population {
			t.population[i] = EvaluateFitness(t.population[i], t.baseline, seeds, evalCfg)
			t.totalGamesPlayed += t.population[i].GamesPlayed
		}

		sortByFitnessDesc(t.population)
		best := t.population[0]
		if t.allTimeBest.GamesPlayed == 0 || best.Fitness > t.allTimeBest.Fitness {
			t.allTimeBest = best
		}

		summary := GenerationSummary{
			Number:          t.generation,
			BestFitness:     best.Fitness,
			AvgFitness:      averageFitness(t.population),
			BestWeightsDiff: weightsDiff(best.Weights, t.baseline),
		}
		t.history = append(t.history, summary)

		logger.ForGeneration(logger.WithGeneration(ctx, t.generation)).Info().
			Float64("bestFitness", summary.BestFitness).
			Float64("avgFitness", summary.AvgFitness).
			Float64("bestWeightsDiff", summary.BestWeightsDiff).
			Msg("generation complete")

		t.population = Reproduce(t.population, t.cfg.EliteCount, t.cfg.TournamentSize, t.cfg.MutationRate, t.cfg.MutationStrength, t.rng)
		t.generation++

		if t.cfg.CheckpointInterval > 0 && t.generation%t.cfg.CheckpointInterval == 0 {
			if err := t.checkpoint(ctx); err != nil {
				return err
			}
		}
	}

	return t.checkpoint(ctx)
}

// AllTimeBest returns the fittest individual seen across the run so far.
func (t *Trainer) AllTimeBest() Individual {
	return t.allTimeBest
}

func (t *Trainer) checkpoint(ctx context.Context) error {
	if len(t.population) == 0 {
		return nil
	}
	cp := checkpoint.Checkpoint{
		Version:           checkpoint.CurrentVersion,
		Config:            t.cfg.toRecord(),
		CurrentGeneration: t.generation,
		BestIndividual:    individualToRecord(t.population[0]),
		AllTimeBest:       individualToRecord(t.allTimeBest),
		Population:        individualsToRecords(t.population),
		GenerationHistory: historyToRecords(t.history),
		StartTime:         t.startTime,
		TotalGamesPlayed:  t.totalGamesPlayed,
		Seed:              t.cfg.Seed,
	}
	return t.store.Save(ctx, cp)
}

func averageFitness(pop []Individual) float64 {
	if len(pop) == 0 {
		return 0
	}
	var sum float64
	for _, ind := range pop {
		sum += ind.Fitness
	}
	return sum / float64(len(pop))
}

// weightsDiff is the sum of absolute per-feature differences between a
// and b, a coarse measure of how far training has drifted from baseline.
func weightsDiff(a, b ai.Weights) float64 {
	var sum float64
	for f := ai.Feature(0); f < ai.NumFeatures; f++ {
		sum += math.Abs(a[f] - b[f])
	}
	return sum
}

func individualToRecord(ind Individual) checkpoint.IndividualRecord {
	return checkpoint.IndividualRecord{
		Weights:     ind.Weights.ToMap(),
		Wins:        ind.Wins,
		Losses:      ind.Losses,
		Draws:       ind.Draws,
		GamesPlayed: ind.GamesPlayed,
		Fitness:     ind.Fitness,
	}
}

func individualFromRecord(r checkpoint.IndividualRecord) Individual {
	return Individual{
		Weights:     ai.FromMap(r.Weights),
		Wins:        r.Wins,
		Losses:      r.Losses,
		Draws:       r.Draws,
		GamesPlayed: r.GamesPlayed,
		Fitness:     r.Fitness,
	}
}

func individualsToRecords(pop []Individual) []checkpoint.IndividualRecord {
	out := make([]checkpoint.IndividualRecord, len(pop))
	for i, ind := range pop {
		out[i] = individualToRecord(ind)
	}
	return out
}

func individualsFromRecords(records []checkpoint.IndividualRecord) []Individual {
	out := make([]Individual, len(records))
	for i, r := range records {
		out[i] = individualFromRecord(r)
	}
	return out
}

func historyToRecords(history []GenerationSummary) []checkpoint.GenerationSummary {
	out := make([]checkpoint.GenerationSummary, len(history))
	for i, h := range history {
		out[i] = checkpoint.GenerationSummary{
			Number:          h.Number,
			BestFitness:     h.BestFitness,
			AvgFitness:      h.AvgFitness,
			BestWeightsDiff: h.BestWeightsDiff,
		}
	}
	return out
}

func historyFromRecords(records []checkpoint.GenerationSummary) []GenerationSummary {
	out := make([]GenerationSummary, len(records))
	for i, r := range records {
		out[i] = GenerationSummary{
			Number:          r.Number,
			BestFitness:     r.BestFitness,
			AvgFitness:      r.AvgFitness,
			BestWeightsDiff: r.BestWeightsDiff,
		}
	}
	return out
}
