// Command train runs the evolutionary weight optimizer: a population of
// weight vectors self-plays against a fixed baseline over successive
// generations, reproduces with elitism, tournament selection, crossover,
// and mutation, and checkpoints its progress so a run can be resumed.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kestrelgames/russianbank/internal/ai"
	"github.com/kestrelgames/russianbank/internal/checkpoint"
	"github.com/kestrelgames/russianbank/internal/config"
	"github.com/kestrelgames/russianbank/internal/logger"
	"github.com/kestrelgames/russianbank/internal/repository/postgres"
	"github.com/kestrelgames/russianbank/internal/repository/redis"
	"github.com/kestrelgames/russianbank/internal/trainer"
)

func main() {
	logger.Init()

	var (
		generations int
		population  int
		evaluations int
		mutation    float64
		strength    float64
		checkpointN int
		output      string
		verbose     bool
		quick       bool
		overnight   bool
		elites      int
		tournament  int
		maxTurns    int
		workers     int
		seed        int64
	)

	flag.IntVar(&generations, "generations", 50, "Number of generations to run")
	flag.IntVar(&population, "population", 32, "Population size")
	flag.IntVar(&evaluations, "evaluations", 10, "Games per evaluation, per side")
	flag.Float64Var(&mutation, "mutation", 0.15, "Per-weight mutation probability")
	flag.Float64Var(&strength, "strength", 0.2, "Mutation strength, as a fraction of a weight's range")
	flag.IntVar(&checkpointN, "checkpoint", 5, "Checkpoint every N generations")
	flag.StringVar(&output, "output", "./checkpoints", "Checkpoint directory")
	flag.BoolVar(&verbose, "verbose", false, "Debug-level logging")
	flag.BoolVar(&quick, "quick", false, "Small population and few generations, for fast local iteration")
	flag.BoolVar(&overnight, "overnight", false, "Large population and many generations, for an unattended long run")
	flag.IntVar(&elites, "elites", 2, "Elite individuals carried unchanged each generation")
	flag.IntVar(&tournament, "tournament", 4, "Tournament selection size")
	flag.IntVar(&maxTurns, "max-turns", 400, "Turn cap per self-play game")
	flag.IntVar(&workers, "workers", 4, "Worker pool size for concurrent self-play games")
	flag.Int64Var(&seed, "seed", 0, "Base RNG seed (0 derives one from the current time)")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if quick {
		presetInt(&population, 8, explicit["population"])
		presetInt(&generations, 5, explicit["generations"])
		presetInt(&evaluations, 3, explicit["evaluations"])
	}
	if overnight {
		presetInt(&population, 128, explicit["population"])
		presetInt(&generations, 500, explicit["generations"])
		presetInt(&evaluations, 30, explicit["evaluations"])
	}

	if verbose {
		os.Setenv("LOG_LEVEL", "debug")
		logger.Init()
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := config.Load()
	if explicit["output"] {
		cfg.CheckpointDir = output
	} else if cfg.CheckpointDir != "" {
		output = cfg.CheckpointDir
	}

	store, closeStore, err := buildStore(cfg, output)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build checkpoint store")
	}
	defer closeStore()

	trainCfg := trainer.Config{
		PopulationSize:     population,
		GamesPerEvaluation: evaluations,
		MutationRate:       mutation,
		MutationStrength:   strength,
		EliteCount:         elites,
		TournamentSize:     tournament,
		MaxTurnsPerGame:    maxTurns,
		CheckpointInterval: checkpointN,
		Generations:        generations,
		Workers:            workers,
		DecisionCfg:        ai.DefaultConfig(),
		Seed:               seed,
	}

	tr := trainer.New(trainCfg, store)

	resumed, err := tr.Resume(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resume from checkpoint")
	}
	if resumed {
		log.Info().Msg("resumed training from an existing checkpoint")
	}

	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 2)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		log.Info().Msg("shutdown requested, finishing the current generation and checkpointing")
		cancel()
		<-sig
		log.Warn().Msg("second shutdown signal received, exiting immediately")
		os.Exit(1)
	}()

	if err := tr.Run(ctx); err != nil {
		log.Error().Err(err).Msg("training run failed")
		os.Exit(1)
	}

	best := tr.AllTimeBest()
	weightsPath := filepath.Join(output, "best.json")
	if err := ai.SaveWeightsFile(weightsPath, best.Weights, best.Fitness, time.Now()); err != nil {
		log.Error().Err(err).Msg("failed to export best weights file")
		os.Exit(1)
	}

	log.Info().Str("weights", weightsPath).Float64("fitness", best.Fitness).Msg("training run complete")
}

// presetInt applies value to target unless the corresponding flag was
// explicitly set on the command line, so --quick/--overnight only
// override flags the operator left at their defaults.
func presetInt(target *int, value int, explicit bool) {
	if !explicit {
		*target = value
	}
}

// buildStore selects a checkpoint.Store per cfg.CheckpointBackend. The
// returned close func releases any connection buildStore opened; it is a
// no-op for the file backend.
func buildStore(cfg *config.Config, outputDir string) (checkpoint.Store, func(), error) {
	switch cfg.CheckpointBackend {
	case "postgres":
		db, err := postgres.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		store := checkpoint.NewPostgresStore(db)
		if err := store.EnsureSchema(context.Background()); err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, func() { db.Close() }, nil

	case "redis":
		client, err := redis.NewClient(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		store := checkpoint.NewRedisStore(client.Underlying(), "")
		return store, func() { client.Close() }, nil

	default:
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return nil, nil, err
		}
		return checkpoint.FileStore{Dir: filepath.Clean(outputDir)}, func() {}, nil
	}
}
