// Package checkpoint persists and restores a training run's population
// and history so cmd/train can resume after an interruption.
package checkpoint

import (
	"context"
	"errors"
	"time"
)

// CurrentVersion is the schema version this build writes and expects to
// read. A stored checkpoint whose Version differs is rejected rather than
// guessed at.
const CurrentVersion = 1

// ErrUnsupportedVersion is returned by a Store when a loaded checkpoint's
// Version does not match CurrentVersion.
var ErrUnsupportedVersion = errors.New("checkpoint: unsupported schema version")

// IndividualRecord is the serializable form of one trained weight vector
// and its accumulated fitness statistics. Weights is keyed by feature
// name (internal/ai.Feature.String()) rather than by array index so a
// checkpoint remains readable if the feature schema grows, and matches
// the ai.Weights.ToMap/FromMap wire shape.
type IndividualRecord struct {
	Weights     map[string]float64 `json:"weights"`
	Wins        int                `json:"wins"`
	Losses      int                `json:"losses"`
	Draws       int                `json:"draws"`
	GamesPlayed int                `json:"gamesPlayed"`
	Fitness     float64            `json:"fitness"`
}

// GenerationSummary is one entry of the training run's history log, per
// the (number, bestFitness, avgFitness, bestWeightsDiff) tuple.
// BestWeightsDiff is the sum of absolute per-feature differences between
// the generation's best individual and the baseline reference weights,
// a coarse measure of how far training has drifted.
type GenerationSummary struct {
	Number          int     `json:"number"`
	BestFitness     float64 `json:"bestFitness"`
	AvgFitness      float64 `json:"avgFitness"`
	BestWeightsDiff float64 `json:"bestWeightsDiff"`
}

// ConfigRecord is the serializable form of the trainer parameters a
// checkpoint was produced under. It is stored for reference only:
// resuming a run neither restores these settings nor compares them
// against the current ones.
type ConfigRecord struct {
	PopulationSize     int     `json:"populationSize"`
	GamesPerEvaluation int     `json:"gamesPerEvaluation"`
	MutationRate       float64 `json:"mutationRate"`
	MutationStrength   float64 `json:"mutationStrength"`
	EliteCount         int     `json:"eliteCount"`
	TournamentSize     int     `json:"tournamentSize"`
	MaxTurnsPerGame    int     `json:"maxTurnsPerGame"`
	CheckpointInterval int     `json:"checkpointInterval"`
}

// Checkpoint is the complete serialized state of a training run, per the
// {version, config, currentGeneration, bestIndividual, allTimeBest,
// population, generationHistory, startTime, totalGamesPlayed} contract.
type Checkpoint struct {
	Version           int                `json:"version"`
	Config            ConfigRecord       `json:"config"`
	CurrentGeneration int                `json:"currentGeneration"`
	BestIndividual    IndividualRecord   `json:"bestIndividual"`
	AllTimeBest       IndividualRecord   `json:"allTimeBest"`
	Population        []IndividualRecord `json:"population"`
	GenerationHistory []GenerationSummary `json:"generationHistory"`
	StartTime         time.Time          `json:"startTime"`
	TotalGamesPlayed  int                `json:"totalGamesPlayed"`
	Seed              int64              `json:"seed"`
}

// Store persists and restores a single Checkpoint. Implementations must
// reject a loaded checkpoint whose Version does not equal CurrentVersion
// by returning ErrUnsupportedVersion.
type Store interface {
	Save(ctx context.Context, cp Checkpoint) error
	Load(ctx context.Context) (*Checkpoint, bool, error)
}

func checkVersion(cp *Checkpoint) error {
	if cp.Version != CurrentVersion {
		return ErrUnsupportedVersion
	}
	return nil
}
