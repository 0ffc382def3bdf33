// Package trainer implements the evolutionary loop that tunes
// internal/ai's weight vector by paired self-play against a fixed
// baseline: population bootstrap, fitness evaluation, tournament
// selection, crossover, and mutation.
package trainer

import "github.com/kestrelgames/russianbank/internal/ai"

// Individual is one candidate weight vector and its accumulated
// self-play record for the generation it was just evaluated in.
type Individual struct {
	Weights     ai.Weights
	Wins        int
	Losses      int
	Draws       int
	GamesPlayed int
	Fitness     float64
}

// resetCounters clears one generation's self-play record, keeping only
// the weights. Elite individuals carry into the next generation this
// way rather than with a stale fitness score.
func (ind Individual) resetCounters() Individual {
	ind.Wins, ind.Losses, ind.Draws, ind.GamesPlayed, ind.Fitness = 0, 0, 0, 0, 0
	return ind
}
