package trainer

import (
	"math"
	"math/rand"
	"sort"

	"github.com/kestrelgames/russianbank/internal/ai"
)

// sortByFitnessDesc sorts pop in place by descending Fitness.
func sortByFitnessDesc(pop []Individual) {
	sort.SliceStable(pop, func(i, j int) bool { return pop[i].Fitness > pop[j].Fitness })
}

// crossover builds a child weight vector from two parents. For each
// weight independently: r<0.4 takes parent1's value, r<0.8 takes
// parent2's, otherwise the child gets the rounded average of both.
func crossover(p1, p2 ai.Weights, rng *rand.Rand) ai.Weights {
	var child ai.Weights
	for f := ai.Feature(0); f < ai.NumFeatures; f++ {
		r := rng.Float64()
		switch {
		case r < 0.4:
			child[f] = p1[f]
		case r < 0.8:
			child[f] = p2[f]
		default:
			child[f] = math.Round((p1[f] + p2[f]) / 2)
		}
	}
	return child
}

// mutate perturbs w in place per weight, each independently with
// probability rate, by U(-1,1) * range(feature) * strength, rounded and
// clamped back to the feature's interval.
func mutate(w ai.Weights, rate, strength float64, rng *rand.Rand) ai.Weights {
	out := w
	for f := ai.Feature(0); f < ai.NumFeatures; f++ {
		if rng.Float64() >= rate {
			continue
		}
		delta := (rng.Float64()*2 - 1) * f.Range() * strength
		out[f] = f.Clamp(math.Round(out[f] + delta))
	}
	return out
}

// Reproduce sorts pop by fitness, carries the top eliteCount individuals
// unchanged (counters reset), and fills the rest with tournament-selected
// parents combined by crossover and mutate.
func Reproduce(pop []Individual, eliteCount, tournamentSize int, mutationRate, mutationStrength float64, rng *rand.Rand) []Individual {
	sortByFitnessDesc(pop)

	next := make([]Individual, 0, len(pop))
	for i := 0; i < eliteCount && i < len(pop); i++ {
		next = append(next, pop[i].resetCounters())
	}

	for len(next) < len(pop) {
		parent1 := tournamentSelect(pop, tournamentSize, rng)
		parent2 := tournamentSelect(pop, tournamentSize, rng)
		child := crossover(parent1.Weights, parent2.Weights, rng)
		child = mutate(child, mutationRate, mutationStrength, rng)
		next = append(next, Individual{Weights: child})
	}

	return next
}
