package trainer

import (
	"math"
	"math/rand"

	"github.com/kestrelgames/russianbank/internal/ai"
)

// InitializePopulation builds the generation-zero population: one
// individual holding the reference weights verbatim (the baseline),
// with the remaining size-1 slots filled by random individuals.
func InitializePopulation(size int, rng *rand.Rand) []Individual {
	if size < 1 {
		size = 1
	}
	pop := make([]Individual, size)
	pop[0] = Individual{Weights: ai.DefaultWeights()}
	for i := 1; i < size; i++ {
		pop[i] = Individual{Weights: randomWeights(rng)}
	}
	return pop
}

// randomWeights draws each weight from round(defaultValue * U(0.7, 1.3))
// clamped to the feature's legal interval.
func randomWeights(rng *rand.Rand) ai.Weights {
	def := ai.DefaultWeights()
	var w ai.Weights
	for f := ai.Feature(0); f < ai.NumFeatures; f++ {
		v := def[f] * (0.7 + rng.Float64()*0.6)
		w[f] = f.Clamp(math.Round(v))
	}
	return w
}

// tournamentSelect picks size random individuals from pop and returns the
// fittest of them.
func tournamentSelect(pop []Individual, size int, rng *rand.Rand) Individual {
	if size < 1 {
		size = 1
	}
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < size; i++ {
		candidate := pop[rng.Intn(len(pop))]
		if candidate.Fitness > best.Fitness {
			best = candidate
		}
	}
	return best
}
