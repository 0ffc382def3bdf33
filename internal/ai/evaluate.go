package ai

import "github.com/kestrelgames/russianbank/pkg/bank"

// PositionValue scores a whole board position from active's perspective,
// independent of any single candidate move. It exists for callers that
// need to compare states rather than moves — the neural blending path in
// internal/ai/neural, and any future search that wants a leaf evaluation.
// scoreMove instead answers "how good is this one transition"; this
// answers "how good is this snapshot", keeping position evaluation and
// move scoring as separate functions.
func PositionValue(state *bank.GameState, active bank.Origin, w *Weights) float64 {
	own := state.Player(active)
	opp := state.Opponent(active)

	foundationCount := func(o bank.Origin) int {
		n := 0
		for i := 0; i < 8; i++ {
			for _, c := range state.Foundations[i] {
				if c.Origin == o {
					n++
				}
			}
		}
		return n
	}

	score := float64(foundationCount(active)-foundationCount(active.Opponent())) * w[ToFoundation]
	score -= float64(len(own.Reserve)) * w[FromReserve] * 0.1
	score -= float64(len(own.Hand)) * 0.05
	score += float64(len(opp.Reserve)) * 0.05

	var maxHeight, nonEmpty int
	for i := 0; i < 4; i++ {
		h := len(own.Tableau[i])
		if h > maxHeight {
			maxHeight = h
		}
		if h > 0 {
			nonEmpty++
		}
	}
	score += float64(maxHeight) * w[StackHeightBonus]
	score -= float64(nonEmpty) * w[SpreadPenalty]

	if state.Winner != nil && *state.Winner == active {
		score += 1000
	} else if state.Winner != nil {
		score -= 1000
	}

	return score
}
