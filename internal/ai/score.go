package ai

import "github.com/kestrelgames/russianbank/pkg/bank"

// scoreMove computes the weighted sum of triggered features for a
// candidate move, per the fixed feature set. active is the player whose
// turn it is (needed because a tableau source may belong to either
// player, while "own" vs "opponent" tableau only matters for the
// destination).
func scoreMove(state *bank.GameState, m bank.Move, active bank.Origin, w *Weights) float64 {
	var score float64

	if m.To.Kind == bank.KindFoundation {
		score += w[ToFoundation]
		if m.Card.Rank == 1 {
			score += w[PlaysAce]
		}
		if m.Card.Rank == 2 {
			score += w[PlaysTwo]
		}
	}
	if m.To.Kind == bank.KindReserve {
		score += w[AttackReserve]
	}
	if m.To.Kind == bank.KindWaste {
		score += w[AttackWaste]
	}

	ownDestTableau := m.To.Kind == bank.KindTableau && m.To.Owner == active
	oppDestTableau := m.To.Kind == bank.KindTableau && m.To.Owner != active
	if ownDestTableau {
		score += w[ToOwnTableau]
	}
	if oppDestTableau {
		score += w[ToOpponentTableau]
	}

	srcLen := state.PileLen(m.From)

	switch m.From.Kind {
	case bank.KindReserve:
		score += w[FromReserve]
		if srcLen == 1 {
			score += w[EmptiesReserve]
		}
	case bank.KindDrawn:
		score += w[FromWaste]
	case bank.KindTableau:
		score += w[FromTableau]
	}

	if m.From.Kind == bank.KindTableau {
		dstEmptyTableau := m.To.Kind == bank.KindTableau && state.PileLen(m.To) == 0
		dstNonEmptyTableau := m.To.Kind == bank.KindTableau && state.PileLen(m.To) > 0
		dstFoundationOrAttack := m.To.Kind == bank.KindFoundation || m.To.Kind == bank.KindWaste || m.To.Kind == bank.KindReserve

		if srcLen == 1 && dstEmptyTableau {
			score += w[PointlessTableauShuffle]
		}
		if srcLen == 1 && dstNonEmptyTableau {
			score += w[CreatesUsefulEmpty]
		}
		if srcLen == 1 && dstFoundationOrAttack {
			score += w[CreatesEmptyTableau]
		}
		if srcLen > 1 && !exposedCardHasPlay(state, m.From, active) {
			score += w[TableauMoveNoBenefit]
		}
	}

	if ownDestTableau {
		dh, ds := tableauDelta(state, active, m)
		if dh > 0 {
			score += w[StackHeightBonus] * float64(dh)
		}
		score -= w[SpreadPenalty] * float64(ds)
	}

	return score
}

// exposedCardHasPlay reports whether the card that would become the new
// top of a multi-card tableau pile (after its current top leaves) has any
// foundation or attack destination available right now.
func exposedCardHasPlay(state *bank.GameState, from bank.PileLocation, active bank.Origin) bool {
	exposed, ok := state.NthFromTop(from, 1)
	if !ok {
		return true // nothing exposed, so there is nothing to penalize
	}
	for i := 0; i < 8; i++ {
		if state.CanPlayOnFoundation(exposed, i) {
			return true
		}
	}
	opp := active.Opponent()
	if state.CanPlayOnOpponentPile(exposed, bank.Waste(opp)) {
		return true
	}
	if state.CanPlayOnOpponentPile(exposed, bank.Reserve(opp)) {
		return true
	}
	return false
}

// tableauDelta computes the change in active's max tableau pile height
// and non-empty tableau pile count that placing m.Card at m.To would
// cause, without mutating state. Only meaningful when m.To is active's
// own tableau.
func tableauDelta(state *bank.GameState, active bank.Origin, m bank.Move) (deltaHeight, deltaSpread int) {
	const numTableau = 4
	var heights [numTableau]int
	for i := 0; i < numTableau; i++ {
		heights[i] = state.PileLen(bank.Tableau(active, i))
	}

	before := heights
	if m.From.Kind == bank.KindTableau && m.From.Owner == active {
		heights[m.From.Index]--
	}
	heights[m.To.Index]++

	maxBefore, nonEmptyBefore := summarize(before)
	maxAfter, nonEmptyAfter := summarize(heights)

	return maxAfter - maxBefore, nonEmptyAfter - nonEmptyBefore
}

func summarize(heights [4]int) (max, nonEmpty int) {
	for _, h := range heights {
		if h > max {
			max = h
		}
		if h > 0 {
			nonEmpty++
		}
	}
	return max, nonEmpty
}

// shuffleScorePenalty returns the score reduction for a tableau-to-tableau
// candidate whose pattern already appears k times in the combined
// within-turn and cross-turn recent-pattern window.
func shuffleScorePenalty(m bank.Move, window []Pattern, cfg Config) float64 {
	if m.From.Kind != bank.KindTableau || m.To.Kind != bank.KindTableau {
		return 0
	}
	k := countMatches(window, patternOf(m))
	return cfg.ShufflePenalty * float64(k)
}
