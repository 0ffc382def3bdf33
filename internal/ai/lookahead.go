package ai

import (
	"sort"

	"github.com/kestrelgames/russianbank/pkg/bank"
)

// lookAheadBonus adds a shallow forward-looking score to a candidate that
// is not itself a foundation play, per 4.2.5. It never mutates state or
// leaves any trace visible outside this call.
func lookAheadBonus(state *bank.GameState, m bank.Move, cfg Config) float64 {
	if cfg.LookAheadDepth <= 0 || m.To.Kind == bank.KindFoundation {
		return 0
	}
	next, err := state.ApplyMove(m)
	if err != nil {
		return 0
	}
	return lookAheadRecurse(next, cfg, cfg.LookAheadDepth, 1.0)
}

func lookAheadRecurse(state *bank.GameState, cfg Config, depth int, discount float64) float64 {
	moves := state.LegalMoves()

	var foundation, empty, attack int
	for _, mv := range moves {
		switch {
		case mv.To.Kind == bank.KindFoundation:
			foundation++
		case mv.From.Kind == bank.KindTableau && mv.To.Kind == bank.KindTableau &&
			state.PileLen(mv.From) == 1 && state.PileLen(mv.To) > 0:
			empty++
		case mv.To.Kind == bank.KindWaste || mv.To.Kind == bank.KindReserve:
			attack++
		}
	}

	bonus := discount * (cfg.LookAheadFoundationBonus*float64(foundation) +
		cfg.LookAheadEmptyBonus*float64(empty) +
		cfg.LookAheadAttackBonus*float64(attack))

	if depth > 1 && len(moves) > 0 {
		ordered := orderByLookAheadPriority(moves)
		n := cfg.LookAheadBranchFactor
		if n > len(ordered) {
			n = len(ordered)
		}
		for _, mv := range ordered[:n] {
			child, err := state.ApplyMove(mv)
			if err != nil {
				continue
			}
			bonus += lookAheadRecurse(child, cfg, depth-1, discount*0.5)
		}
	}

	return bonus
}

// orderByLookAheadPriority sorts moves foundation-first, then attacks,
// then everything else, matching the simple priority 4.2.5 mandates for
// choosing which branches to recurse into.
func orderByLookAheadPriority(moves []bank.Move) []bank.Move {
	ordered := append([]bank.Move(nil), moves...)
	priority := func(m bank.Move) int {
		switch {
		case m.To.Kind == bank.KindFoundation:
			return 0
		case m.To.Kind == bank.KindWaste || m.To.Kind == bank.KindReserve:
			return 1
		default:
			return 2
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return priority(ordered[i]) < priority(ordered[j]) })
	return ordered
}
