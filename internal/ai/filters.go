package ai

import "github.com/kestrelgames/russianbank/pkg/bank"

// turnMemory is the cycle-detection state scoped to a single computeTurn
// invocation. It is created fresh at the start of a turn and discarded
// when the turn ends; it never survives across turns.
type turnMemory struct {
	positions map[positionKey]bool
	states    map[uint64]bool
}

type positionKey struct {
	card bank.Card
	loc  bank.PileLocation
}

func newTurnMemory() *turnMemory {
	return &turnMemory{
		positions: make(map[positionKey]bool),
		states:    make(map[uint64]bool),
	}
}

// observe records every accessible pile's (card, location) pair and the
// state's canonical hash. Called once per state produced within the turn.
func (tm *turnMemory) observe(state *bank.GameState) {
	tm.states[bank.CanonicalHash(state)] = true
	for _, loc := range allPileLocations() {
		if card, ok := state.TopCard(loc); ok {
			tm.positions[positionKey{card, loc}] = true
		}
	}
}

// reset clears the cycle-detection sets, called after any successful draw.
func (tm *turnMemory) reset() {
	tm.positions = make(map[positionKey]bool)
	tm.states = make(map[uint64]bool)
}

func allPileLocations() []bank.PileLocation {
	const numTableau = 4
	const numFoundations = 8
	locs := make([]bank.PileLocation, 0, 6+2*numTableau+numFoundations)
	for _, owner := range [2]bank.Origin{bank.Player1, bank.Player2} {
		locs = append(locs, bank.Reserve(owner), bank.Waste(owner), bank.Hand(owner), bank.Drawn(owner))
		for i := 0; i < numTableau; i++ {
			locs = append(locs, bank.Tableau(owner, i))
		}
	}
	for i := 0; i < numFoundations; i++ {
		locs = append(locs, bank.Foundation(i))
	}
	return locs
}

// applyFilters runs the fixed, ordered filter chain: pointless shuffles
// are removed unconditionally; the position-cycle and state-cycle
// filters are skipped entirely while the active player holds a drawn
// card, since the drawn card is the only legal source anyway.
func applyFilters(state *bank.GameState, candidates []bank.Move, tm *turnMemory, holdingDrawn bool) []bank.Move {
	out := make([]bank.Move, 0, len(candidates))
	for _, m := range candidates {
		if isPointlessTableauShuffle(state, m) {
			continue
		}
		if !holdingDrawn {
			if tm.positions[positionKey{m.Card, m.To}] {
				continue
			}
			if next, err := state.ApplyMove(m); err == nil && tm.states[bank.CanonicalHash(next)] {
				continue
			}
		}
		out = append(out, m)
	}
	return out
}

func isPointlessTableauShuffle(state *bank.GameState, m bank.Move) bool {
	if m.From.Kind != bank.KindTableau || m.To.Kind != bank.KindTableau {
		return false
	}
	return state.PileLen(m.From) == 1 && state.PileLen(m.To) == 0
}
