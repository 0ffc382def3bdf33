package ai

import "github.com/kestrelgames/russianbank/pkg/bank"

// GetHintMoves enumerates moves worth surfacing to a human player. It is
// a UI-only collaborator, deliberately kept separate from
// bank.GameState.LegalMoves: it applies stricter tableau criteria than
// the engine (which allows pointless or unhelpful tableau shuffles as
// legal moves) so a human isn't nudged toward a shuffle the heuristic
// itself would filter or penalize. It never feeds the decision maker or
// the trainer.
func GetHintMoves(state *bank.GameState) []bank.Move {
	legal := state.LegalMoves()
	active := state.CurrentTurn
	hints := make([]bank.Move, 0, len(legal))
	for _, m := range legal {
		if m.From.Kind == bank.KindTableau && m.To.Kind == bank.KindTableau {
			if state.PileLen(m.From) == 1 && state.PileLen(m.To) == 0 {
				continue
			}
			if state.PileLen(m.From) > 1 && !exposedCardHasPlay(state, m.From, active) {
				continue
			}
		}
		hints = append(hints, m)
	}
	return hints
}
