package ai

import (
	"testing"

	"github.com/kestrelgames/russianbank/pkg/bank"
)

func TestPositionValueRewardsWinner(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1}
	w := gs.CurrentTurn
	other := w.Opponent()
	winner := w
	gs.Winner = &winner

	weights := DefaultWeights()
	if got := PositionValue(gs, w, &weights); got < 900 {
		t.Errorf("PositionValue for winner = %v, want a large positive value", got)
	}
	if got := PositionValue(gs, other, &weights); got > -900 {
		t.Errorf("PositionValue for loser = %v, want a large negative value", got)
	}
}
