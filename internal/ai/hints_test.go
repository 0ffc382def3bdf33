package ai

import (
	"testing"

	"github.com/kestrelgames/russianbank/pkg/bank"
)

func containsMoveTo(moves []bank.Move, to bank.PileLocation) bool {
	for _, m := range moves {
		if m.To == to {
			return true
		}
	}
	return false
}

func TestGetHintMovesExcludesPointlessShuffle(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1, Phase: bank.PhasePlaying}
	gs.Player1.Tableau[0] = []bank.Card{{Rank: 5, Suit: bank.Hearts, Origin: bank.Player1}}
	// Tableau[1] empty: moving the singleton there is a pointless shuffle.
	hints := GetHintMoves(gs)
	if containsMoveTo(hints, bank.Tableau(bank.Player1, 1)) {
		t.Error("hints should exclude a singleton-to-empty tableau shuffle")
	}
}

func TestGetHintMovesExcludesMultiCardMoveWithNoExposedBenefit(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1, Phase: bank.PhasePlaying}
	gs.Player1.Tableau[0] = []bank.Card{
		{Rank: 9, Suit: bank.Clubs, Origin: bank.Player1}, // exposed after move: no play anywhere
		{Rank: 6, Suit: bank.Hearts, Origin: bank.Player1},
	}
	gs.Player1.Tableau[1] = []bank.Card{{Rank: 7, Suit: bank.Clubs, Origin: bank.Player1}}
	hints := GetHintMoves(gs)
	if containsMoveTo(hints, bank.Tableau(bank.Player1, 1)) {
		t.Error("hints should exclude a tableau move that exposes a card with no play")
	}
}

func TestGetHintMovesIncludesMultiCardMoveWithExposedBenefit(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1, Phase: bank.PhasePlaying}
	gs.Player1.Tableau[0] = []bank.Card{
		{Rank: 1, Suit: bank.Clubs, Origin: bank.Player1}, // exposed after move: playable to foundation
		{Rank: 6, Suit: bank.Hearts, Origin: bank.Player1},
	}
	gs.Player1.Tableau[1] = []bank.Card{{Rank: 7, Suit: bank.Clubs, Origin: bank.Player1}}
	hints := GetHintMoves(gs)
	if !containsMoveTo(hints, bank.Tableau(bank.Player1, 1)) {
		t.Error("hints should include a tableau move that exposes a playable card")
	}
}

func TestGetHintMovesIncludesFoundationMoves(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1, Phase: bank.PhasePlaying}
	ace := bank.Card{Rank: 1, Suit: bank.Hearts, Origin: bank.Player1}
	gs.Player1.Reserve = []bank.Card{ace}
	hints := GetHintMoves(gs)
	if !containsMoveTo(hints, bank.Foundation(0)) {
		t.Error("hints should include a reserve-to-foundation move")
	}
}
