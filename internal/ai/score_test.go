package ai

import (
	"testing"

	"github.com/kestrelgames/russianbank/pkg/bank"
)

func TestScoreMoveFoundationFeatures(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1}
	ace := bank.Card{Rank: 1, Suit: bank.Hearts, Origin: bank.Player1}
	gs.Player1.Reserve = []bank.Card{ace}
	m := bank.Move{From: bank.Reserve(bank.Player1), To: bank.Foundation(0), Card: ace}

	var w Weights
	w[ToFoundation] = 10
	w[PlaysAce] = 5
	w[FromReserve] = 2
	w[EmptiesReserve] = 3

	got := scoreMove(gs, m, bank.Player1, &w)
	want := 10.0 + 5.0 + 2.0 + 3.0 // reserve becomes empty after removing its only card
	if got != want {
		t.Errorf("scoreMove = %v, want %v", got, want)
	}
}

func TestScoreMoveCreatesEmptyTableau(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1}
	card := bank.Card{Rank: 5, Suit: bank.Hearts, Origin: bank.Player1}
	gs.Player1.Tableau[0] = []bank.Card{card}
	m := bank.Move{From: bank.Tableau(bank.Player1, 0), To: bank.Foundation(0), Card: card}

	var w Weights
	w[CreatesEmptyTableau] = 7
	w[FromTableau] = 1

	got := scoreMove(gs, m, bank.Player1, &w)
	if got != 8 {
		t.Errorf("scoreMove = %v, want 8", got)
	}
}

func TestScoreMoveCreatesUsefulEmpty(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1}
	card := bank.Card{Rank: 5, Suit: bank.Hearts, Origin: bank.Player1}
	gs.Player1.Tableau[0] = []bank.Card{card}
	gs.Player1.Tableau[1] = []bank.Card{{Rank: 6, Suit: bank.Clubs, Origin: bank.Player1}}
	m := bank.Move{From: bank.Tableau(bank.Player1, 0), To: bank.Tableau(bank.Player1, 1), Card: card}

	var w Weights
	w[CreatesUsefulEmpty] = 9

	got := scoreMove(gs, m, bank.Player1, &w)
	if got < 9 {
		t.Errorf("scoreMove = %v, want at least 9 (CREATES_USEFUL_EMPTY)", got)
	}
}

func TestScoreMoveTableauNoBenefit(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1}
	// Two-card pile: top is playable, but exposed card (rank 9 clubs) has
	// no foundation or attack play anywhere on this otherwise-empty board.
	gs.Player1.Tableau[0] = []bank.Card{
		{Rank: 9, Suit: bank.Clubs, Origin: bank.Player1},
		{Rank: 5, Suit: bank.Hearts, Origin: bank.Player1},
	}
	m := bank.Move{From: bank.Tableau(bank.Player1, 0), To: bank.Foundation(0), Card: gs.Player1.Tableau[0][1]}

	var w Weights
	w[TableauMoveNoBenefit] = -6

	got := scoreMove(gs, m, bank.Player1, &w)
	if got != -6 {
		t.Errorf("scoreMove = %v, want -6", got)
	}
}

func TestScoreMoveTableauBenefitExists(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1}
	gs.Player1.Tableau[0] = []bank.Card{
		{Rank: 1, Suit: bank.Clubs, Origin: bank.Player1}, // exposed ace: playable on foundation
		{Rank: 5, Suit: bank.Hearts, Origin: bank.Player1},
	}
	m := bank.Move{From: bank.Tableau(bank.Player1, 0), To: bank.Foundation(0), Card: gs.Player1.Tableau[0][1]}

	var w Weights
	w[TableauMoveNoBenefit] = -6

	got := scoreMove(gs, m, bank.Player1, &w)
	if got != 0 {
		t.Errorf("scoreMove = %v, want 0 (exposed card has a play)", got)
	}
}

func TestScoreMoveStackHeightAndSpread(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1}
	// Tableau[0] empty, so placing a card there raises max height from 0 to
	// 1 and adds a non-empty pile.
	card := bank.Card{Rank: 5, Suit: bank.Hearts, Origin: bank.Player1}
	gs.Player1.Reserve = []bank.Card{card}
	m := bank.Move{From: bank.Reserve(bank.Player1), To: bank.Tableau(bank.Player1, 0), Card: card}

	var w Weights
	w[ToOwnTableau] = 1
	w[StackHeightBonus] = 4
	w[SpreadPenalty] = 2

	got := scoreMove(gs, m, bank.Player1, &w)
	want := 1.0 + 4.0*1 - 2.0*1
	if got != want {
		t.Errorf("scoreMove = %v, want %v", got, want)
	}
}

func TestExposedCardHasPlayAttack(t *testing.T) {
	gs := &bank.GameState{CurrentTurn: bank.Player1}
	gs.Player2.Waste = []bank.Card{{Rank: 6, Suit: bank.Hearts, Origin: bank.Player2}}
	gs.Player1.Tableau[0] = []bank.Card{
		{Rank: 5, Suit: bank.Hearts, Origin: bank.Player1}, // exposed: attacks opponent waste (rank diff 1, same suit)
		{Rank: 9, Suit: bank.Clubs, Origin: bank.Player1},
	}
	if !exposedCardHasPlay(gs, bank.Tableau(bank.Player1, 0), bank.Player1) {
		t.Error("exposed card should have an attack destination")
	}
}
