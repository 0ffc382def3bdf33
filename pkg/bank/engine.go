package bank

import (
	"math/rand"
	"time"
)

// Initialize builds a fresh GameState. If seed is nil, a system random seed
// is drawn and recorded on the returned state so the game can later be
// reproduced via Initialize(&state.Seed).
func Initialize(seed *int64) *GameState {
	var s int64
	if seed != nil {
		s = *seed
	} else {
		s = rand.New(rand.NewSource(time.Now().UnixNano())).Int63()
	}

	gen := newLCG(s)

	deck1 := NewDeck(Player1)
	deck2 := NewDeck(Player2)
	gen.shuffle(deck1)
	gen.shuffle(deck2)

	gs := &GameState{Seed: s, Phase: PhasePlaying}
	dealTo(&gs.Player1, deck1)
	dealTo(&gs.Player2, deck2)

	if gen.float64() < 0.5 {
		gs.CurrentTurn = Player1
	} else {
		gs.CurrentTurn = Player2
	}

	return gs
}

// dealTo distributes a freshly shuffled 52-card deck into one player's
// reserve (12), one-card tableau piles (4), and hand (36).
func dealTo(p *PlayerState, deck []Card) {
	p.Reserve = append([]Card(nil), deck[0:12]...)
	for i := 0; i < numTableau; i++ {
		p.Tableau[i] = []Card{deck[12+i]}
	}
	p.Hand = append([]Card(nil), deck[16:52]...)
}

// LegalMoves enumerates every legal move for the active player in the
// fixed order: drawn card (if held) destinations; else own reserve, own
// tableau 0..3, opponent tableau 0..3, each against all legal destinations
// in foundation/own-tableau/opponent-tableau/opponent-waste/opponent-reserve
// order.
func (gs *GameState) LegalMoves() []Move {
	if gs.Phase == PhaseEnded {
		return nil
	}
	cur := gs.CurrentTurn
	player := gs.Player(cur)

	if player.DrawnCard != nil {
		card := *player.DrawnCard
		var moves []Move
		for _, dest := range gs.destinationsFor(card, cur) {
			moves = append(moves, Move{From: Drawn(cur), To: dest, Card: card})
		}
		return moves
	}

	var moves []Move
	if card, ok := gs.TopCard(Reserve(cur)); ok {
		loc := Reserve(cur)
		for _, dest := range gs.destinationsFor(card, cur) {
			moves = append(moves, Move{From: loc, To: dest, Card: card})
		}
	}
	for i := 0; i < numTableau; i++ {
		loc := Tableau(cur, i)
		if card, ok := gs.TopCard(loc); ok {
			for _, dest := range gs.destinationsFor(card, cur) {
				moves = append(moves, Move{From: loc, To: dest, Card: card})
			}
		}
	}
	opp := cur.Opponent()
	for i := 0; i < numTableau; i++ {
		loc := Tableau(opp, i)
		if card, ok := gs.TopCard(loc); ok {
			for _, dest := range gs.destinationsFor(card, cur) {
				moves = append(moves, Move{From: loc, To: dest, Card: card})
			}
		}
	}
	return moves
}

func containsMove(moves []Move, m Move) bool {
	for _, candidate := range moves {
		if candidate == m {
			return true
		}
	}
	return false
}

// ApplyMove validates move against LegalMoves and, if legal, returns a new
// snapshot with the move applied. It never mutates gs.
func (gs *GameState) ApplyMove(move Move) (*GameState, error) {
	if !containsMove(gs.LegalMoves(), move) {
		return nil, ErrInvalidMove
	}

	next := gs.Clone()
	var card Card
	if move.From.Kind == KindDrawn {
		p := next.Player(move.From.Owner)
		card = p.Waste[len(p.Waste)-1]
		p.Waste = p.Waste[:len(p.Waste)-1]
		p.DrawnCard = nil
	} else {
		src := next.pile(move.From)
		card = (*src)[len(*src)-1]
		*src = (*src)[:len(*src)-1]
	}

	dst := next.pile(move.To)
	*dst = append(*dst, card)

	next.MoveCount++
	next.NotationLog = append(next.NotationLog, formatMoveNotation(move))
	next.checkTermination()
	return next, nil
}

// DrawFromHand draws a card from the active player's hand (recycling waste
// into hand first if hand is empty). It returns the new snapshot and
// whether the draw ended the turn (the drawn card had no legal
// destination).
func (gs *GameState) DrawFromHand() (*GameState, bool, error) {
	next := gs.Clone()
	cur := next.CurrentTurn
	p := next.Player(cur)

	if len(p.Hand) == 0 {
		p.Hand = reverseCards(p.Waste)
		p.Waste = nil
	}
	if len(p.Hand) == 0 {
		return nil, false, ErrNoCardsToDraw
	}

	card := p.Hand[len(p.Hand)-1]
	p.Hand = p.Hand[:len(p.Hand)-1]
	p.Waste = append(p.Waste, card)
	p.DrawnCard = &card

	next.MoveCount++
	next.NotationLog = append(next.NotationLog, formatDrawNotation(cur))
	next.checkTermination()

	if next.Phase == PhaseEnded {
		return next, false, nil
	}

	if len(next.destinationsFor(card, cur)) > 0 {
		return next, false, nil
	}

	p.DrawnCard = nil
	next.CurrentTurn = cur.Opponent()
	return next, true, nil
}

// checkTermination re-evaluates win and move-limit conditions in place on
// gs. Call only on a freshly cloned, not-yet-shared snapshot.
func (gs *GameState) checkTermination() {
	for _, o := range [2]Origin{Player1, Player2} {
		p := gs.Player(o)
		if len(p.Reserve) == 0 && len(p.Waste) == 0 && len(p.Hand) == 0 {
			winner := o
			gs.Winner = &winner
			gs.Phase = PhaseEnded
			return
		}
	}
	if gs.MoveCount >= maxMoveCount {
		gs.Phase = PhaseEnded
	}
}

// reverseCards returns a new slice with cards in reverse order, leaving the
// input untouched.
func reverseCards(cards []Card) []Card {
	n := len(cards)
	out := make([]Card, n)
	for i, c := range cards {
		out[n-1-i] = c
	}
	return out
}
