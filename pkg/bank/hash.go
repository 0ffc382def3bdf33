package bank

import "hash/fnv"

// CanonicalHash collapses a state to a single uint64, stable across two
// states that are identical in every pile, turn, and drawn card. It is
// used by the decision maker's state-cycle filter to detect a position
// repeating, not for persistence or equality.
func CanonicalHash(gs *GameState) uint64 {
	h := fnv.New64a()
	write := func(b byte) { h.Write([]byte{b}) }
	writeCard := func(c Card) {
		h.Write([]byte{byte(c.Rank), byte(c.Suit), byte(c.Origin)})
	}
	writePile := func(cards []Card) {
		for _, c := range cards {
			writeCard(c)
		}
		write(0xff)
	}
	writePlayer := func(p *PlayerState) {
		writePile(p.Reserve)
		writePile(p.Waste)
		for i := range p.Tableau {
			writePile(p.Tableau[i])
		}
		writePile(p.Hand)
		if p.DrawnCard != nil {
			write(1)
			writeCard(*p.DrawnCard)
		} else {
			write(0)
		}
	}

	writePlayer(&gs.Player1)
	writePlayer(&gs.Player2)
	for i := range gs.Foundations {
		writePile(gs.Foundations[i])
	}
	write(byte(gs.CurrentTurn))

	return h.Sum64()
}
