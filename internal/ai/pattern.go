package ai

import "github.com/kestrelgames/russianbank/pkg/bank"

// Pattern identifies a move's shape while deliberately excluding card
// identity, so that repeatedly shuffling different cards between the same
// two pile shapes is still recognized as the same pattern.
type Pattern struct {
	FromKind  bank.PileKind
	FromOwner bank.Origin
	FromIndex int
	ToKind    bank.PileKind
	ToOwner   bank.Origin
	ToIndex   int
}

func patternOf(m bank.Move) Pattern {
	return Pattern{
		FromKind:  m.From.Kind,
		FromOwner: m.From.Owner,
		FromIndex: m.From.Index,
		ToKind:    m.To.Kind,
		ToOwner:   m.To.Owner,
		ToIndex:   m.To.Index,
	}
}

// pushPattern appends p to window, keeping it bounded to at most limit
// entries (dropping the oldest).
func pushPattern(window []Pattern, p Pattern, limit int) []Pattern {
	window = append(window, p)
	if limit > 0 && len(window) > limit {
		window = window[len(window)-limit:]
	}
	return window
}

// countMatches reports how many entries in window equal p.
func countMatches(window []Pattern, p Pattern) int {
	n := 0
	for _, w := range window {
		if w == p {
			n++
		}
	}
	return n
}
