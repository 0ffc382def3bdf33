package bank

import (
	"fmt"
	"strconv"
	"strings"
)

// formatMoveNotation renders a move in the grammar <card>:<from>-<to>.
func formatMoveNotation(m Move) string {
	return fmt.Sprintf("%s:%s-%s", m.Card, m.From, m.To)
}

// formatDrawNotation renders a draw in the grammar D{1|2}.
func formatDrawNotation(owner Origin) string {
	return "D" + owner.String()
}

func parseOrigin(b byte) (Origin, error) {
	switch b {
	case '1':
		return Player1, nil
	case '2':
		return Player2, nil
	default:
		return 0, fmt.Errorf("bank: invalid origin %q", b)
	}
}

func parseCard(s string) (Card, error) {
	if len(s) != 3 {
		return Card{}, fmt.Errorf("bank: invalid card notation %q", s)
	}
	rank, ok := rankFromLetter(s[0])
	if !ok {
		return Card{}, fmt.Errorf("bank: invalid rank in %q", s)
	}
	var suit Suit
	switch s[1] {
	case 'H':
		suit = Hearts
	case 'D':
		suit = Diamonds
	case 'C':
		suit = Clubs
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("bank: invalid suit in %q", s)
	}
	origin, err := parseOrigin(s[2])
	if err != nil {
		return Card{}, err
	}
	return Card{Rank: rank, Suit: suit, Origin: origin}, nil
}

func parseLocation(s string) (PileLocation, error) {
	if len(s) < 2 {
		return PileLocation{}, fmt.Errorf("bank: invalid location notation %q", s)
	}
	switch s[0] {
	case 'F':
		n, err := strconv.Atoi(s[1:])
		if err != nil {
			return PileLocation{}, fmt.Errorf("bank: invalid foundation index in %q: %w", s, err)
		}
		return Foundation(n - 1), nil
	case 'R':
		owner, err := parseOrigin(s[1])
		if err != nil {
			return PileLocation{}, err
		}
		return Reserve(owner), nil
	case 'W':
		owner, err := parseOrigin(s[1])
		if err != nil {
			return PileLocation{}, err
		}
		return Waste(owner), nil
	case 'G':
		owner, err := parseOrigin(s[1])
		if err != nil {
			return PileLocation{}, err
		}
		return Drawn(owner), nil
	case 'H':
		owner, err := parseOrigin(s[1])
		if err != nil {
			return PileLocation{}, err
		}
		return Hand(owner), nil
	case 'T':
		if len(s) != 3 {
			return PileLocation{}, fmt.Errorf("bank: invalid tableau location %q", s)
		}
		owner, err := parseOrigin(s[1])
		if err != nil {
			return PileLocation{}, err
		}
		index := int(s[2] - 'a')
		if index < 0 || index >= numTableau {
			return PileLocation{}, fmt.Errorf("bank: invalid tableau index in %q", s)
		}
		return Tableau(owner, index), nil
	default:
		return PileLocation{}, fmt.Errorf("bank: unknown location tag in %q", s)
	}
}

// ParseNotation replays a notation log against an initial state, applying
// each entry step by step, and returns the resulting final state. It is
// the inverse of the log GameState.ApplyMove/DrawFromHand append as they
// run.
func ParseNotation(log []string, initial *GameState) (*GameState, error) {
	state := initial.Clone()
	for _, entry := range log {
		var err error
		state, err = applyNotationEntry(state, entry)
		if err != nil {
			return nil, fmt.Errorf("bank: replay %q: %w", entry, err)
		}
	}
	return state, nil
}

func applyNotationEntry(state *GameState, entry string) (*GameState, error) {
	if len(entry) == 2 && entry[0] == 'D' {
		next, _, err := state.DrawFromHand()
		return next, err
	}

	parts := strings.SplitN(entry, ":", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed move entry")
	}
	card, err := parseCard(parts[0])
	if err != nil {
		return nil, err
	}
	locs := strings.SplitN(parts[1], "-", 2)
	if len(locs) != 2 {
		return nil, fmt.Errorf("malformed move locations")
	}
	from, err := parseLocation(locs[0])
	if err != nil {
		return nil, err
	}
	to, err := parseLocation(locs[1])
	if err != nil {
		return nil, err
	}
	return state.ApplyMove(Move{From: from, To: to, Card: card})
}
