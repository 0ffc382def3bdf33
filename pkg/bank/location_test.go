package bank

import "testing"

func TestPileLocationString(t *testing.T) {
	tests := []struct {
		loc  PileLocation
		want string
	}{
		{Foundation(0), "F1"},
		{Foundation(7), "F8"},
		{Tableau(Player1, 0), "T1a"},
		{Tableau(Player2, 3), "T2d"},
		{Reserve(Player1), "R1"},
		{Waste(Player2), "W2"},
		{Drawn(Player1), "G1"},
		{Hand(Player2), "H2"},
	}
	for _, tt := range tests {
		if got := tt.loc.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.loc, got, tt.want)
		}
	}
}

func TestPileLocationRoundTripThroughParse(t *testing.T) {
	locs := []PileLocation{
		Foundation(0), Foundation(7),
		Tableau(Player1, 0), Tableau(Player1, 3), Tableau(Player2, 2),
		Reserve(Player1), Reserve(Player2),
		Waste(Player1), Waste(Player2),
		Drawn(Player1), Drawn(Player2),
	}
	for _, loc := range locs {
		parsed, err := parseLocation(loc.String())
		if err != nil {
			t.Fatalf("parseLocation(%q): %v", loc.String(), err)
		}
		if parsed != loc {
			t.Errorf("round trip %q: got %+v, want %+v", loc.String(), parsed, loc)
		}
	}
}
