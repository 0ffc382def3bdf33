// Package ai implements the heuristic decision maker: it consumes a
// bank.GameState and produces a full turn of moves by scoring candidate
// moves against a weight vector, filtering cycles and pointless shuffles,
// and optionally applying a shallow look-ahead.
package ai

import "fmt"

// Feature indexes the fixed, closed weight schema. Weights are a flat
// array indexed by this enum rather than a string-keyed map, so the
// schema can never grow a field at runtime.
type Feature int

const (
	ToFoundation Feature = iota
	PlaysAce
	PlaysTwo
	AttackReserve
	AttackWaste
	ToOwnTableau
	ToOpponentTableau
	FromReserve
	EmptiesReserve
	FromWaste
	FromTableau
	PointlessTableauShuffle
	CreatesUsefulEmpty
	CreatesEmptyTableau
	TableauMoveNoBenefit
	StackHeightBonus
	SpreadPenalty

	NumFeatures
)

var featureNames = [NumFeatures]string{
	ToFoundation:            "TO_FOUNDATION",
	PlaysAce:                "PLAYS_ACE",
	PlaysTwo:                "PLAYS_TWO",
	AttackReserve:           "ATTACK_RESERVE",
	AttackWaste:             "ATTACK_WASTE",
	ToOwnTableau:            "TO_OWN_TABLEAU",
	ToOpponentTableau:       "TO_OPPONENT_TABLEAU",
	FromReserve:             "FROM_RESERVE",
	EmptiesReserve:          "EMPTIES_RESERVE",
	FromWaste:               "FROM_WASTE",
	FromTableau:             "FROM_TABLEAU",
	PointlessTableauShuffle: "POINTLESS_TABLEAU_SHUFFLE",
	CreatesUsefulEmpty:      "CREATES_USEFUL_EMPTY",
	CreatesEmptyTableau:     "CREATES_EMPTY_TABLEAU",
	TableauMoveNoBenefit:    "TABLEAU_MOVE_NO_BENEFIT",
	StackHeightBonus:        "STACK_HEIGHT_BONUS",
	SpreadPenalty:           "SPREAD_PENALTY",
}

func (f Feature) String() string {
	if f < 0 || f >= NumFeatures {
		return fmt.Sprintf("Feature(%d)", int(f))
	}
	return featureNames[f]
}

// FeatureByName resolves a weights-file field name back to its Feature,
// for deserializing a {featureName: number} record into a Weights array.
func FeatureByName(name string) (Feature, bool) {
	for i, n := range featureNames {
		if n == name {
			return Feature(i), true
		}
	}
	return 0, false
}

// clampInterval bounds one weight's legal range during mutation/clamping.
type clampInterval struct{ lo, hi float64 }

// clamps and defaultWeights are the reference schema: every random
// individual and every mutation is clamped to these ranges, and a fresh
// population's baseline individual carries these values verbatim.
var clamps = [NumFeatures]clampInterval{
	ToFoundation:            {0, 40},
	PlaysAce:                {0, 20},
	PlaysTwo:                {0, 20},
	AttackReserve:           {0, 30},
	AttackWaste:             {0, 30},
	ToOwnTableau:            {-10, 20},
	ToOpponentTableau:       {-20, 10},
	FromReserve:             {0, 20},
	EmptiesReserve:          {0, 30},
	FromWaste:               {0, 15},
	FromTableau:             {0, 15},
	PointlessTableauShuffle: {-30, 0},
	CreatesUsefulEmpty:      {0, 25},
	CreatesEmptyTableau:     {0, 35},
	TableauMoveNoBenefit:    {-25, 0},
	StackHeightBonus:        {0, 10},
	SpreadPenalty:           {0, 10},
}

var defaultWeights = Weights{
	ToFoundation:            25,
	PlaysAce:                12,
	PlaysTwo:                6,
	AttackReserve:           18,
	AttackWaste:             14,
	ToOwnTableau:            4,
	ToOpponentTableau:       -6,
	FromReserve:             8,
	EmptiesReserve:          20,
	FromWaste:               5,
	FromTableau:             3,
	PointlessTableauShuffle: -15,
	CreatesUsefulEmpty:      16,
	CreatesEmptyTableau:     22,
	TableauMoveNoBenefit:    -10,
	StackHeightBonus:        3,
	SpreadPenalty:           2,
}

// Weights is the fixed-schema numeric vector scoring a candidate move,
// one entry per Feature.
type Weights [NumFeatures]float64

// DefaultWeights returns a copy of the reference weight vector.
func DefaultWeights() Weights {
	return defaultWeights
}

// Range returns hi-lo for the feature's clamp interval, used by mutation
// to scale a random perturbation.
func (f Feature) Range() float64 {
	c := clamps[f]
	return c.hi - c.lo
}

// Clamp constrains v to the feature's legal interval.
func (f Feature) Clamp(v float64) float64 {
	c := clamps[f]
	if v < c.lo {
		return c.lo
	}
	if v > c.hi {
		return c.hi
	}
	return v
}

// ClampAll clamps every entry of w to its feature's interval in place.
func (w *Weights) ClampAll() {
	for i := Feature(0); i < NumFeatures; i++ {
		w[i] = i.Clamp(w[i])
	}
}

// ToMap renders w as a {featureName: number} record for the weights file
// format.
func (w Weights) ToMap() map[string]float64 {
	m := make(map[string]float64, NumFeatures)
	for i := Feature(0); i < NumFeatures; i++ {
		m[i.String()] = w[i]
	}
	return m
}

// FromMap parses a {featureName: number} record into a Weights vector.
// Unknown keys are ignored; missing keys keep their zero value.
func FromMap(m map[string]float64) Weights {
	var w Weights
	for name, v := range m {
		if f, ok := FeatureByName(name); ok {
			w[f] = v
		}
	}
	return w
}
