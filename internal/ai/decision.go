package ai

import (
	"math/rand"
	"sort"

	"github.com/kestrelgames/russianbank/pkg/bank"
)

// DecisionKind distinguishes the two shapes a turn step can take.
type DecisionKind int

const (
	DecisionMove DecisionKind = iota
	DecisionDraw
)

// Decision is one atomic choice the decision maker made: either play a
// specific move or draw from hand.
type Decision struct {
	Kind      DecisionKind
	Move      bank.Move
	Reasoning string
}

// Step pairs a decision with the state it produced.
type Step struct {
	State    *bank.GameState
	Decision Decision
}

// Decider is the shape both the heuristic and an alternate implementation
// (for example a neural-network-backed one) must satisfy, so callers can
// swap decision makers without changing their turn-driving loop.
type Decider interface {
	ComputeTurn(state *bank.GameState, weights Weights, cfg Config, recentPatterns []Pattern) ([]Step, []Pattern)
}

// Heuristic is the reference Decider: weighted feature scoring with the
// fixed filter chain, shuffle-pattern penalty, and optional look-ahead.
type Heuristic struct{}

func (Heuristic) ComputeTurn(state *bank.GameState, weights Weights, cfg Config, recentPatterns []Pattern) ([]Step, []Pattern) {
	return ComputeTurn(state, weights, cfg, recentPatterns)
}

// MoveScorer ranks one candidate move given the state it would be played
// from, the acting player, and the cross-turn shuffle-pattern window. It
// is the seam RunTurnLoop uses so the fixed filter chain, cycle
// detection, and safety cap live in exactly one place regardless of
// which Decider is choosing moves (the heuristic's feature weighting or
// the neural path's blended value evaluation).
type MoveScorer func(state *bank.GameState, active bank.Origin, m bank.Move, window []Pattern) float64

// ComputeTurn plays out an entire turn of the active player starting from
// state, returning the sequence of steps taken and the updated
// cross-turn pattern window (recentPatterns advanced by this turn's
// moves, still bounded to cfg.PatternMemory entries). The sequence ends
// when the turn changes hands, the game ends, the safety cap is reached,
// or the engine reports a draw failure.
func ComputeTurn(state *bank.GameState, weights Weights, cfg Config, recentPatterns []Pattern) ([]Step, []Pattern) {
	score := func(s *bank.GameState, active bank.Origin, m bank.Move, window []Pattern) float64 {
		v := scoreMove(s, m, active, &weights)
		v -= shuffleScorePenalty(m, window, cfg)
		v += lookAheadBonus(s, m, cfg)
		return v
	}
	return RunTurnLoop(state, cfg, recentPatterns, score)
}

// RunTurnLoop is the shared turn-driving loop: fixed filter chain,
// within-turn cycle detection, cross-turn shuffle-pattern tracking, and
// the safety cap, parameterized only by how a surviving candidate move
// is scored. Both Heuristic and internal/ai/neural's NeuralDecision are
// built on this so cycle detection is never duplicated per Decider.
func RunTurnLoop(state *bank.GameState, cfg Config, recentPatterns []Pattern, score MoveScorer) ([]Step, []Pattern) {
	tm := newTurnMemory()
	window := append([]Pattern(nil), recentPatterns...)
	startTurn := state.CurrentTurn
	current := state
	stepCap := cfg.SafetyCap
	if stepCap <= 0 {
		stepCap = DefaultConfig().SafetyCap
	}

	rng := newDecisionRNG(state)

	var steps []Step
	for i := 0; i < stepCap; i++ {
		if current.Phase == bank.PhaseEnded || current.CurrentTurn != startTurn {
			break
		}

		tm.observe(current)

		active := current.CurrentTurn
		holdingDrawn := current.Player(active).DrawnCard != nil
		legal := current.LegalMoves()
		candidates := applyFilters(current, legal, tm, holdingDrawn)

		if len(candidates) == 0 {
			if fallback := findConsolidation(current, legal); fallback != nil {
				candidates = []bank.Move{*fallback}
			}
		}

		var next *bank.GameState
		var decision Decision
		var err error

		if len(candidates) == 0 {
			next, _, err = current.DrawFromHand()
			decision = Decision{Kind: DecisionDraw, Reasoning: "no candidate move survives filtering"}
			if err != nil {
				steps = append(steps, Step{State: current, Decision: decision})
				return steps, window
			}
			tm.reset()
		} else {
			chosen := selectMove(current, active, candidates, cfg, window, rng, score)
			next, err = current.ApplyMove(chosen)
			if err != nil {
				return steps, window
			}
			window = pushPattern(window, patternOf(chosen), cfg.PatternMemory)
			decision = Decision{Kind: DecisionMove, Move: chosen, Reasoning: "highest-scoring surviving candidate"}
		}

		steps = append(steps, Step{State: next, Decision: decision})
		current = next

		if decision.Kind == DecisionDraw && current.CurrentTurn != active {
			break
		}
	}

	return steps, window
}

// GetBestDecision is the single-step convenience adapter for UI hints and
// other callers that only want the next decision, not a whole turn.
func GetBestDecision(state *bank.GameState, weights Weights, cfg Config) Decision {
	steps, _ := ComputeTurn(state, weights, cfg, nil)
	if len(steps) == 0 {
		return Decision{Kind: DecisionDraw, Reasoning: "no legal moves or draws available"}
	}
	return steps[0].Decision
}

func newDecisionRNG(state *bank.GameState) *rand.Rand {
	return rand.New(rand.NewSource(state.Seed + int64(state.MoveCount)))
}

func selectMove(state *bank.GameState, active bank.Origin, candidates []bank.Move, cfg Config, window []Pattern, rng *rand.Rand, score MoveScorer) bank.Move {
	type scoredMove struct {
		move  bank.Move
		score float64
	}
	list := make([]scoredMove, len(candidates))
	for i, m := range candidates {
		list[i] = scoredMove{m, score(state, active, m, window)}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].score > list[j].score })

	if cfg.ExplorationRate > 0 && rng.Float64() < cfg.ExplorationRate {
		return list[rng.Intn(len(list))].move
	}
	return list[0].move
}

// findConsolidation returns the first unfiltered legal move (in natural
// enumeration order) that would move a singleton tableau pile onto a
// non-empty tableau, or nil if none exists. Used as the draw-avoidance
// fallback when every candidate is filtered out.
func findConsolidation(state *bank.GameState, moves []bank.Move) *bank.Move {
	for i := range moves {
		m := moves[i]
		if m.From.Kind == bank.KindTableau && m.To.Kind == bank.KindTableau &&
			state.PileLen(m.From) == 1 && state.PileLen(m.To) > 0 {
			return &m
		}
	}
	return nil
}
