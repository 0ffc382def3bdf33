package trainer

import (
	"math"
	"sync"

	"github.com/kestrelgames/russianbank/internal/ai"
	"github.com/kestrelgames/russianbank/pkg/bank"
)

// EvaluationConfig groups the parameters fitness evaluation needs beyond
// the individual and baseline weights it compares against.
type EvaluationConfig struct {
	GamesPerEvaluation int
	MaxTurnsPerGame    int
	Workers            int
	DecisionCfg        ai.Config
}

// gameOutcome records one paired self-play game from the evaluated
// individual's perspective, regardless of which side it played.
type gameOutcome struct {
	won  bool
	lost bool
}

// EvaluateFitness plays cfg.GamesPerEvaluation pairs of games between
// candidate and baseline, alternating which side the candidate plays,
// and returns candidate with Wins/Losses/Draws/GamesPlayed/Fitness set.
// Games run concurrently, bounded by cfg.Workers.
func EvaluateFitness(candidate Individual, baseline ai.Weights, seeds []int64, cfg EvaluationConfig) Individual {
	g := cfg.GamesPerEvaluation
	outcomes := make([]gameOutcome, 2*g)

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	play := func(idx int, seed int64, candidateIsPlayer1 bool) {
		defer wg.Done()
		defer func() { <-sem }()

		var p1, p2 ai.Weights
		if candidateIsPlayer1 {
			p1, p2 = candidate.Weights, baseline
		} else {
			p1, p2 = baseline, candidate.Weights
		}

		winner := playGame(seed, p1, p2, cfg.MaxTurnsPerGame, cfg.DecisionCfg)
		if winner == nil {
			outcomes[idx] = gameOutcome{}
			return
		}
		candidateWon := (*winner == bank.Player1) == candidateIsPlayer1
		outcomes[idx] = gameOutcome{won: candidateWon, lost: !candidateWon}
	}

	for i := 0; i < g; i++ {
		wg.Add(2)
		sem <- struct{}{}
		go play(i, seeds[i], true)
		sem <- struct{}{}
		go play(g+i, seeds[i]+1_000_000, false)
	}
	wg.Wait()

	for _, o := range outcomes {
		candidate.GamesPlayed++
		switch {
		case o.won:
			candidate.Wins++
		case o.lost:
			candidate.Losses++
		default:
			candidate.Draws++
		}
	}
	candidate.Fitness = float64(candidate.Wins) / float64(2*g)
	return candidate
}

// stagnationTracker counts moves played by one side since its last
// foundation play. Once the count exceeds ai.StagnationThreshold, it
// scales explorationRate up to +0.45 and shufflePenalty up to x3,
// linearly over the next StagnationThreshold moves past the threshold,
// so a side stuck shuffling cards explores more aggressively instead of
// looping forever within one game.
type stagnationTracker struct {
	movesSinceFoundation int
}

func (s *stagnationTracker) adapt(cfg ai.Config) ai.Config {
	if s.movesSinceFoundation <= ai.StagnationThreshold {
		return cfg
	}
	over := float64(s.movesSinceFoundation - ai.StagnationThreshold)
	scale := math.Min(over/float64(ai.StagnationThreshold), 1.0)
	cfg.ExplorationRate += 0.45 * scale
	cfg.ShufflePenalty *= 1 + 2*scale
	return cfg
}

// observe updates the tracker from one computeTurn call's steps: any
// foundation play resets the counter, otherwise it advances by the
// number of moves (not draws) played this turn.
func (s *stagnationTracker) observe(steps []ai.Step) {
	moved := 0
	for _, step := range steps {
		if step.Decision.Kind != ai.DecisionMove {
			continue
		}
		if step.Decision.Move.To.Kind == bank.KindFoundation {
			s.movesSinceFoundation = 0
			return
		}
		moved++
	}
	s.movesSinceFoundation += moved
}

// playGame runs one game to completion (or to maxTurns) with p1Weights
// driving Player1 and p2Weights driving Player2, and returns the
// engine's declared winner, or nil for a draw (turn cap reached, no
// winner, or a decision maker producing no steps).
func playGame(seed int64, p1Weights, p2Weights ai.Weights, maxTurns int, decisionCfg ai.Config) *bank.Origin {
	state := bank.Initialize(&seed)
	var windowP1, windowP2 []ai.Pattern
	var stagP1, stagP2 stagnationTracker

	for turns := 0; state.Phase != bank.PhaseEnded && turns < maxTurns; turns++ {
		active := state.CurrentTurn
		var steps []ai.Step
		if active == bank.Player1 {
			steps, windowP1 = ai.ComputeTurn(state, p1Weights, stagP1.adapt(decisionCfg), windowP1)
			stagP1.observe(steps)
		} else {
			steps, windowP2 = ai.ComputeTurn(state, p2Weights, stagP2.adapt(decisionCfg), windowP2)
			stagP2.observe(steps)
		}
		if len(steps) == 0 {
			break
		}
		state = steps[len(steps)-1].State
	}

	return state.Winner
}
