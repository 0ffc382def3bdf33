package neural

import (
	"log"

	"github.com/kestrelgames/russianbank/internal/ai"
	"github.com/kestrelgames/russianbank/pkg/bank"
)

// NeuralDecision implements ai.Decider by scoring each surviving
// candidate move with the value network's blended evaluation of the
// state that move produces, one ply deep. It shares ai.RunTurnLoop with
// Heuristic so filtering, cycle detection, and the safety cap are never
// duplicated.
type NeuralDecision struct {
	model    *Model
	weights  ai.Weights
	fallback ai.Decider
}

// NewNeuralDecision loads value.onnx from dir. If loading fails, it logs
// and returns the heuristic Decider instead, so callers never need to
// check for a load error themselves.
func NewNeuralDecision(dir string, weights ai.Weights) ai.Decider {
	m, err := LoadModel(dir)
	if err != nil {
		log.Printf("ai/neural: model load failed: %v; falling back to heuristic", err)
		return ai.Heuristic{}
	}
	return &NeuralDecision{model: m, weights: weights, fallback: ai.Heuristic{}}
}

func (n *NeuralDecision) ComputeTurn(state *bank.GameState, weights ai.Weights, cfg ai.Config, recentPatterns []ai.Pattern) ([]ai.Step, []ai.Pattern) {
	score := func(s *bank.GameState, active bank.Origin, m bank.Move, window []ai.Pattern) float64 {
		next, err := s.ApplyMove(m)
		if err != nil {
			return -1e9
		}
		v, err := n.model.EvaluateBlended(next, active, &n.weights)
		if err != nil {
			log.Printf("ai/neural: evaluation failed, deferring to heuristic scorer: %v", err)
			return ai.PositionValue(next, active, &n.weights)
		}
		return v
	}
	return ai.RunTurnLoop(state, cfg, recentPatterns, score)
}
