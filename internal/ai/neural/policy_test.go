package neural

import (
	"testing"

	"github.com/kestrelgames/russianbank/internal/ai"
)

func TestNewNeuralDecisionFallsBackWhenModelMissing(t *testing.T) {
	d := NewNeuralDecision("/nonexistent/model/dir", ai.DefaultWeights())
	if _, ok := d.(ai.Heuristic); !ok {
		t.Errorf("expected fallback to ai.Heuristic when model load fails, got %T", d)
	}
}

func TestLoadModelErrorsWhenMissing(t *testing.T) {
	if _, err := LoadModel("/nonexistent/model/dir"); err == nil {
		t.Error("expected an error loading a value model from a nonexistent directory")
	}
}
