package neural

import (
	"fmt"
	"sync"

	gonnx "github.com/advancedclimatesystems/gonnx"
	"gorgonia.org/tensor"

	"github.com/kestrelgames/russianbank/internal/ai"
	"github.com/kestrelgames/russianbank/pkg/bank"
)

// Blending constants controlling how much weight the network's value
// output carries against the heuristic evaluation, retuned for this
// board's much smaller position-value range.
const (
	NeuralValueWeight = 0.6
	NeuralValueScale  = 40.0
)

// Model wraps a loaded value network and exposes blended evaluation. It
// is safe for concurrent use; gonnx model runs are serialized behind mu.
type Model struct {
	value *gonnx.Model
	mu    sync.Mutex
}

// LoadModel loads value.onnx from dir. Callers should fall back to the
// heuristic Decider when this returns an error.
func LoadModel(dir string) (*Model, error) {
	path := dir + "/value.onnx"
	m, err := gonnx.NewModelFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("neural: load value model: %w", err)
	}
	return &Model{value: m}, nil
}

// valueScalarToRange maps the network's [-1, 1] win-probability estimate
// into a scalar comparable to PositionValue's range.
func valueScalarToRange(v float32) float64 {
	return float64(v) * NeuralValueScale
}

// runValue runs the value network for perspective and returns its single
// scalar output.
func (m *Model) runValue(state *bank.GameState, perspective bank.Origin) (float32, error) {
	board := EncodeBoard(state, perspective)
	boardTensor := tensor.New(
		tensor.WithShape(1, NumSlots, NumFeatures),
		tensor.Of(tensor.Float32),
		tensor.WithBacking(board),
	)
	handTensor := tensor.New(
		tensor.WithShape(1, 2),
		tensor.Of(tensor.Int64),
		tensor.WithBacking(CollectHandCounts(state, perspective)),
	)

	inputs := gonnx.Tensors{
		"board": boardTensor,
		"hand":  handTensor,
	}

	m.mu.Lock()
	outputs, err := m.value.Run(inputs)
	m.mu.Unlock()
	if err != nil {
		return 0, fmt.Errorf("neural: value run: %w", err)
	}

	out, ok := outputs["value"]
	if !ok {
		for _, v := range outputs {
			out = v
			break
		}
	}
	if out == nil {
		return 0, fmt.Errorf("neural: no output tensor from value model")
	}

	switch d := out.Data().(type) {
	case []float32:
		if len(d) == 0 {
			return 0, fmt.Errorf("neural: empty value output")
		}
		return d[0], nil
	case []float64:
		if len(d) == 0 {
			return 0, fmt.Errorf("neural: empty value output")
		}
		return float32(d[0]), nil
	default:
		return 0, fmt.Errorf("neural: unexpected value output type %T", out.Data())
	}
}

// EvaluateBlended combines the value network's estimate for perspective
// with ai.PositionValue: mostly neural, tempered by the heuristic so a
// degenerate or undertrained network doesn't dominate entirely.
func (m *Model) EvaluateBlended(state *bank.GameState, perspective bank.Origin, weights *ai.Weights) (float64, error) {
	raw, err := m.runValue(state, perspective)
	if err != nil {
		return 0, err
	}
	neuralScalar := valueScalarToRange(raw)
	heuristic := ai.PositionValue(state, perspective, weights)
	return NeuralValueWeight*neuralScalar + (1-NeuralValueWeight)*heuristic, nil
}
