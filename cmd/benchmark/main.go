// Command benchmark plays a trained weight vector against the reference
// weights (or, when a neural model is present, against the neural
// decision path) and reports win/loss/draw counts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/kestrelgames/russianbank/internal/ai"
	"github.com/kestrelgames/russianbank/internal/ai/neural"
	"github.com/kestrelgames/russianbank/internal/logger"
	"github.com/kestrelgames/russianbank/pkg/bank"
)

func main() {
	logger.Init()

	var (
		weightsPath string
		games       int
		modelDir    string
		maxTurns    int
		seed        int64
		jsonOut     bool
	)

	flag.StringVar(&weightsPath, "weights", "", "Path to the weights file to benchmark (required)")
	flag.IntVar(&games, "games", 20, "Number of games to play in total (the candidate alternates sides each game)")
	flag.StringVar(&modelDir, "model", "", "Optional ONNX model directory; when set and loadable, the opponent is the neural decision path instead of the reference weights")
	flag.IntVar(&maxTurns, "max-turns", 400, "Turn cap per game")
	flag.Int64Var(&seed, "seed", 0, "Base RNG seed (0 derives one from the current time)")
	flag.BoolVar(&jsonOut, "json", false, "Output results as JSON")
	flag.Parse()

	if weightsPath == "" {
		fmt.Fprintln(os.Stderr, "benchmark: -weights is required")
		os.Exit(1)
	}

	rec, err := ai.LoadWeightsFile(weightsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "benchmark: %v\n", err)
		os.Exit(1)
	}
	candidateWeights := rec.ToWeights()
	baselineWeights := ai.DefaultWeights()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var opponent ai.Decider = ai.Heuristic{}
	opponentLabel := "reference weights"
	if modelDir != "" {
		opponent = neural.NewNeuralDecision(modelDir, baselineWeights)
		if _, ok := opponent.(ai.Heuristic); !ok {
			opponentLabel = "neural model at " + modelDir
		}
	}

	candidate := ai.Heuristic{}
	cfg := ai.DefaultConfig()

	var wins, losses, draws int
	for i := 0; i < games; i++ {
		candidateIsPlayer1 := i%2 == 0
		gameSeed := seed + int64(i)

		var winner *bank.Origin
		if candidateIsPlayer1 {
			winner = playGame(gameSeed, candidate, candidateWeights, opponent, baselineWeights, maxTurns, cfg)
		} else {
			winner = playGame(gameSeed, opponent, baselineWeights, candidate, candidateWeights, maxTurns, cfg)
		}

		switch {
		case winner == nil:
			draws++
		case (*winner == bank.Player1) == candidateIsPlayer1:
			wins++
		default:
			losses++
		}
	}

	if jsonOut {
		printJSON(weightsPath, opponentLabel, games, wins, losses, draws)
	} else {
		printSummary(weightsPath, opponentLabel, games, wins, losses, draws)
	}
}

// playGame runs one game to completion (or to maxTurns) with p1 driving
// Player1 and p2 driving Player2, and returns the engine's declared
// winner, or nil for a draw.
func playGame(seed int64, p1 ai.Decider, p1Weights ai.Weights, p2 ai.Decider, p2Weights ai.Weights, maxTurns int, cfg ai.Config) *bank.Origin {
	state := bank.Initialize(&seed)
	var windowP1, windowP2 []ai.Pattern

	for turns := 0; state.Phase != bank.PhaseEnded && turns < maxTurns; turns++ {
		active := state.CurrentTurn
		var steps []ai.Step
		if active == bank.Player1 {
			steps, windowP1 = p1.ComputeTurn(state, p1Weights, cfg, windowP1)
		} else {
			steps, windowP2 = p2.ComputeTurn(state, p2Weights, cfg, windowP2)
		}
		if len(steps) == 0 {
			break
		}
		state = steps[len(steps)-1].State
	}

	return state.Winner
}

func printSummary(weightsPath, opponentLabel string, games, wins, losses, draws int) {
	fmt.Printf("Benchmark: %s vs %s (%d games)\n", weightsPath, opponentLabel, games)
	fmt.Printf("  %d wins, %d losses, %d draws\n", wins, losses, draws)
	if games > 0 {
		fmt.Printf("  win rate: %.1f%%\n", 100*float64(wins)/float64(games))
	}
}

func printJSON(weightsPath, opponentLabel string, games, wins, losses, draws int) {
	out := struct {
		Weights  string  `json:"weights"`
		Opponent string  `json:"opponent"`
		Games    int     `json:"games"`
		Wins     int     `json:"wins"`
		Losses   int     `json:"losses"`
		Draws    int     `json:"draws"`
		WinRate  float64 `json:"winRate"`
	}{
		Weights:  weightsPath,
		Opponent: opponentLabel,
		Games:    games,
		Wins:     wins,
		Losses:   losses,
		Draws:    draws,
	}
	if games > 0 {
		out.WinRate = float64(wins) / float64(games)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(out)
}
