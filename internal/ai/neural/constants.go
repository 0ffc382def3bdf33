// Package neural adapts the heuristic decision maker's Decider interface
// to an ONNX-backed value network, for the optional neural benchmark
// opponent. Training never exercises this path; only cmd/benchmark does,
// and only when model files are present.
package neural

import "github.com/kestrelgames/russianbank/pkg/bank"

// NumPlayerSlots is the count of per-player pile slots the board encoding
// carries: reserve, waste, four tableau piles, drawn card.
const NumPlayerSlots = 7

// NumFoundationSlots mirrors pkg/bank's fixed foundation count.
const NumFoundationSlots = 8

// NumSlots is the total number of pile slots in the flat board encoding:
// both players' pile slots plus the shared foundations.
const NumSlots = 2*NumPlayerSlots + NumFoundationSlots

// NumFeatures is the per-slot feature width: rank one-hot (13, ranks
// 1..13), suit one-hot (4), origin one-hot (2), plus a presence bit for
// slots that can be empty.
const NumFeatures = 13 + 4 + 2 + 1

// Slot offsets within one player's 7-slot block.
const (
	SlotReserve = 0
	SlotWaste   = 1
	SlotTableau = 2 // occupies indices 2..5
	SlotDrawn   = 6
)

func playerBlockOffset(perspective, active bank.Origin) int {
	if active == perspective {
		return 0
	}
	return NumPlayerSlots
}

func foundationSlotOffset() int {
	return 2 * NumPlayerSlots
}
