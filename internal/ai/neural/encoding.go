package neural

import "github.com/kestrelgames/russianbank/pkg/bank"

// EncodeBoard flattens state into a [NumSlots * NumFeatures] float32
// tensor from perspective's point of view: perspective's seven pile
// slots come first, then the opponent's seven, then the eight shared
// foundations. Each slot encodes the top card of its pile (or the held
// drawn card) as a one-hot rank/suit/origin plus a presence bit.
func EncodeBoard(state *bank.GameState, perspective bank.Origin) []float32 {
	out := make([]float32, NumSlots*NumFeatures)

	writeCard := func(slot int, card bank.Card, present bool) {
		base := slot * NumFeatures
		if !present {
			return
		}
		out[base+card.Rank-1] = 1
		out[base+13+int(card.Suit)] = 1
		out[base+13+4+int(card.Origin)] = 1
		out[base+13+4+2] = 1
	}

	encodePlayer := func(owner bank.Origin, blockOffset int) {
		if c, ok := state.TopCard(bank.Reserve(owner)); ok {
			writeCard(blockOffset+SlotReserve, c, true)
		}
		if c, ok := state.TopCard(bank.Waste(owner)); ok {
			writeCard(blockOffset+SlotWaste, c, true)
		}
		for i := 0; i < 4; i++ {
			if c, ok := state.TopCard(bank.Tableau(owner, i)); ok {
				writeCard(blockOffset+SlotTableau+i, c, true)
			}
		}
		if c, ok := state.TopCard(bank.Drawn(owner)); ok {
			writeCard(blockOffset+SlotDrawn, c, true)
		}
	}

	encodePlayer(perspective, playerBlockOffset(perspective, perspective))
	opp := perspective.Opponent()
	encodePlayer(opp, playerBlockOffset(perspective, opp))

	foundationBase := foundationSlotOffset()
	for i := 0; i < NumFoundationSlots; i++ {
		if c, ok := state.TopCard(bank.Foundation(i)); ok {
			writeCard(foundationBase+i, c, true)
		}
	}

	return out
}

// CollectHandCounts returns [perspectiveHandSize, opponentHandSize] as a
// small auxiliary input some policy models condition on, alongside the
// board tensor.
func CollectHandCounts(state *bank.GameState, perspective bank.Origin) []int64 {
	return []int64{
		int64(len(state.Player(perspective).Hand)),
		int64(len(state.Player(perspective.Opponent()).Hand)),
	}
}
