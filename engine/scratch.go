package engine

import "github.com/Sothatsit/ThreePlayerChess/board"

// maxScratchDepth bounds the pre-allocated scratch fleet; the deepening
// loop never asks for more plies than this.
const maxScratchDepth = MaxPly + 1

// ScratchFleet is a fixed, pre-allocated stack of game states, one slot
// per ply depth, reused across move evaluations so a search never
// allocates a *board.State on its hot path.
type ScratchFleet struct {
	slots []*board.State
	depth int
}

// NewScratchFleet allocates every slot up front.
func NewScratchFleet() *ScratchFleet {
	f := &ScratchFleet{slots: make([]*board.State, maxScratchDepth)}
	for i := range f.slots {
		f.slots[i] = &board.State{}
	}
	return f
}

// Push copies from into the next free slot and returns it, growing the
// current depth by one. Panics if the fleet is exhausted — a search that
// hits this has a ply bound larger than MaxPly and is itself a contract
// violation.
func (f *ScratchFleet) Push(from *board.State) *board.State {
	if f.depth >= len(f.slots) {
		panic("engine: scratch fleet exhausted")
	}
	slot := f.slots[f.depth]
	*slot = *from
	f.depth++
	return slot
}

// Pop returns the most recently pushed slot to the pool.
func (f *ScratchFleet) Pop() {
	if f.depth == 0 {
		panic("engine: scratch fleet underflow")
	}
	f.depth--
}

// Depth reports how many slots are currently in use.
func (f *ScratchFleet) Depth() int { return f.depth }
