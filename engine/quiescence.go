package engine

import (
	"math"
	"math/rand"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

// QuiescenceStrategy extends Maximax's greedy-self-play search with a
// selective-deepening tail applied only after a capture: once the
// "traditional" ply budget is spent, if the move that just landed on the
// leaf was a capture (or followed one), search quiescencePly plies
// further, considering only captures, before settling on a leaf utility
// A quiescence node's tie-break prefers a capturing move over a
// non-capturing one at equal utility, since a capture is the only thing
// that can extend the line further.
type QuiescenceStrategy struct {
	traditionalPly int
	quiescencePly  int
	cat            *board.Catalogue
	params         *Params
	fleet          *ScratchFleet
	rng            *rand.Rand
	nodes          int64
}

// NewQuiescenceStrategy builds a strategy searching traditionalPly plies
// normally, then up to quiescencePly further plies of captures only.
func NewQuiescenceStrategy(cat *board.Catalogue, params *Params, traditionalPly, quiescencePly int) *QuiescenceStrategy {
	return &QuiescenceStrategy{
		traditionalPly: traditionalPly,
		quiescencePly:  quiescencePly,
		cat:            cat,
		params:         params,
		fleet:          NewScratchFleet(),
		rng:            rand.New(rand.NewSource(1)),
	}
}

func (st *QuiescenceStrategy) Decide(root *board.State) Decision {
	st.nodes = 0
	agent := root.Turn()
	moves := board.EnumerateMoves(root, st.cat)
	if len(moves) == 0 {
		return Decision{Move: fallbackMove(st.cat, agent, st.rng), Utility: root.Utility[agent], Nodes: st.nodes}
	}

	best := int64(math.MinInt64)
	var bestMove board.Move

	for _, m := range moves {
		child := st.fleet.Push(root)
		child.ApplyMove(m, st.params.Table())
		st.nodes++

		if over := child.GameOver(); over.Decided && over.Winner == agent {
			st.fleet.Pop()
			return Decision{Move: m, Utility: child.Utility[agent], Nodes: st.nodes}
		}

		var repUtility [3]int64
		if st.traditionalPly == 1 || child.GameOver().Decided {
			repUtility = child.Utility
		} else {
			isCapture := root.PieceAt(m.To()).Present()
			repUtility = st.representative(child, st.traditionalPly-1, false, isCapture)
		}
		st.fleet.Pop()

		utility := repUtility[agent]
		if utility > best || (utility == best && st.rng.Intn(2) == 0) {
			best = utility
			bestMove = m
		}
	}
	return Decision{Move: bestMove, Utility: best, Nodes: st.nodes}
}

// representative mirrors MaximaxStrategy.representative, with the added
// quiescence bookkeeping: inQuiescence marks that the capture-only tail
// has been entered, and lastMoveCaptured records whether the move that
// produced state was itself a capture (the trigger for entering the
// tail).
func (st *QuiescenceStrategy) representative(state *board.State, depth int, inQuiescence, lastMoveCaptured bool) [3]int64 {
	selfColor := state.Turn()
	moves := board.EnumerateMoves(state, st.cat)

	bestSelf := int64(math.MinInt64)
	var best [3]int64
	found, bestIsCapture := false, false

	for _, m := range moves {
		isCapture := state.PieceAt(m.To()).Present()
		child := st.fleet.Push(state)
		child.ApplyMove(m, st.params.Table())
		st.nodes++

		var repUtility [3]int64
		over := child.GameOver()
		switch {
		case over.Decided && over.Winner == selfColor:
			st.fleet.Pop()
			return child.Utility
		case over.Decided:
			repUtility = child.Utility
		case inQuiescence && !isCapture && !lastMoveCaptured:
			repUtility = child.Utility
		case depth == 1:
			if st.quiescencePly <= 0 || inQuiescence || (!isCapture && !lastMoveCaptured) {
				repUtility = child.Utility
			} else {
				repUtility = st.representative(child, st.quiescencePly, true, isCapture)
			}
		default:
			repUtility = st.representative(child, depth-1, inQuiescence, isCapture)
		}
		st.fleet.Pop()

		if repUtility[selfColor] > bestSelf || (repUtility[selfColor] == bestSelf && isCapture) {
			found = true
			bestSelf = repUtility[selfColor]
			best = repUtility
			bestIsCapture = isCapture
		}
	}

	if (!inQuiescence && found) || bestIsCapture {
		return best
	}
	// No further capture found in quiescence (or no legal moves at all,
	// which the search tree is not expected to reach — stalemate/checkmate
	// filtering is the reference board's responsibility, not this core's).
	return state.Utility
}
