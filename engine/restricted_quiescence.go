package engine

import (
	"math"
	"math/rand"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

// captureWindow is the three-ply-deep recency window of capturing moves
// threaded through restricted quiescence: Near holds the capturing moves
// available at the node immediately before quiescence was entered (or,
// one ply further in, the node before that), Mid is one ply older than
// Near, and Far is two plies older. A move present in Far has been
// "known about" by the opponent for three plies and is no longer treated
// as a quiescence-worthy surprise.
type captureWindow struct {
	Near, Mid, Far *IdentitySet[board.Move]
}

// shift produces the window for one ply deeper into quiescence: fresh
// becomes the new Near, the old Near becomes Mid, the old Mid becomes Far,
// and the old Far expires.
func (w captureWindow) shift(fresh *IdentitySet[board.Move]) captureWindow {
	return captureWindow{Near: fresh, Mid: w.Near, Far: w.Mid}
}

// knownAbout reports whether m was already available three plies ago,
// per the Far member of the window.
func (w captureWindow) knownAbout(m board.Move) bool {
	return w.Far != nil && w.Far.Contains(m)
}

func emptyCaptureWindow() captureWindow {
	return captureWindow{
		Near: NewIdentitySet[board.Move](64),
		Mid:  NewIdentitySet[board.Move](64),
		Far:  NewIdentitySet[board.Move](64),
	}
}

// RestrictedQuiescenceStrategy is Maximax plus a quiescence tail like
// QuiescenceStrategy, but the tail only considers a capture if it wasn't
// already available three plies earlier — bounding the capture-chain
// explosion that unrestricted quiescence accepts on crowded boards.
type RestrictedQuiescenceStrategy struct {
	ply           int
	quiescencePly int
	cat           *board.Catalogue
	params        *Params
	fleet         *ScratchFleet
	rng           *rand.Rand
	nodes         int64
}

func NewRestrictedQuiescenceStrategy(cat *board.Catalogue, params *Params, ply, quiescencePly int) *RestrictedQuiescenceStrategy {
	return &RestrictedQuiescenceStrategy{
		ply:           ply,
		quiescencePly: quiescencePly,
		cat:           cat,
		params:        params,
		fleet:         NewScratchFleet(),
		rng:           rand.New(rand.NewSource(1)),
	}
}

func capturingMoves(state *board.State, cat *board.Catalogue) *IdentitySet[board.Move] {
	set := NewIdentitySet[board.Move](64)
	for _, m := range board.EnumerateMoves(state, cat) {
		if state.PieceAt(m.To()).Present() {
			set.Add(m)
		}
	}
	return set
}

func (st *RestrictedQuiescenceStrategy) Decide(root *board.State) Decision {
	st.nodes = 0
	agent := root.Turn()
	moves := board.EnumerateMoves(root, st.cat)
	if len(moves) == 0 {
		return Decision{Move: fallbackMove(st.cat, agent, st.rng), Utility: root.Utility[agent], Nodes: st.nodes}
	}
	window := emptyCaptureWindow()
	window.Near = capturingMoves(root, st.cat)

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
		if st.ply == 1 || child.GameOver().Decided {
			repUtility = child.Utility
		} else {
			isCapture := root.PieceAt(m.To()).Present()
			repUtility = st.maximaxTail(child, st.ply-1, isCapture, window)
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

// maximaxTail is the ordinary (non-quiescence) portion of the search: the
// window threads through unchanged until depth reaches 1, at which point
// the node's own capturing moves become the window's Near member for the
// quiescence tail that follows.
func (st *RestrictedQuiescenceStrategy) maximaxTail(state *board.State, depth int, lastMoveCaptured bool, window captureWindow) [3]int64 {
	selfColor := state.Turn()
	moves := board.EnumerateMoves(state, st.cat)

	bestSelf := int64(math.MinInt64)
	var best [3]int64
	found := false

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
		case depth == 1:
			here := capturingMoves(state, st.cat)
			shifted := window.shift(here)
			if st.quiescencePly <= 0 || (!isCapture && !lastMoveCaptured) || shifted.knownAbout(m) {
				repUtility = child.Utility
			} else {
				repUtility = st.quiesce(child, st.quiescencePly, isCapture, shifted)
			}
		default:
			repUtility = st.maximaxTail(child, depth-1, isCapture, window)
		}
		st.fleet.Pop()

		if !found || repUtility[selfColor] > bestSelf {
			found = true
			bestSelf = repUtility[selfColor]
			best = repUtility
		}
	}
	if !found {
		return state.Utility
	}
	return best
}

// quiesce is the capture-only tail, shifting the recency window by one
// ply on every recursive call.
func (st *RestrictedQuiescenceStrategy) quiesce(state *board.State, depth int, lastMoveCaptured bool, window captureWindow) [3]int64 {
	selfColor := state.Turn()
	here := capturingMoves(state, st.cat)
	shifted := window.shift(here)
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
		case depth == 1 || (!isCapture && !lastMoveCaptured) || shifted.knownAbout(m):
			repUtility = child.Utility
		default:
			repUtility = st.quiesce(child, depth-1, isCapture, shifted)
		}
		st.fleet.Pop()

		if repUtility[selfColor] > bestSelf || (repUtility[selfColor] == bestSelf && isCapture) {
			found = true
			bestSelf = repUtility[selfColor]
			best = repUtility
			bestIsCapture = isCapture
		}
	}
	if bestIsCapture {
		return best
	}
	if found {
		return state.Utility
	}
	return state.Utility
}
