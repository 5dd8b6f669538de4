package engine

import (
	"math"
	"math/rand"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

// MaximaxStrategy models every color as greedy for itself: at each
// internal node the side to move picks whichever of its moves maximizes
// its own resulting utility, and that move's *entire* resulting utility
// vector propagates upward unchanged — so an ancestor several plies
// removed can still read any color's utility off of it, in particular the
// root agent's own, without re-deriving anything. This is the
// common three-player heuristic that opponents play for themselves rather
// than cooperating against the agent.
type MaximaxStrategy struct {
	ply    int
	cat    *board.Catalogue
	params *Params
	fleet  *ScratchFleet
	rng    *rand.Rand
	nodes  int64
}

func NewMaximaxStrategy(cat *board.Catalogue, params *Params, ply int) *MaximaxStrategy {
	return &MaximaxStrategy{
		ply:    ply,
		cat:    cat,
		params: params,
		fleet:  NewScratchFleet(),
		rng:    rand.New(rand.NewSource(1)),
	}
}

// Decide returns the best move from root. It first checks every root move
// for an instant win (mover captures a king on the very first ply) and
// returns immediately if one exists, before falling back to the full
// max-max-max search.
func (st *MaximaxStrategy) Decide(root *board.State) Decision {
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
		if st.ply == 1 || child.GameOver().Decided {
			repUtility = child.Utility
		} else {
			repUtility = st.representative(child, st.ply-1)
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

// representative finds, depth plies into the future from state, the
// utility vector of whichever line of greedy self-play results — selected
// at each node by that node's own color's utility, but returned in full so
// every ancestor can read its own color's value out of it.
func (st *MaximaxStrategy) representative(state *board.State, depth int) [3]int64 {
	selfColor := state.Turn()
	moves := board.EnumerateMoves(state, st.cat)

	bestSelf := int64(math.MinInt64)
	var best [3]int64
	found := false

	for _, m := range moves {
		child := st.fleet.Push(state)
		child.ApplyMove(m, st.params.Table())
		st.nodes++

		var repUtility [3]int64
		over := child.GameOver()
		switch {
		case over.Decided && over.Winner == selfColor:
			st.fleet.Pop()
			return child.Utility
		case over.Decided || depth == 1:
			repUtility = child.Utility
		default:
			repUtility = st.representative(child, depth-1)
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
