package engine

import (
	"math"
	"math/rand"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

// Decision is what a search strategy returns for the root position: the
// move to play, the utility it was chosen under, and how many nodes the
// search visited (for diagnostics only).
type Decision struct {
	Move    board.Move
	Utility int64
	Nodes   int64
}

// MinimaxStrategy treats the root agent as the sole maximizer and both
// other colors as minimizers against it — "minimax with no
// frills".
type MinimaxStrategy struct {
	ply    int
	cat    *board.Catalogue
	params *Params
	fleet  *ScratchFleet
	rng    *rand.Rand
	nodes  int64
}

// NewMinimaxStrategy builds a strategy fixed to searching exactly ply
// plies deep.
func NewMinimaxStrategy(cat *board.Catalogue, params *Params, ply int) *MinimaxStrategy {
	return &MinimaxStrategy{
		ply:    ply,
		cat:    cat,
		params: params,
		fleet:  NewScratchFleet(),
		rng:    rand.New(rand.NewSource(1)),
	}
}

// Decide returns the best move from root for root's side to move.
func (st *MinimaxStrategy) Decide(root *board.State) Decision {
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

		var utility int64
		if st.ply == 1 || child.GameOver().Decided {
			utility = child.Utility[agent]
		} else {
			utility = st.search(child, agent, st.ply-1)
		}
		st.fleet.Pop()

		if utility > best || (utility == best && st.rng.Intn(2) == 0) {
			best = utility
			bestMove = m
		}
	}
	return Decision{Move: bestMove, Utility: best, Nodes: st.nodes}
}

// search scores state from agent's perspective, depth plies deep.
// agent's own turn maximizes; any other color's turn minimizes.
func (st *MinimaxStrategy) search(state *board.State, agent board.Color, depth int) int64 {
	moves := board.EnumerateMoves(state, st.cat)
	maximize := state.Turn() == agent

	notable := int64(math.MinInt64)
	if !maximize {
		notable = math.MaxInt64
	}

	for _, m := range moves {
		child := st.fleet.Push(state)
		child.ApplyMove(m, st.params.Table())
		st.nodes++

		var utility int64
		if depth == 1 || child.GameOver().Decided {
			utility = child.Utility[agent]
		} else {
			utility = st.search(child, agent, depth-1)
		}
		st.fleet.Pop()

		if maximize {
			if utility > notable {
				notable = utility
			}
		} else {
			if utility < notable {
				notable = utility
			}
		}
	}
	return notable
}
