package engine

import (
	"math"
	"math/rand"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

// PVSStrategy is alpha-beta search with minimal windows: the first child
// of a node is searched with the full (alpha,beta) window, and every
// subsequent child is first probed with the null window (alpha, alpha+1)
// and only re-searched with the full window if the probe's result lands
// strictly inside it.
//
// The three-player adaptation keeps both opponents as minimizers against
// the agent rather than flipping sign between them: mul is +1 on the
// agent's own turn and -1 otherwise, and keepAlphaBeta is true exactly
// when the current and next-to-move colors are both non-agent, so the
// window isn't inverted across a move that never involves the agent.
type PVSStrategy struct {
	ply    int
	cat    *board.Catalogue
	params *Params
	fleet  *ScratchFleet
	rng    *rand.Rand
	nodes  int64
}

func NewPVSStrategy(cat *board.Catalogue, params *Params, ply int) *PVSStrategy {
	return &PVSStrategy{
		ply:    ply,
		cat:    cat,
		params: params,
		fleet:  NewScratchFleet(),
		rng:    rand.New(rand.NewSource(1)),
	}
}

func (st *PVSStrategy) Decide(root *board.State) Decision {
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
			utility = st.search(child, agent, st.ply-1, math.MinInt64, math.MaxInt64)
		}
		st.fleet.Pop()

		if utility > best || (utility == best && st.rng.Intn(2) == 0) {
			best = utility
			bestMove = m
		}
	}
	return Decision{Move: bestMove, Utility: best, Nodes: st.nodes}
}

// search scores state from agent's perspective, depth plies deep, within
// the window (alpha,beta) — all expressed in the sign-flipped space
// described on PVSStrategy.
func (st *PVSStrategy) search(state *board.State, agent board.Color, depth int, alpha, beta int64) int64 {
	turn := state.Turn()
	next := turn.Next()
	isAgent := turn == agent

	var mul int64 = 1
	if !isAgent {
		mul = -1
	}
	keepAlphaBeta := !isAgent && next != agent

	moves := board.EnumerateMoves(state, st.cat)
	for _, m := range moves {
		child := st.fleet.Push(state)
		child.ApplyMove(m, st.params.Table())
		st.nodes++

		var utility int64
		if depth == 1 || child.GameOver().Decided {
			utility = mul * child.Utility[agent]
		} else {
			callAlpha, callBeta := pvsWindow(keepAlphaBeta, alpha, beta, false, 0)
			utility = mul * st.search(child, agent, depth-1, callAlpha, callBeta)
			if alpha < utility && utility < beta {
				callAlpha, callBeta = pvsWindow(keepAlphaBeta, alpha, beta, true, utility)
				utility = mul * st.search(child, agent, depth-1, callAlpha, callBeta)
			}
		}
		st.fleet.Pop()

		if utility > alpha {
			alpha = utility
			if alpha >= beta {
				break
			}
		}
	}
	return mul * alpha
}

// pvsWindow computes the child-call window for either the initial null-
// window probe (reSearch=false) or the full re-search once the probe
// landed strictly inside (alpha,beta) (reSearch=true, probeUtility is that
// probe's result).
func pvsWindow(keepAlphaBeta bool, alpha, beta int64, reSearch bool, probeUtility int64) (int64, int64) {
	if !reSearch {
		if keepAlphaBeta {
			return alpha, alpha + 1
		}
		return -alpha - 1, -alpha
	}
	if keepAlphaBeta {
		return probeUtility, beta
	}
	return -beta, -probeUtility
}
