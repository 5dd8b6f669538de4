package engine

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

const (
	// InitialPly is the shallowest depth the iterative-deepening loop
	// tries.
	InitialPly = 2
	// MaxPly caps the deepening loop regardless of remaining time.
	MaxPly = 12
	// ExpectedGameTurns estimates how many turns a game will last, used to
	// spread a time budget evenly across the whole game.
	ExpectedGameTurns = 20
	// FutureTurnBudget bounds how much of the *remaining* game time any
	// single turn may spend, so a long game doesn't burn its whole clock
	// on one early decision.
	FutureTurnBudget = 12
)

// TimeHandler tracks the running estimate of how long a turn should take,
// persisting nanosPerTurn between moves instead of recomputing it from
// scratch every time.
type TimeHandler struct {
	gameLengthNanos int64
	nanosPerTurn    int64
	firstMove       bool
}

// NewTimeHandler creates a handler with no prior game-length estimate.
func NewTimeHandler() *TimeHandler {
	return &TimeHandler{firstMove: true}
}

// Budget computes the nanosecond budget for the current turn, given the
// remaining time on the clock and whether this is one of the game's first
// few moves.
func (h *TimeHandler) Budget(remainingNanos int64, isEarlyMove bool) int64 {
	if h.firstMove || isEarlyMove || remainingNanos > h.gameLengthNanos {
		h.gameLengthNanos = remainingNanos
		h.nanosPerTurn = h.gameLengthNanos / ExpectedGameTurns
		h.firstMove = false
	}

	throttled := remainingNanos / FutureTurnBudget
	if throttled < h.nanosPerTurn {
		return throttled
	}
	return h.nanosPerTurn
}

// DepthResult is what one completed iterative-deepening depth produced.
type DepthResult struct {
	Ply     int
	Move    board.Move
	Nodes   int64
	Elapsed time.Duration
	Utility int64
}

// DeepeningLoop runs searchAtPly for increasing ply values starting at
// InitialPly, stopping either at MaxPly or as soon as the predicted cost
// of the next depth would exceed the remaining budget. It returns
// the move produced by the deepest depth that actually completed.
//
// searchAtPly must be side-effect-free across calls other than through its
// own scratch state; DeepeningLoop never aborts a call once started
// (cancellation is cooperative, between depths only).
func DeepeningLoop(budgetNanos int64, log zerolog.Logger, searchAtPly func(ply int) DepthResult) DepthResult {
	var best DepthResult
	var lastPly int
	var lastDuration time.Duration

	start := time.Now()
	for ply := InitialPly; ; {
		plyStart := time.Now()
		result := searchAtPly(ply)
		plyDuration := time.Since(plyStart)
		best = result

		log.Info().
			Int("depth", ply).
			Int64("utility", result.Utility).
			Int64("nodes", result.Nodes).
			Dur("elapsed", plyDuration).
			Float64("nps", nodesPerSecond(result.Nodes, plyDuration)).
			Msg("completed search depth")

		elapsed := time.Since(start)
		remaining := time.Duration(budgetNanos) - elapsed

		multiplier := nextDepthMultiplier(ply, lastPly, plyDuration, lastDuration)
		predictedNext := time.Duration(float64(plyDuration) * multiplier)

		lastPly, lastDuration = ply, plyDuration

		if predictedNext >= remaining || ply >= MaxPly {
			break
		}
		ply++
	}
	return best
}

// nextDepthMultiplier estimates how much longer the next depth will take
// relative to the depth that just completed, from the ratio of the two
// most recently completed depths' durations. When the gap between depths
// is 2, the ratio is dampened by raising it to the power 0.4 —
// sliding-move branching grows much slower than ply-over-ply material
// search would suggest. DeepeningLoop steps one ply at a time, so a gap of
// 2 arises only after its first depth (InitialPly against lastPly 0), when
// there is no ratio yet. The result is clamped to at least 1 and then
// offset by a fixed safety margin.
func nextDepthMultiplier(ply, lastPly int, duration, lastDuration time.Duration) float64 {
	var mul float64
	if lastPly > 0 && lastDuration > 0 {
		mul = math.Ceil(float64(duration+lastDuration-1) / float64(lastDuration))
	}
	if ply-lastPly == 2 {
		mul = math.Ceil(math.Pow(mul, 0.4))
	}
	return math.Max(1, mul) + 4
}

func nodesPerSecond(nodes int64, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(nodes) / d.Seconds()
}
