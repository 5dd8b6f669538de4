package engine

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestTimeHandlerBudgetThrottlesLateInGame(t *testing.T) {
	h := NewTimeHandler()

	first := h.Budget(int64(20*time.Minute), true)
	if first != int64(20*time.Minute)/ExpectedGameTurns {
		t.Errorf("first-move budget = %d, want %d", first, int64(20*time.Minute)/ExpectedGameTurns)
	}

	// Plenty of clock left relative to the per-turn estimate: the
	// nanosPerTurn estimate applies, not the throttled fraction.
	mid := h.Budget(int64(19*time.Minute), false)
	if mid != first {
		t.Errorf("mid-game budget = %d, want the unchanged per-turn estimate %d", mid, first)
	}

	// Very little clock left: FutureTurnBudget throttling must kick in and
	// cap the return well below the stale per-turn estimate.
	low := h.Budget(int64(10*time.Second), false)
	if low >= first {
		t.Errorf("low-clock budget = %d, should be throttled below %d", low, first)
	}
}

func TestDeepeningLoopStopsAtMaxPly(t *testing.T) {
	log := zerolog.Nop()
	calls := 0
	result := DeepeningLoop(int64(time.Hour), log, func(ply int) DepthResult {
		calls++
		return DepthResult{Ply: ply, Utility: int64(ply), Nodes: 1, Elapsed: time.Microsecond}
	})

	if result.Ply != MaxPly {
		t.Errorf("DeepeningLoop with a huge budget should reach MaxPly, got ply %d", result.Ply)
	}
	if calls != MaxPly-InitialPly+1 {
		t.Errorf("searchAtPly called %d times, want %d", calls, MaxPly-InitialPly+1)
	}
}

func TestDeepeningLoopStopsWhenBudgetExhausted(t *testing.T) {
	log := zerolog.Nop()
	result := DeepeningLoop(int64(time.Microsecond), log, func(ply int) DepthResult {
		return DepthResult{Ply: ply, Utility: int64(ply), Nodes: 1, Elapsed: time.Millisecond}
	})

	if result.Ply >= MaxPly {
		t.Errorf("a near-zero budget should stop well before MaxPly, got ply %d", result.Ply)
	}
}
