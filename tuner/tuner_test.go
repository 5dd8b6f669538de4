package tuner

import (
	"testing"

	"github.com/Sothatsit/ThreePlayerChess/board"
	"github.com/Sothatsit/ThreePlayerChess/engine"
	"github.com/Sothatsit/ThreePlayerChess/internal/refboard"
)

// queenHeavyState builds a position where color White has an extra queen
// relative to Gray, and the rest of the board bare — an obviously
// separable "more queens wins" signal.
func queenHeavyState(t *testing.T, whiteQueens, grayQueens int, table *board.UtilityTable) *board.State {
	t.Helper()
	ref := refboard.New(board.White)
	next := 0
	for i := 0; i < whiteQueens; i++ {
		ref.Place(refboard.Position{Segment: 0, Row: 0, Col: next % 8}, board.NewPiece(board.Queen, board.White))
		next++
	}
	next = 0
	for i := 0; i < grayQueens; i++ {
		ref.Place(refboard.Position{Segment: 1, Row: 0, Col: next % 8}, board.NewPiece(board.Queen, board.Gray))
		next++
	}
	return board.FromReferenceBoard(ref.AsExternalBoard(), table)
}

func TestTuneMovesQueenWeightRelativeToPawn(t *testing.T) {
	start := engine.DefaultStart
	end := engine.DefaultEnd

	params := engine.NewParams(start, end)
	samples := []Sample{
		{State: queenHeavyState(t, 2, 0, params.Table()), Perspective: board.White, Outcome: 1.0},
		{State: queenHeavyState(t, 0, 2, params.Table()), Perspective: board.White, Outcome: 0.0},
		{State: queenHeavyState(t, 1, 1, params.Table()), Perspective: board.White, Outcome: 0.5},
	}

	result, err := Tune(samples, start, end)
	if err != nil {
		t.Fatalf("Tune: %v", err)
	}

	startRatio := result.Start.TypeValues[board.Queen] / result.Start.TypeValues[board.Pawn]
	initialRatio := start.TypeValues[board.Queen] / start.TypeValues[board.Pawn]
	if startRatio <= initialRatio {
		t.Errorf("tuning did not increase queen/pawn weight ratio: got %v, started at %v", startRatio, initialRatio)
	}
}
