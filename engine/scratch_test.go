package engine

import (
	"testing"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

func TestScratchFleetPushCopiesState(t *testing.T) {
	fleet := NewScratchFleet()
	from := &board.State{}
	from.SetPieceAt(board.NewSquare(0, 0, 0), board.NewPiece(board.Rook, board.White))

	child := fleet.Push(from)
	if child.PieceAt(board.NewSquare(0, 0, 0)) != from.PieceAt(board.NewSquare(0, 0, 0)) {
		t.Error("Push did not copy the source state's pieces")
	}
	if fleet.Depth() != 1 {
		t.Errorf("Depth() = %d, want 1", fleet.Depth())
	}

	// Mutating the source afterward must not affect the already-pushed copy.
	from.SetPieceAt(board.NewSquare(0, 0, 0), board.NewPiece(board.Queen, board.White))
	if child.PieceAt(board.NewSquare(0, 0, 0)).Type() != board.Rook {
		t.Error("Push aliased the source state instead of copying it")
	}

	fleet.Pop()
	if fleet.Depth() != 0 {
		t.Errorf("Depth() after Pop = %d, want 0", fleet.Depth())
	}
}

func TestScratchFleetPopUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Pop on an empty fleet to panic")
		}
	}()
	NewScratchFleet().Pop()
}

func TestScratchFleetPushExhaustionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected Push past maxScratchDepth to panic")
		}
	}()
	fleet := NewScratchFleet()
	state := &board.State{}
	for i := 0; i <= maxScratchDepth; i++ {
		fleet.Push(state)
	}
}
