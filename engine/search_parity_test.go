package engine

import (
	"testing"

	"github.com/Sothatsit/ThreePlayerChess/board"
	"github.com/Sothatsit/ThreePlayerChess/internal/refboard"
)

// kingTriangleState builds a small, non-trivial three-king position with a
// handful of pawns and a rook so both Minimax and PVS have real branching
// to search, rather than the degenerate single-move case.
func kingTriangleState(table *board.UtilityTable) *board.State {
	ref := refboard.New(board.White)
	ref.Place(refboard.Position{Segment: 0, Row: 0, Col: 4}, board.NewPiece(board.King, board.White))
	ref.Place(refboard.Position{Segment: 1, Row: 0, Col: 4}, board.NewPiece(board.King, board.Gray))
	ref.Place(refboard.Position{Segment: 2, Row: 0, Col: 4}, board.NewPiece(board.King, board.Black))
	ref.Place(refboard.Position{Segment: 0, Row: 1, Col: 2}, board.NewPiece(board.Rook, board.White))
	ref.Place(refboard.Position{Segment: 0, Row: 1, Col: 6}, board.NewPiece(board.Pawn, board.White))
	ref.Place(refboard.Position{Segment: 1, Row: 1, Col: 3}, board.NewPiece(board.Pawn, board.Gray))
	ref.Place(refboard.Position{Segment: 2, Row: 1, Col: 5}, board.NewPiece(board.Pawn, board.Black))
	return board.FromReferenceBoard(ref.AsExternalBoard(), table)
}

func TestPVSMatchesMinimaxUtility(t *testing.T) {
	cat := board.GlobalCatalogue()
	params := DefaultParams()
	state := kingTriangleState(params.Table())

	for ply := 1; ply <= 3; ply++ {
		mm := NewMinimaxStrategy(cat, params, ply)
		pvs := NewPVSStrategy(cat, params, ply)

		mmResult := mm.Decide(state)
		pvsResult := pvs.Decide(state)

		if mmResult.Utility != pvsResult.Utility {
			t.Errorf("ply %d: minimax utility %d != pvs utility %d", ply, mmResult.Utility, pvsResult.Utility)
		}
	}
}

func TestMaximaxTakesInstantWin(t *testing.T) {
	params := DefaultParams()
	ref := refboard.New(board.White)
	ref.Place(refboard.Position{Segment: 0, Row: 0, Col: 4}, board.NewPiece(board.King, board.White))
	ref.Place(refboard.Position{Segment: 1, Row: 0, Col: 4}, board.NewPiece(board.King, board.Gray))
	ref.Place(refboard.Position{Segment: 2, Row: 0, Col: 4}, board.NewPiece(board.King, board.Black))
	// A white rook one square from the gray king: capturing it is an
	// immediate win regardless of anything deeper search would prefer.
	ref.Place(refboard.Position{Segment: 1, Row: 0, Col: 5}, board.NewPiece(board.Rook, board.White))
	state := board.FromReferenceBoard(ref.AsExternalBoard(), params.Table())

	strat := NewMaximaxStrategy(board.GlobalCatalogue(), params, 4)
	decision := strat.Decide(state)

	if decision.Move == nil {
		t.Fatal("expected maximax to find the instant-win capture")
	}
	child := &board.State{}
	*child = *state
	child.ApplyMove(decision.Move, params.Table())
	over := child.GameOver()
	if !over.Decided || over.Winner != board.White {
		t.Errorf("maximax's chosen move did not produce an immediate White win: GameOver=%+v", over)
	}
}
