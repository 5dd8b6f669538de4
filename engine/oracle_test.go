package engine

import (
	"testing"

	"github.com/Sothatsit/ThreePlayerChess/board"
	"github.com/Sothatsit/ThreePlayerChess/internal/refboard"
)

func TestVerifyUtilityInvariantPassesAfterApplyMove(t *testing.T) {
	params := DefaultParams()
	state := kingTriangleState(params.Table())

	moves := board.EnumerateMoves(state, board.GlobalCatalogue())
	if len(moves) == 0 {
		t.Fatal("expected at least one legal move from the test position")
	}
	state.ApplyMove(moves[0], params.Table())

	if err := VerifyUtilityInvariant(state, params.Table()); err != nil {
		t.Errorf("VerifyUtilityInvariant: %v", err)
	}
}

func TestVerifySkipIndexConsistencyAgreesWithBruteForce(t *testing.T) {
	params := DefaultParams()

	ref := refboard.New(board.White)
	ref.Place(refboard.Position{Segment: 0, Row: 0, Col: 0}, board.NewPiece(board.Rook, board.White))
	ref.Place(refboard.Position{Segment: 0, Row: 2, Col: 0}, board.NewPiece(board.Pawn, board.White))
	ref.Place(refboard.Position{Segment: 0, Row: 0, Col: 4}, board.NewPiece(board.King, board.White))
	ref.Place(refboard.Position{Segment: 1, Row: 0, Col: 4}, board.NewPiece(board.King, board.Gray))
	ref.Place(refboard.Position{Segment: 2, Row: 0, Col: 4}, board.NewPiece(board.King, board.Black))
	state := board.FromReferenceBoard(ref.AsExternalBoard(), params.Table())

	if err := VerifySkipIndexConsistency(state, board.GlobalCatalogue()); err != nil {
		t.Errorf("VerifySkipIndexConsistency: %v", err)
	}
}

func TestVerifyReferenceRoundTrip(t *testing.T) {
	params := DefaultParams()
	state := kingTriangleState(params.Table())

	if err := VerifyReferenceRoundTrip(state, params.Table()); err != nil {
		t.Errorf("VerifyReferenceRoundTrip: %v", err)
	}
}
