package board

import (
	"strings"
	"testing"
)

func TestDumpContainsPlacedPieces(t *testing.T) {
	s := &State{turn: Gray}
	s.SetPieceAt(NewSquare(1, 2, 3), NewPiece(Queen, Gray))

	out := s.Dump()
	if !strings.Contains(out, "gray-queen") {
		t.Errorf("Dump() missing placed piece, got:\n%s", out)
	}
	if !strings.Contains(out, "segment gray") {
		t.Errorf("Dump() missing segment label, got:\n%s", out)
	}
}
