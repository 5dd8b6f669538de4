package board

import "testing"

// placeStartingRank sets up White's row-0 back rank and row-1 pawn rank in
// segment 0, leaving every other square empty.
func placeStartingRank(s *State) {
	s.SetPieceAt(NewSquare(0, 0, 0), NewPiece(Rook, White))
	s.SetPieceAt(NewSquare(0, 0, 1), NewPiece(Knight, White))
	s.SetPieceAt(NewSquare(0, 0, 2), NewPiece(Bishop, White))
	s.SetPieceAt(NewSquare(0, 0, 3), NewPiece(Queen, White))
	s.SetPieceAt(NewSquare(0, 0, 4), NewPiece(King, White))
	s.SetPieceAt(NewSquare(0, 0, 5), NewPiece(Bishop, White))
	s.SetPieceAt(NewSquare(0, 0, 6), NewPiece(Knight, White))
	s.SetPieceAt(NewSquare(0, 0, 7), NewPiece(Rook, White))
	for col := 0; col < ColsPerSeg; col++ {
		s.SetPieceAt(NewSquare(0, 1, col), NewPiece(Pawn, White))
	}
}

func TestStartingPositionMoveCounts(t *testing.T) {
	s := &State{turn: White}
	placeStartingRank(s)

	moves := EnumerateMoves(s, globalCatalogue)

	var pawnSingle, pawnDouble, knight, other int
	for _, m := range moves {
		switch m.(type) {
		case *PawnOneForward:
			pawnSingle++
		case *PawnTwoForward:
			pawnDouble++
		case *KnightMove:
			knight++
		default:
			other++
		}
	}

	if pawnSingle != 8 {
		t.Errorf("pawn single-step moves = %d, want 8", pawnSingle)
	}
	if pawnDouble != 8 {
		t.Errorf("pawn double-step moves = %d, want 8", pawnDouble)
	}
	if knight != 4 {
		t.Errorf("knight moves = %d, want 4", knight)
	}
	if other != 0 {
		t.Errorf("unexpected non-pawn/knight moves = %d, want 0", other)
	}
}

func TestSegmentCrossingReflection(t *testing.T) {
	sq := NewSquare(0, 3, 2)
	to := Step(sq, []Direction{Forward}, 1)
	if to == NoSquare {
		t.Fatal("stepping forward off row 3 should land in the next segment, not leave the board")
	}
	if to.Segment() != 1 {
		t.Errorf("crossing forward from segment 0 should land in segment 1, got segment %d", to.Segment())
	}
	if to.Row() != RowsPerSeg-1 {
		t.Errorf("crossing should land on the far segment's last row, got row %d", to.Row())
	}
	wantCol := ColsPerSeg - 1 - sq.Col()
	if to.Col() != wantCol {
		t.Errorf("crossing should mirror the column, got col %d want %d", to.Col(), wantCol)
	}
}

func TestCatalogueSkipIndexConsistency(t *testing.T) {
	// A rook on an empty segment0 back rank with a same-color blocker two
	// squares up the file: every slider move past the blocker must be
	// absent, and skip-index must jump directly past them.
	s := &State{turn: White}
	s.SetPieceAt(NewSquare(0, 0, 0), NewPiece(Rook, White))
	s.SetPieceAt(NewSquare(0, 2, 0), NewPiece(Pawn, White))

	moves := EnumerateMoves(s, globalCatalogue)
	for _, m := range moves {
		if sm, ok := m.(*SliderMove); ok {
			if sm.From() == NewSquare(0, 0, 0) && sm.to.Row() >= 2 {
				t.Errorf("slider move %v should have been blocked by the pawn at row 2", sm)
			}
		}
	}
}

func TestCatalogueStatsSortedByDescendingMoveCount(t *testing.T) {
	stats := CatalogueStats(White)
	if len(stats) != NumPieceTypes {
		t.Fatalf("CatalogueStats returned %d entries, want %d", len(stats), NumPieceTypes)
	}
	for i := 1; i < len(stats); i++ {
		if stats[i].MoveCount > stats[i-1].MoveCount {
			t.Errorf("CatalogueStats not sorted descending: %v before %v", stats[i-1], stats[i])
		}
	}
}
