package board

import "testing"

func TestHashStableForIdenticalStates(t *testing.T) {
	a := &State{turn: Gray}
	a.SetPieceAt(NewSquare(0, 0, 0), NewPiece(Rook, White))

	b := &State{turn: Gray}
	b.SetPieceAt(NewSquare(0, 0, 0), NewPiece(Rook, White))

	if a.Hash() != b.Hash() {
		t.Errorf("identical states hashed differently: %d vs %d", a.Hash(), b.Hash())
	}
}

func TestHashChangesWithPiecePlacement(t *testing.T) {
	a := &State{turn: White}
	a.SetPieceAt(NewSquare(0, 0, 0), NewPiece(Rook, White))

	b := &State{turn: White}
	b.SetPieceAt(NewSquare(0, 0, 1), NewPiece(Rook, White))

	if a.Hash() == b.Hash() {
		t.Error("states differing only in piece placement hashed identically")
	}
}

func TestHashChangesWithTurn(t *testing.T) {
	a := &State{turn: White}
	b := &State{turn: Black}
	if a.Hash() == b.Hash() {
		t.Error("states differing only in turn color hashed identically")
	}
}
