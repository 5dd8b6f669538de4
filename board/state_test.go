package board

import "testing"

func uniformTable(value int16) *UtilityTable {
	var table UtilityTable
	for i := range table {
		table[i] = value
	}
	return &table
}

// varyingTable assigns every (color,square,type) entry a distinct value
// so a relocation's incremental delta is actually exercised, unlike a
// uniform table where every move's delta is zero.
func varyingTable() *UtilityTable {
	var table UtilityTable
	for i := range table {
		table[i] = int16(i % 500)
	}
	return &table
}

func TestApplyMoveMaintainsUtilityInvariant(t *testing.T) {
	table := varyingTable()
	s := &State{turn: White}
	s.SetPieceAt(NewSquare(0, 0, 4), NewPiece(King, White))
	s.SetPieceAt(NewSquare(1, 0, 4), NewPiece(King, Gray))
	s.SetPieceAt(NewSquare(2, 0, 4), NewPiece(King, Black))
	s.SetPieceAt(NewSquare(0, 1, 3), NewPiece(Queen, White))
	s.Utility = RecomputeUtilities(s, table)

	m := NewKnightMove(NewSquare(0, 1, 3), NewSquare(0, 2, 1)) // arbitrary destination; Valid() isn't checked by ApplyMove itself
	s.ApplyMove(&queenHop{from: m.From(), to: m.To()}, table)

	want := RecomputeUtilities(s, table)
	if s.Utility != want {
		t.Errorf("incremental utility invariant violated: incremental utility %v, full recompute %v", s.Utility, want)
	}
}

// queenHop is a minimal Move used only to drive ApplyMove's relocate path
// in tests without depending on whatever the catalogue happens to offer
// from a given square.
type queenHop struct{ from, to Square }

func (q *queenHop) From() Square      { return q.from }
func (q *queenHop) To() Square        { return q.to }
func (q *queenHop) Valid(*State) bool { return true }

func TestApplyMoveCaptureSetsTerminalUtility(t *testing.T) {
	table := uniformTable(5)
	s := &State{turn: White}
	s.SetPieceAt(NewSquare(0, 0, 4), NewPiece(King, White))
	s.SetPieceAt(NewSquare(0, 1, 4), NewPiece(King, Gray))
	s.SetPieceAt(NewSquare(1, 0, 4), NewPiece(King, Black))
	s.Utility = RecomputeUtilities(s, table)

	s.ApplyMove(&queenHop{from: NewSquare(0, 0, 4), to: NewSquare(0, 1, 4)}, table)

	over := s.GameOver()
	if !over.Decided || over.Winner != White || over.Loser != Gray {
		t.Fatalf("GameOver = %+v, want decided White-over-Gray", over)
	}
	if s.Utility[White] != winnerUtility {
		t.Errorf("winner utility = %d, want %d", s.Utility[White], winnerUtility)
	}
	if s.Utility[Gray] != loserUtility {
		t.Errorf("loser utility = %d, want %d", s.Utility[Gray], loserUtility)
	}
	if s.Utility[Black] != thirdUtility {
		t.Errorf("third-color utility = %d, want %d", s.Utility[Black], thirdUtility)
	}
}

func TestAdvanceTurnSkipsEliminatedColor(t *testing.T) {
	s := &State{turn: White, over: GameOver{Winner: White, Loser: Gray, Decided: true}}
	s.advanceTurn()
	if s.turn != Black {
		t.Errorf("advanceTurn with Gray eliminated: turn = %v, want %v", s.turn, Black)
	}
}

func TestTableIndexIsColorMajor(t *testing.T) {
	// Color-major layout: incrementing color should jump by a full
	// square*type block, not by one entry.
	a := TableIndex(White, 0, Pawn)
	b := TableIndex(Gray, 0, Pawn)
	if b-a != NumSquares*NumPieceTypes {
		t.Errorf("TableIndex color stride = %d, want %d", b-a, NumSquares*NumPieceTypes)
	}
}
