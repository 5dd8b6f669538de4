package bench

import (
	"testing"

	"github.com/Sothatsit/ThreePlayerChess/board"
	"github.com/Sothatsit/ThreePlayerChess/internal/refboard"
)

func openingPosition() *board.State {
	table := uniformBenchTable(10)
	ref := refboard.New(board.White)
	counts := []struct {
		t board.PieceType
		n int
	}{
		{board.Pawn, 8}, {board.Knight, 2}, {board.Bishop, 2},
		{board.Rook, 2}, {board.Queen, 1}, {board.King, 1},
	}
	for c := board.Color(0); c < 3; c++ {
		n := 0
		for _, pc := range counts {
			for i := 0; i < pc.n; i++ {
				ref.Place(refboard.Position{Segment: int(c), Row: n / 8, Col: n % 8}, board.NewPiece(pc.t, c))
				n++
			}
		}
	}
	return board.FromReferenceBoard(ref.AsExternalBoard(), table)
}

func uniformBenchTable(value int16) *board.UtilityTable {
	var table board.UtilityTable
	for i := range table {
		table[i] = value
	}
	return &table
}

func BenchmarkEnumerateMoves_Opening(b *testing.B) {
	state := openingPosition()
	cat := board.GlobalCatalogue()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = board.EnumerateMoves(state, cat)
	}
}

func BenchmarkApplyMove_Opening(b *testing.B) {
	state := openingPosition()
	cat := board.GlobalCatalogue()
	table := uniformBenchTable(10)
	moves := board.EnumerateMoves(state, cat)
	if len(moves) == 0 {
		b.Fatal("opening position produced no legal moves")
	}
	m := moves[0]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var child board.State
		child = *state
		child.ApplyMove(m, table)
	}
}
