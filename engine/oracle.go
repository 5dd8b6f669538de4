package engine

import (
	"fmt"

	"github.com/Sothatsit/ThreePlayerChess/board"
	"github.com/Sothatsit/ThreePlayerChess/internal/refboard"
)

// VerifyUtilityInvariant checks that s.Utility equals a full
// recomputation against table. A mismatch means some ApplyMove path's
// incremental delta diverged from the definition of utility itself.
func VerifyUtilityInvariant(s *board.State, table *board.UtilityTable) error {
	want := board.RecomputeUtilities(s, table)
	got := s.Utility
	if got != want {
		return fmt.Errorf("engine: incremental utility invariant violated: incremental utility %v, full recompute %v", got, want)
	}
	return nil
}

// VerifySkipIndexConsistency re-derives s's legal moves without taking the
// skip-index shortcut sliders rely on, and checks the result against
// board.EnumerateMoves's own (skip-index-accelerated) answer. A divergence
// means some slider's skipIndex points somewhere other than "first later
// move in the same ray list with reps no greater than the blocked move's".
func VerifySkipIndexConsistency(s *board.State, cat *board.Catalogue) error {
	fast := board.EnumerateMoves(s, cat)
	slow := bruteForceMoves(s, cat)

	fastSet := moveSet(fast)
	slowSet := moveSet(slow)

	if len(fastSet) != len(slowSet) {
		return fmt.Errorf("engine: skip-index mismatch: accelerated enumeration found %d moves, brute force found %d", len(fastSet), len(slowSet))
	}
	for key := range fastSet {
		if !slowSet[key] {
			return fmt.Errorf("engine: skip-index mismatch: move %v present in accelerated enumeration but not brute force", key)
		}
	}
	return nil
}

type moveKey struct {
	from, to board.Square
}

func moveSet(moves []board.Move) map[moveKey]bool {
	set := make(map[moveKey]bool, len(moves))
	for _, m := range moves {
		set[moveKey{from: m.From(), to: m.To()}] = true
	}
	return set
}

// bruteForceMoves walks every candidate in the catalogue for every square,
// checking each one's Valid unconditionally — never jumping past a
// blocked slider's dominated moves the way board.EnumerateMoves does.
func bruteForceMoves(s *board.State, cat *board.Catalogue) []board.Move {
	var legal []board.Move
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		p := s.PieceAt(sq)
		if !p.Present() || p.Color() != s.Turn() {
			continue
		}
		for _, m := range cat.MovesFor(sq, s.Turn(), p.Type()) {
			dest := s.PieceAt(m.To())
			if dest.Present() && dest.Color() == s.Turn() {
				continue
			}
			if m.Valid(s) {
				legal = append(legal, m)
			}
		}
	}
	return legal
}

// VerifyReferenceRoundTrip copies s out to a refboard.Board and back via
// board.FromReferenceBoard, and checks that the piece layout, turn, and
// recomputed utility vector come back identical to s's own.
func VerifyReferenceRoundTrip(s *board.State, table *board.UtilityTable) error {
	ref := refboard.FromState(s)
	back := board.FromReferenceBoard(ref.AsExternalBoard(), table)

	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		if back.PieceAt(sq) != s.PieceAt(sq) {
			return fmt.Errorf("engine: round-trip mismatch at square %v: got %v, want %v", sq, back.PieceAt(sq), s.PieceAt(sq))
		}
	}
	if back.Turn() != s.Turn() {
		return fmt.Errorf("engine: round-trip turn mismatch: got %v, want %v", back.Turn(), s.Turn())
	}

	want := board.RecomputeUtilities(s, table)
	if back.Utility != want {
		return fmt.Errorf("engine: round-trip utility mismatch: got %v, want %v", back.Utility, want)
	}
	return nil
}
