package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Neighbor returns the square one step away from sq in direction dir, and
// whether that step crossed from one segment into another. It returns
// NoSquare when the step would leave the board entirely.
//
// Forward/Backward move within a segment's rows; stepping Forward off row
// 3 (the row that abuts the center) reflects into the mirrored column of
// the next segment in turn order, per the center-crossing rule. Left/Right
// move within a row; stepping off column 0 or 7 leaves the board — the
// side edges of a segment are true board edges, only the center crossing
// wraps.
func Neighbor(sq Square, dir Direction) (Square, bool) {
	seg, row, col := sq.Segment(), sq.Row(), sq.Col()
	switch dir {
	case Forward:
		if row < RowsPerSeg-1 {
			return NewSquare(seg, row+1, col), false
		}
		nextSeg := (seg + 1) % 3
		return NewSquare(nextSeg, RowsPerSeg-1, ColsPerSeg-1-col), true
	case Backward:
		if row > 0 {
			return NewSquare(seg, row-1, col), false
		}
		return NoSquare, false
	case Left:
		if col > 0 {
			return NewSquare(seg, row, col-1), false
		}
		return NoSquare, false
	case Right:
		if col < ColsPerSeg-1 {
			return NewSquare(seg, row, col+1), false
		}
		return NoSquare, false
	default:
		panic(fmt.Sprintf("board: unknown direction %d", dir))
	}
}

// Step applies the direction sequence dirs to sq, repeated reps times.
// Once any individual step crosses a segment boundary, every remaining
// direction (in the current repetition and all following ones) is
// reversed, matching the center's mirror symmetry. Returns NoSquare if any
// step leaves the board.
func Step(sq Square, dirs []Direction, reps int) Square {
	cur := sq
	reversed := false
	for rep := 0; rep < reps; rep++ {
		for _, d := range dirs {
			if reversed {
				d = d.Reverse()
			}
			next, crossed := Neighbor(cur, d)
			if next == NoSquare {
				return NoSquare
			}
			cur = next
			if crossed {
				reversed = true
			}
		}
	}
	return cur
}

// stepPattern is one named direction sequence a piece type can repeat.
type stepPattern struct {
	dirs []Direction
}

func pat(dirs ...Direction) stepPattern { return stepPattern{dirs: dirs} }

const maxSliderReps = 11 // generous upper bound; off-board steps terminate enumeration sooner

// knightPatterns, kingPatterns, bishopPatterns, rookPatterns and
// queenPatterns express each piece type's legal single-step or sliding
// direction sequences in terms of the four cardinal directions, since the
// catalogue has no native diagonal primitive.
var (
	knightPatterns = []stepPattern{
		pat(Forward, Right, Right), pat(Forward, Left, Left),
		pat(Backward, Right, Right), pat(Backward, Left, Left),
		pat(Forward, Forward, Right), pat(Forward, Forward, Left),
		pat(Backward, Backward, Right), pat(Backward, Backward, Left),
	}
	kingPatterns = []stepPattern{
		pat(Forward), pat(Backward), pat(Left), pat(Right),
		pat(Forward, Left), pat(Forward, Right), pat(Backward, Left), pat(Backward, Right),
	}
	bishopPatterns = []stepPattern{
		pat(Forward, Left), pat(Left, Forward), pat(Forward, Right), pat(Right, Forward),
		pat(Backward, Left), pat(Left, Backward), pat(Backward, Right), pat(Right, Backward),
	}
	rookPatterns = []stepPattern{
		pat(Forward), pat(Backward), pat(Left), pat(Right),
	}
	// queenPatterns keeps the diagonal rays before the straight ones; the
	// order only affects move-list layout, never legality.
	queenPatterns = append(append([]stepPattern{}, bishopPatterns...), rookPatterns...)

	pawnCaptures = []stepPattern{
		pat(Forward, Left), pat(Forward, Right), pat(Left, Forward), pat(Right, Forward),
	}
)

// Catalogue is the immutable, process-wide table of every geometrically
// possible move for each (square, color, piece type). It is built once at
// package init and never mutated afterward.
type Catalogue struct {
	moves     []Move
	directive [NumSquares * 3 * NumPieceTypes]uint32
}

const maxCatalogueEntryLength = 255

func directiveIndex(sq Square, c Color, t PieceType) int {
	return (int(sq)*3+int(c))*NumPieceTypes + int(t)
}

func packDirective(offset, length int) uint32 {
	if length > maxCatalogueEntryLength {
		panic(fmt.Sprintf("board: catalogue entry length %d exceeds %d", length, maxCatalogueEntryLength))
	}
	return uint32(offset)<<8 | uint32(length)
}

func unpackDirective(d uint32) (offset, length int) {
	return int(d >> 8), int(d & 0xFF)
}

// MovesFor returns the catalogued moves for the given square, color and
// piece type.
func (c *Catalogue) MovesFor(sq Square, color Color, t PieceType) []Move {
	offset, length := unpackDirective(c.directive[directiveIndex(sq, color, t)])
	return c.moves[offset : offset+length]
}

// global catalogue, built once at package init and never rebuilt.
var globalCatalogue = buildCatalogue()

// GlobalCatalogue returns the process-wide move catalogue. Every caller
// shares the same instance; it is never mutated after package init.
func GlobalCatalogue() *Catalogue { return globalCatalogue }

// MoveCountByType summarizes, for one color, how many catalogued moves
// exist for each piece type across every square — a catalogue-shape
// diagnostic used by the perft CLI command and the oracle verifier rather
// than re-walking the flat table by hand.
type MoveCountByType struct {
	Type      PieceType
	MoveCount int
	MaxLength int
}

// CatalogueStats reports MoveCountByType for the given color, sorted by
// descending move count so the heaviest piece types (queen, rook) surface
// first in diagnostics.
func CatalogueStats(color Color) []MoveCountByType {
	stats := make([]MoveCountByType, 0, NumPieceTypes)
	for t := PieceType(0); t < NumPieceTypes; t++ {
		var total, maxLen int
		for sq := Square(0); sq < NumSquares; sq++ {
			_, length := unpackDirective(globalCatalogue.directive[directiveIndex(sq, color, t)])
			total += length
			if length > maxLen {
				maxLen = length
			}
		}
		stats = append(stats, MoveCountByType{Type: t, MoveCount: total, MaxLength: maxLen})
	}
	slices.SortFunc(stats, func(a, b MoveCountByType) int {
		return b.MoveCount - a.MoveCount
	})
	return stats
}

func buildCatalogue() *Catalogue {
	cat := &Catalogue{}
	var flat []Move

	for sq := Square(0); sq < NumSquares; sq++ {
		for c := Color(0); c < 3; c++ {
			for t := PieceType(0); t < NumPieceTypes; t++ {
				entry := buildEntry(sq, c, t)
				offset := len(flat)
				flat = append(flat, entry...)
				cat.directive[directiveIndex(sq, c, t)] = packDirective(offset, len(entry))
			}
		}
	}
	cat.moves = flat
	return cat
}

// buildEntry produces the filtered, skip-indexed move list for one
// (square, color, type) triple.
func buildEntry(sq Square, c Color, t PieceType) []Move {
	var raw []Move
	switch t {
	case Pawn:
		raw = buildPawnMoves(sq, c)
	case Knight:
		for _, p := range knightPatterns {
			if to := Step(sq, p.dirs, 1); to != NoSquare {
				raw = append(raw, NewKnightMove(sq, to))
			}
		}
	case King:
		for _, p := range kingPatterns {
			if to := Step(sq, p.dirs, 1); to != NoSquare {
				raw = append(raw, NewKingMove(sq, to))
			}
		}
		raw = append(raw, buildCastleMoves(sq, c)...)
	case Bishop:
		raw = buildSliderMoves(sq, bishopPatterns)
	case Rook:
		raw = buildSliderMoves(sq, rookPatterns)
	case Queen:
		raw = buildSliderMoves(sq, queenPatterns)
	}

	filtered := dedupByDestination(raw)
	attachSkipIndexes(filtered)
	return filtered
}

func buildSliderMoves(sq Square, patterns []stepPattern) []Move {
	var moves []Move
	for _, p := range patterns {
		for reps := 1; reps <= maxSliderReps; reps++ {
			to := Step(sq, p.dirs, reps)
			if to == NoSquare {
				break
			}
			moves = append(moves, NewSliderMove(sq, to, p.dirs, reps))
		}
	}
	return moves
}

func buildPawnMoves(sq Square, c Color) []Move {
	var moves []Move
	if to := Step(sq, []Direction{Forward}, 1); to != NoSquare {
		moves = append(moves, NewPawnOneForward(sq, to))
	}
	if sq.Row() == 1 {
		if mid := Step(sq, []Direction{Forward}, 1); mid != NoSquare {
			if to := Step(sq, []Direction{Forward, Forward}, 1); to != NoSquare {
				moves = append(moves, NewPawnTwoForward(sq, mid, to))
			}
		}
	}
	for _, p := range pawnCaptures {
		if to := Step(sq, p.dirs, 1); to != NoSquare {
			moves = append(moves, NewPawnTake(sq, to))
		}
	}
	return moves
}

func buildCastleMoves(sq Square, c Color) []Move {
	if sq != NewSquare(sq.Segment(), 0, 4) {
		return nil
	}
	seg := sq.Segment()
	left := NewKingCastle(
		NewSquare(seg, 0, 4), NewSquare(seg, 0, 2),
		NewSquare(seg, 0, 0), NewSquare(seg, 0, 3),
		[]Square{NewSquare(seg, 0, 1), NewSquare(seg, 0, 2)},
		NewPiece(Rook, c),
	)
	right := NewKingCastle(
		NewSquare(seg, 0, 4), NewSquare(seg, 0, 6),
		NewSquare(seg, 0, 7), NewSquare(seg, 0, 5),
		[]Square{NewSquare(seg, 0, 5), NewSquare(seg, 0, 6)},
		NewPiece(Rook, c),
	)
	return []Move{left, right}
}

// dedupByDestination removes moves that share a (from,to) pair, keeping
// the first occurrence: when two different step sequences land on the
// same square, only one is kept. Duplicates are not necessarily
// adjacent (different step patterns can land on the same square), so this
// tracks seen destinations explicitly rather than compacting runs.
func dedupByDestination(moves []Move) []Move {
	seen := make(map[Square]bool, len(moves))
	filtered := moves[:0:0]
	for _, m := range moves {
		if seen[m.To()] {
			continue
		}
		seen[m.To()] = true
		filtered = append(filtered, m)
	}
	return filtered
}

// attachSkipIndexes implements the blocked-ray skip optimization. Within
// each contiguous ray (a run of slider moves sharing the same direction
// pattern, stored nearest-first), a move's skipIndex is the index of the
// first later move with reps no greater than its own — which, for a
// nearest-first ray, is always the start of the next ray (or the end of
// the list for the last ray): if a near square is blocked by the mover's
// own color, every farther move on the same ray is blocked too.
func attachSkipIndexes(moves []Move) {
	for i := range moves {
		sm, ok := moves[i].(*SliderMove)
		if !ok {
			continue
		}
		skip := len(moves)
		for j := i + 1; j < len(moves); j++ {
			other, ok := moves[j].(*SliderMove)
			if !ok {
				continue
			}
			if other.reps <= sm.reps {
				skip = j
				break
			}
		}
		sm.skipIndex = skip
	}
}
