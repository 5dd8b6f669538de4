package engine

import (
	"math"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

// Triple is one evaluation parameter set: a weight on a color's own
// material, a per-type value vector, a pawn-advancement bonus, and a
// mobility bonus. SelfWeight is interpolated like the other fields but is
// not applied to utilities: board.State weighs a color's own pieces by a
// fixed 1.
type Triple struct {
	SelfWeight     int
	TypeValues     [board.NumPieceTypes]float64
	PawnRowValue   float64
	MoveCountValue float64
}

// materialValue is the fixed per-type material weight used only to
// measure how much value remains on the board for the start/end
// interpolation ratio — distinct from TypeValues, which is itself
// interpolated and tunable.
var materialValue = [board.NumPieceTypes]int{
	board.Pawn: 1, board.Knight: 3, board.Bishop: 3,
	board.Rook: 5, board.Queen: 9, board.King: 0,
}

const piecesPerColor = 8 + 2 + 2 + 2 + 1 + 1 // pawns, knights, bishops, rooks, queen, king

var startingMaterialValue = func() int {
	counts := [board.NumPieceTypes]int{8, 2, 2, 2, 1, 1}
	total := 0
	for t := board.PieceType(0); t < board.NumPieceTypes; t++ {
		total += materialValue[t] * counts[t] * 3
	}
	return total
}()

// DefaultStart and DefaultEnd are the factory evaluation triples, carried
// over from a genetic-algorithm tuning run against the start and end
// phases of a game respectively. DefaultParams seeds from these; tuner.Tune
// (tuner/tuner.go) is typically started from this same point.
var (
	DefaultStart = Triple{
		SelfWeight:     11,
		TypeValues:     [board.NumPieceTypes]float64{4.3, 16.3, 17.9, 19.0, 36.6, 0.0},
		PawnRowValue:   5.1,
		MoveCountValue: 2.8,
	}
	DefaultEnd = Triple{
		SelfWeight:     11,
		TypeValues:     [board.NumPieceTypes]float64{8.2, 16.2, 12.2, 17.5, 35.5, 0.0},
		PawnRowValue:   8.4,
		MoveCountValue: 4.9,
	}
)

// Params holds the start/end triples, the currently-interpolated active
// triple, and the derived UtilityTable that State.ApplyMove consumes.
// Params is not safe for concurrent use; each search strategy goroutine
// owns its own Params built from the same Start/End triples.
type Params struct {
	Start, End Triple
	active     Triple
	table      board.UtilityTable
}

// NewParams builds a Params at the start-of-game interpolation point.
func NewParams(start, end Triple) *Params {
	p := &Params{Start: start, End: end}
	p.active = start
	p.rebuildTable()
	return p
}

// DefaultParams builds a Params from DefaultStart/DefaultEnd.
func DefaultParams() *Params {
	return NewParams(DefaultStart, DefaultEnd)
}

// Table returns the currently derived utility table, for passing to
// board.State.ApplyMove / board.FromReferenceBoard.
func (p *Params) Table() *board.UtilityTable { return &p.table }

// Active returns the currently-interpolated triple, mostly useful for
// logging and the tuner's objective function.
func (p *Params) Active() Triple { return p.active }

// Clone returns an independent copy of p: every field is a plain value
// (Triple, the derived table array), so a shallow struct copy is already a
// full deep copy. Used by Agent.Clone, which must hand each cloned agent
// its own parameters rather than share the original's.
func (p *Params) Clone() *Params {
	c := *p
	return &c
}

// UpdateInterpolation recomputes the material ratio from s, linearly
// interpolates Start/End into the active triple, and rebuilds the
// derived utility table. Must be called at most once between
// applyMove calls that rely on the resulting table, or incrementally
// updated utilities will desynchronize from a full recompute.
func (p *Params) UpdateInterpolation(s *board.State) {
	remaining := remainingMaterial(s)
	ratio := 1.0 - float64(remaining)/float64(startingMaterialValue)

	p.active.SelfWeight = int(math.Round(interp(float64(p.Start.SelfWeight), float64(p.End.SelfWeight), ratio)))
	for t := range p.active.TypeValues {
		p.active.TypeValues[t] = interp(p.Start.TypeValues[t], p.End.TypeValues[t], ratio)
	}
	p.active.PawnRowValue = interp(p.Start.PawnRowValue, p.End.PawnRowValue, ratio)
	p.active.MoveCountValue = interp(p.Start.MoveCountValue, p.End.MoveCountValue, ratio)

	p.rebuildTable()
}

func interp(start, end, ratio float64) float64 {
	return start + (end-start)*ratio
}

func remainingMaterial(s *board.State) int {
	total := 0
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		if p := s.PieceAt(sq); p.Present() {
			total += materialValue[p.Type()]
		}
	}
	return total
}

// rebuildTable recomputes every entry of the derived utility table from
// the current active triple and the embedded meanMovesPerPosition table.
// Values are rounded to int16; an out-of-range result is a contract
// violation, not something callers are expected to recover from.
func (p *Params) rebuildTable() {
	for c := board.Color(0); c < 3; c++ {
		for sq := board.Square(0); sq < board.NumSquares; sq++ {
			for t := board.PieceType(0); t < board.NumPieceTypes; t++ {
				p.table[board.TableIndex(c, sq, t)] = p.pieceUtility(c, sq, t)
			}
		}
	}
}

func (p *Params) pieceUtility(c board.Color, sq board.Square, t board.PieceType) int16 {
	utility := p.active.TypeValues[t]

	if t == board.Pawn {
		home := board.Color(sq.Segment())
		row := sq.Row()
		if home == c {
			utility += p.active.PawnRowValue * float64(row+1)
		} else {
			utility += p.active.PawnRowValue * float64(8-row)
		}
	}

	idx := int(c)*(board.NumSquares*board.NumPieceTypes) + int(sq)*board.NumPieceTypes + int(t)
	utility += p.active.MoveCountValue * meanMovesPerPosition[idx]

	if utility < math.MinInt16 || utility > math.MaxInt16 {
		panic("engine: derived utility overflowed int16")
	}
	return int16(math.Round(utility))
}
