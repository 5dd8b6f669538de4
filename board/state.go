package board

import "fmt"

// UtilityTable is the derived per-(color,square,type) utility contribution,
// rebuilt by the evaluation layer whenever parameters change and consulted
// by State.ApplyMove for O(1) incremental updates. Index with TableIndex.
type UtilityTable [NumSquares * 3 * NumPieceTypes]int16

// TableIndex computes the flat index into a UtilityTable for one
// (color, square, type) triple: color-major, then square, then type —
// matching the layout meanMovesPerPosition ships in (engine/meanmoves.go).
func TableIndex(color Color, sq Square, t PieceType) int {
	return int(color)*(NumSquares*NumPieceTypes) + int(sq)*NumPieceTypes + int(t)
}

// Terminal utility magnitudes: a king capture immediately fixes the
// utility vector rather than letting it decay through further incremental
// updates.
const (
	winnerUtility = 1_000_000
	loserUtility  = -1_000_000
	thirdUtility  = -500_000
)

// GameOver packs a winner/loser pair. The zero value means "in progress".
type GameOver struct {
	Winner, Loser Color
	Decided       bool
}

// State is the packed, mutable game position: one byte per square, whose
// turn it is, whether (and how) the game has ended, and a running
// per-color utility vector kept in sync incrementally by ApplyMove.
//
// A State is owned by exactly one caller at a time; search strategies
// pre-allocate a fixed fleet of these and reuse them ply-by-ply rather than
// allocating a fresh one per move.
type State struct {
	pieces  [NumSquares]Piece
	turn    Color
	over    GameOver
	Utility [3]int64
}

// Turn returns the color to move.
func (s *State) Turn() Color { return s.turn }

// GameOver reports the terminal status, if any.
func (s *State) GameOver() GameOver { return s.over }

// PieceAt returns the piece occupying sq, or the zero Piece if empty.
func (s *State) PieceAt(sq Square) Piece { return s.pieces[sq] }

// SetPieceAt is exposed for setup/testing; normal play mutates pieces only
// through ApplyMove.
func (s *State) SetPieceAt(sq Square, p Piece) { s.pieces[sq] = p }

// ExternalBoard is the minimal read surface State needs from a reference
// board to initialize from it; satisfied by any concrete ReferenceBoard
// implementation (engine/agent.go and internal/refboard adapt to it).
type ExternalBoard interface {
	PieceAt(sq Square) Piece
	Turn() Color
}

// FromReferenceBoard copies piece placement and turn from ext into s and
// rebuilds the utility vector from scratch using table. It does not assume
// anything about s's previous contents.
func FromReferenceBoard(ext ExternalBoard, table *UtilityTable) *State {
	s := &State{turn: ext.Turn()}
	for sq := Square(0); sq < NumSquares; sq++ {
		s.pieces[sq] = ext.PieceAt(sq)
	}
	s.Utility = recomputeUtilities(&s.pieces, table)
	return s
}

// RecomputeUtilities derives s's full per-color utility vector from
// scratch against table, ignoring whatever is currently stored in
// s.Utility. Exposed for the oracle verifier's incremental-utility
// cross-check; ApplyMove itself never calls this on its hot path.
func RecomputeUtilities(s *State, table *UtilityTable) [3]int64 {
	if s.over.Decided {
		var u [3]int64
		u[s.over.Winner] = winnerUtility
		u[s.over.Loser] = loserUtility
		for c := Color(0); c < 3; c++ {
			if c != s.over.Winner && c != s.over.Loser {
				u[c] = thirdUtility
			}
		}
		return u
	}
	return recomputeUtilities(&s.pieces, table)
}

// recomputeUtilities derives the full per-color utility vector from
// scratch, by summing table contributions for every piece on the board and
// applying the self/other weighting split at the end. This is the
// reference computation the incremental-utility tests check ApplyMove's
// incremental path against.
func recomputeUtilities(pieces *[NumSquares]Piece, table *UtilityTable) [3]int64 {
	var perColor [3]int64
	for sq := Square(0); sq < NumSquares; sq++ {
		p := pieces[sq]
		if !p.Present() {
			continue
		}
		c := p.Color()
		perColor[c] += int64(table[TableIndex(c, sq, p.Type())])
	}
	var u [3]int64
	for c := Color(0); c < 3; c++ {
		other1, other2 := c.Other()
		u[c] = selfWeight*perColor[c] - 10*(perColor[other1]+perColor[other2])
	}
	return u
}

// selfWeight is the weighting of a color's own pieces in its own utility,
// used by both ApplyMove's incremental path and recomputeUtilities. It is
// fixed at 1: engine.Params interpolates a Triple.SelfWeight, but that
// value is neither applied here nor folded into the table values.
const selfWeight = 1

// ApplyMove mutates s in place for move m, which must be one drawn from
// the catalogue for (m.From(), s.turn, the piece currently at m.From()) and
// already confirmed Valid(s). table supplies the per-(color,square,type)
// utility contributions used for the incremental delta.
func (s *State) ApplyMove(m Move, table *UtilityTable) {
	mover := s.pieces[m.From()]
	if !mover.Present() {
		panic(fmt.Sprintf("board: ApplyMove from empty square %v", m.From()))
	}
	color := mover.Color()

	if kc, ok := m.(*KingCastle); ok {
		s.relocate(kc.rookFrom, kc.rookTo, table)
	}

	captured := s.pieces[m.To()]
	capturedSq := m.To()
	s.relocate(m.From(), m.To(), table)

	if captured.Present() {
		s.applyCaptureDelta(captured, capturedSq, table)
	}

	if m.To().Row() == 0 && s.pieces[m.To()].Type() == Pawn {
		s.promote(m.To(), table)
	}

	if captured.Present() && captured.Type() == King {
		s.over = GameOver{Winner: color, Loser: captured.Color(), Decided: true}
		s.setTerminalUtility()
		return
	}

	s.advanceTurn()
}

// relocate moves the piece at from to to (which may be occupied; the
// caller is responsible for having already accounted for any capture) and
// applies the mover-vs-others utility delta for that single piece moving.
func (s *State) relocate(from, to Square, table *UtilityTable) {
	p := s.pieces[from]
	color := p.Color()
	t := p.Type()

	delta := int64(table[TableIndex(color, to, t)]) - int64(table[TableIndex(color, from, t)])
	other1, other2 := color.Other()
	s.Utility[color] += selfWeight * delta
	s.Utility[other1] -= 10 * delta
	s.Utility[other2] -= 10 * delta

	s.pieces[to] = p
	s.pieces[from] = 0
}

// applyCaptureDelta removes captured's value (it stood at sq immediately
// before being captured) from its own color's utility and credits the
// other two colors, per the same self/other weighting used for a piece's
// positional value.
func (s *State) applyCaptureDelta(captured Piece, sq Square, table *UtilityTable) {
	color := captured.Color()
	value := int64(table[TableIndex(color, sq, captured.Type())])
	other1, other2 := color.Other()
	s.Utility[color] -= selfWeight * value
	s.Utility[other1] += 10 * value
	s.Utility[other2] += 10 * value
}

// promote turns the pawn now sitting at sq into a queen of the same color,
// applying the type-change utility delta the same way a move's positional
// delta is applied.
func (s *State) promote(sq Square, table *UtilityTable) {
	p := s.pieces[sq]
	color := p.Color()
	delta := int64(table[TableIndex(color, sq, Queen)]) - int64(table[TableIndex(color, sq, Pawn)])
	other1, other2 := color.Other()
	s.Utility[color] += selfWeight * delta
	s.Utility[other1] -= 10 * delta
	s.Utility[other2] -= 10 * delta
	s.pieces[sq] = NewPiece(Queen, color)
}

// setTerminalUtility fixes the utility vector to the terminal values once
// over.Decided is set, overriding whatever the incremental path had
// accumulated.
func (s *State) setTerminalUtility() {
	winner, loser := s.over.Winner, s.over.Loser
	var third Color
	for c := Color(0); c < 3; c++ {
		if c != winner && c != loser {
			third = c
			break
		}
	}
	s.Utility[winner] = winnerUtility
	s.Utility[loser] = loserUtility
	s.Utility[third] = thirdUtility
}

// advanceTurn moves play to the next color in cyclic order, skipping a
// color that has already lost its king.
func (s *State) advanceTurn() {
	next := s.turn.Next()
	if next == s.over.Loser && s.over.Decided {
		next = next.Next()
	}
	s.turn = next
}

// EnumerateMoves returns every move that is currently legal for the side
// to move, walking the move catalogue square by square and applying the
// skip-index optimization for blocked sliders.
func EnumerateMoves(s *State, cat *Catalogue) []Move {
	var legal []Move
	for sq := Square(0); sq < NumSquares; sq++ {
		p := s.pieces[sq]
		if !p.Present() || p.Color() != s.turn {
			continue
		}
		candidates := cat.MovesFor(sq, s.turn, p.Type())
		for i := 0; i < len(candidates); i++ {
			m := candidates[i]
			dest := s.pieces[m.To()]
			if dest.Present() && dest.Color() == s.turn {
				if sm, ok := m.(*SliderMove); ok {
					i = sm.skipIndex - 1
				}
				continue
			}
			if m.Valid(s) {
				legal = append(legal, m)
			}
		}
	}
	return legal
}

// Clone returns a deep copy of s, for use by search strategies that need
// to branch from a shared scratch state without disturbing the caller's
// copy (the fixed scratch fleet itself is managed by the engine package).
func (s *State) Clone() *State {
	c := *s
	return &c
}
