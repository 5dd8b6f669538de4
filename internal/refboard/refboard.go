// Package refboard implements a minimal in-memory ReferenceBoard, used by
// tests, the oracle verifier (engine/oracle.go), and cmd/agent, which
// rebuilds each play snapshot as one. The search strategies never
// construct one.
package refboard

import (
	"fmt"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

// Position is the reference board's own coordinate type, kept distinct
// from board.Square so the index↔position mapping in FromState and
// AsExternalBoard is explicit rather than implicit in shared
// representation.
type Position struct {
	Segment, Row, Col int
}

func (p Position) square() board.Square {
	return board.NewSquare(p.Segment, p.Row, p.Col)
}

func fromSquare(sq board.Square) Position {
	return Position{Segment: sq.Segment(), Row: sq.Row(), Col: sq.Col()}
}

// Board is a plain, un-optimized reference implementation of the
// ReferenceBoard contract: no catalogue, no incremental utility, no
// skip-index — every query walks the 96-square array directly. Its only
// job is to agree with the packed core by a completely independent route,
// which is what makes it useful as an oracle.
type Board struct {
	pieces    [board.NumSquares]board.Piece
	turn      board.Color
	over      bool
	winner    board.Color
	loser     board.Color
	moveCount int
	remaining [3]int64
}

// New returns an empty Board with the given color to move first; pieces
// are added with Place.
func New(turn board.Color) *Board {
	return &Board{turn: turn, remaining: [3]int64{0, 0, 0}}
}

// Place sets the piece at pos, for setup use only.
func (b *Board) Place(pos Position, p board.Piece) {
	b.pieces[pos.square()] = p
}

// SetTimeRemaining sets the millisecond clock reported by
// TimeRemainingMillis for c.
func (b *Board) SetTimeRemaining(c board.Color, millis int64) {
	b.remaining[c] = millis
}

func (b *Board) TurnColor() board.Color { return b.turn }

func (b *Board) PieceAt(pos Position) (board.Piece, bool) {
	p := b.pieces[pos.square()]
	return p, p.Present()
}

func (b *Board) GameOver() (over bool, winner, loser board.Color) {
	return b.over, b.winner, b.loser
}

func (b *Board) TimeRemainingMillis(c board.Color) int64 { return b.remaining[c] }

func (b *Board) MoveCount() int { return b.moveCount }

// ApplyMove moves whatever piece sits at from to to, unconditionally except
// for the two preconditions the contract requires a caller to have already
// checked elsewhere in a real board (there must be a piece at from, and it
// must be that color's turn) — legality beyond that (the destination held
// by an enemy, a slider's path clear, castle preconditions) is the oracle
// caller's job to have already established against the packed core, since
// this reference implementation deliberately does not reimplement movegen.
func (b *Board) ApplyMove(from, to Position) (legal bool, err error) {
	mover, ok := b.PieceAt(from)
	if !ok {
		return false, fmt.Errorf("refboard: no piece at %v", from)
	}
	if mover.Color() != b.turn {
		return false, fmt.Errorf("refboard: %v is not %v's turn", from, b.turn)
	}

	captured, hadCaptured := b.PieceAt(to)
	b.pieces[to.square()] = mover
	b.pieces[from.square()] = 0
	b.moveCount++

	if hadCaptured && captured.Type() == board.King {
		b.over = true
		b.winner = mover.Color()
		b.loser = captured.Color()
	}

	if !b.over {
		next := b.turn.Next()
		if next == b.loser && b.over {
			next = next.Next()
		}
		b.turn = next
	}
	return true, nil
}

// FromState copies every occupied square and the turn color out of s into a
// fresh Board, for round-trip testing against board.FromReferenceBoard.
func FromState(s *board.State) *Board {
	b := New(s.Turn())
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		if p := s.PieceAt(sq); p.Present() {
			b.pieces[sq] = p
		}
	}
	if over := s.GameOver(); over.Decided {
		b.over = true
		b.winner = over.Winner
		b.loser = over.Loser
	}
	return b
}

// adapter satisfies board.ExternalBoard by delegating to Board's
// Position-keyed PieceAt through the shared index mapping.
type adapter struct{ b *Board }

func (a adapter) PieceAt(sq board.Square) board.Piece {
	p, _ := a.b.PieceAt(fromSquare(sq))
	return p
}

func (a adapter) Turn() board.Color { return a.b.TurnColor() }

// AsExternalBoard adapts b to board.ExternalBoard, for use with
// board.FromReferenceBoard.
func (b *Board) AsExternalBoard() board.ExternalBoard { return adapter{b: b} }
