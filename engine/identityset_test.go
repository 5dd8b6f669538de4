package engine

import (
	"testing"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

func TestIdentitySetDistinguishesEqualValueMoves(t *testing.T) {
	a := &queenHopMove{from: board.NewSquare(0, 0, 0), to: board.NewSquare(0, 1, 0)}
	b := &queenHopMove{from: board.NewSquare(0, 0, 0), to: board.NewSquare(0, 1, 0)}

	set := NewIdentitySet[board.Move](4)
	set.Add(a)

	if !set.Contains(a) {
		t.Error("set should contain the exact pointer that was added")
	}
	if set.Contains(b) {
		t.Error("set should not treat a distinct pointer with equal field values as a member")
	}
	if set.Len() != 1 {
		t.Errorf("Len() = %d, want 1", set.Len())
	}

	set.Clear()
	if set.Len() != 0 || set.Contains(a) {
		t.Error("Clear() should remove every member")
	}
}

type queenHopMove struct{ from, to board.Square }

func (q *queenHopMove) From() board.Square      { return q.from }
func (q *queenHopMove) To() board.Square        { return q.to }
func (q *queenHopMove) Valid(*board.State) bool { return true }
