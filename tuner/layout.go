package tuner

import (
	"github.com/Sothatsit/ThreePlayerChess/board"
	"github.com/Sothatsit/ThreePlayerChess/engine"
)

// dimsPerTriple is SelfWeight + one value per piece type + PawnRowValue +
// MoveCountValue.
const dimsPerTriple = 1 + board.NumPieceTypes + 2

// vectorLen is the flattened length of a (Start, End) triple pair — the
// search space the optimizer actually walks.
const vectorLen = 2 * dimsPerTriple

// flatten packs start and end into one vector, SelfWeight first, in the
// same field order both directions so unflatten is its exact inverse.
func flatten(start, end engine.Triple) []float64 {
	v := make([]float64, 0, vectorLen)
	v = appendTriple(v, start)
	v = appendTriple(v, end)
	return v
}

func appendTriple(v []float64, t engine.Triple) []float64 {
	v = append(v, float64(t.SelfWeight))
	for _, tv := range t.TypeValues {
		v = append(v, tv)
	}
	v = append(v, t.PawnRowValue, t.MoveCountValue)
	return v
}

// unflatten is flatten's inverse.
func unflatten(v []float64) (start, end engine.Triple) {
	start = readTriple(v[:dimsPerTriple])
	end = readTriple(v[dimsPerTriple:])
	return
}

func readTriple(v []float64) engine.Triple {
	var t engine.Triple
	t.SelfWeight = int(v[0] + 0.5)
	copy(t.TypeValues[:], v[1:1+board.NumPieceTypes])
	t.PawnRowValue = v[1+board.NumPieceTypes]
	t.MoveCountValue = v[2+board.NumPieceTypes]
	return t
}
