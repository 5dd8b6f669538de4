// Package tuner implements the offline evaluation-parameter tuning loop:
// given a corpus of recorded (position, outcome) samples, it
// searches the Start/End triple space to minimize a texel-style logistic
// loss against the observed outcomes, treating engine.Params and the
// search core entirely as a black box.
package tuner

import "github.com/Sothatsit/ThreePlayerChess/board"

// Sample is one recorded training example: a position together with the
// eventual game outcome from one color's perspective, scaled to [0,1]
// (1 = that color won, 0.5 = drew or the game is still regarded as even,
// 0 = that color lost).
type Sample struct {
	State       *board.State
	Perspective board.Color
	Outcome     float64
}
