package board

import "math/rand"

// Zobrist tables for the packed board: one key per (square, piece byte),
// plus one key per turn color. Seeded fixed so hashes are reproducible
// across test runs and process restarts.
var (
	zobristPiece [NumSquares][256]uint64
	zobristTurn  [3]uint64
)

func init() {
	rnd := rand.New(rand.NewSource(0x7448ee))
	for sq := 0; sq < NumSquares; sq++ {
		for p := 0; p < 256; p++ {
			zobristPiece[sq][p] = rnd.Uint64()
		}
	}
	for c := 0; c < 3; c++ {
		zobristTurn[c] = rnd.Uint64()
	}
}

// Hash returns a Zobrist-style hash of s's piece placement, turn color, and
// game-over status. Two states with the same hash are expected (not
// guaranteed) to be equal; logged by MarshalZerologObject and used by
// tests that want a cheap equality proxy rather than a 96-byte comparison.
func (s *State) Hash() uint64 {
	var key uint64
	for sq := Square(0); sq < NumSquares; sq++ {
		if p := s.pieces[sq]; p.Present() {
			key ^= zobristPiece[sq][p]
		}
	}
	key ^= zobristTurn[s.turn]
	if s.over.Decided {
		key ^= uint64(s.over.Winner)<<2 | uint64(s.over.Loser)
	}
	return key
}
