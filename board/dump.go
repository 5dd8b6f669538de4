package board

import (
	"strings"

	"github.com/rs/zerolog"
)

// Dump renders s as three stacked segment grids, one per color's home
// area, for debug logging. Not used on any hot path.
func (s *State) Dump() string {
	var b strings.Builder
	for seg := 0; seg < 3; seg++ {
		b.WriteString("segment ")
		b.WriteString(Color(seg).String())
		b.WriteByte('\n')
		for row := RowsPerSeg - 1; row >= 0; row-- {
			for col := 0; col < ColsPerSeg; col++ {
				p := s.pieces[NewSquare(seg, row, col)]
				b.WriteString(p.String())
				b.WriteByte(' ')
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// MarshalZerologObject lets a State be logged as a structured field via
// zerolog's event.EmbedObject, rather than stringified by hand at every
// call site.
func (s *State) MarshalZerologObject(e *zerolog.Event) {
	e.Str("turn", s.turn.String()).
		Bool("game_over", s.over.Decided).
		Int64("utility_white", s.Utility[White]).
		Int64("utility_gray", s.Utility[Gray]).
		Int64("utility_black", s.Utility[Black]).
		Uint64("hash", s.Hash())
	if s.over.Decided {
		e.Str("winner", s.over.Winner.String()).Str("loser", s.over.Loser.String())
	}
}
