package board

// Move is the shared interface over the catalogue's move variants. Each
// variant knows its own endpoints and how to validate itself against a
// state, given only that the outer move-generation loop has already
// confirmed the destination doesn't hold a piece of the mover's own
// color.
type Move interface {
	From() Square
	To() Square

	// Valid reports whether the move's own preconditions hold against s
	// (empty intermediates for sliders and the pawn double-step, an
	// occupied destination for pawn captures, an empty destination for
	// pawn forward moves, castling preconditions for king-castle moves).
	// King moves and knight moves have no additional preconditions.
	Valid(s *State) bool
}

// PawnOneForward is a pawn advancing one square, which requires the
// destination to be empty.
type PawnOneForward struct {
	from, to Square
}

func NewPawnOneForward(from, to Square) *PawnOneForward { return &PawnOneForward{from, to} }
func (m *PawnOneForward) From() Square                  { return m.from }
func (m *PawnOneForward) To() Square                    { return m.to }
func (m *PawnOneForward) Valid(s *State) bool           { return s.pieces[m.to] == 0 }

// PawnTwoForward is a pawn's initial double-step; both the intermediate
// square and the destination must be empty.
type PawnTwoForward struct {
	from, mid, to Square
}

func NewPawnTwoForward(from, mid, to Square) *PawnTwoForward {
	return &PawnTwoForward{from, mid, to}
}
func (m *PawnTwoForward) From() Square { return m.from }
func (m *PawnTwoForward) To() Square   { return m.to }
func (m *PawnTwoForward) Valid(s *State) bool {
	return s.pieces[m.mid] == 0 && s.pieces[m.to] == 0
}

// PawnTake is a pawn's diagonal capture; it is only valid when the
// destination is occupied (the outer loop already excludes same-color
// occupants, so an occupied destination here is always an enemy).
type PawnTake struct {
	from, to Square
}

func NewPawnTake(from, to Square) *PawnTake { return &PawnTake{from, to} }
func (m *PawnTake) From() Square            { return m.from }
func (m *PawnTake) To() Square              { return m.to }
func (m *PawnTake) Valid(s *State) bool     { return s.pieces[m.to] != 0 }

// KnightMove has no precondition beyond the destination color check
// already performed by the caller.
type KnightMove struct {
	from, to Square
}

func NewKnightMove(from, to Square) *KnightMove { return &KnightMove{from, to} }
func (m *KnightMove) From() Square              { return m.from }
func (m *KnightMove) To() Square                { return m.to }
func (m *KnightMove) Valid(*State) bool         { return true }

// KingMove has no precondition beyond the destination color check already
// performed by the caller.
type KingMove struct {
	from, to Square
}

func NewKingMove(from, to Square) *KingMove { return &KingMove{from, to} }
func (m *KingMove) From() Square            { return m.from }
func (m *KingMove) To() Square              { return m.to }
func (m *KingMove) Valid(*State) bool       { return true }

// KingCastle relocates the king and its rook in one move. rookFrom and
// rookTo describe the rook's half of the move; empties lists squares that
// must be vacant, the king's own destination among them (rookTo is
// checked separately); rookPiece
// is the exact packed byte the rook square must hold for the castle to be
// legal (guards against a differently-colored or differently-typed piece
// having slipped onto that square).
type KingCastle struct {
	from, to         Square
	rookFrom, rookTo Square
	empties          []Square
	rookPiece        Piece
}

func NewKingCastle(from, to, rookFrom, rookTo Square, empties []Square, rookPiece Piece) *KingCastle {
	return &KingCastle{from: from, to: to, rookFrom: rookFrom, rookTo: rookTo, empties: empties, rookPiece: rookPiece}
}

func (m *KingCastle) From() Square { return m.from }
func (m *KingCastle) To() Square   { return m.to }

func (m *KingCastle) Valid(s *State) bool {
	if s.pieces[m.rookFrom] != m.rookPiece {
		return false
	}
	if s.pieces[m.rookTo] != 0 {
		return false
	}
	for _, sq := range m.empties {
		if s.pieces[sq] != 0 {
			return false
		}
	}
	return true
}

// SliderMove is a rook/bishop/queen move along one ray. emptyBetween
// lists the squares strictly between From and To that must be vacant;
// skipIndex is patched in by the catalogue builder (see
// attachSkipIndexes) and is not meaningful until then.
type SliderMove struct {
	from, to     Square
	emptyBetween []Square
	reps         int
	skipIndex    int
}

// NewSliderMove constructs a slider move of the given repetition count
// along dirs from from, computing its intermediate squares. to must equal
// Step(from, dirs, reps).
func NewSliderMove(from, to Square, dirs []Direction, reps int) *SliderMove {
	empties := make([]Square, 0, reps-1)
	for r := 1; r < reps; r++ {
		sq := Step(from, dirs, r)
		if sq == NoSquare {
			panic("board: slider intermediate square left the board")
		}
		empties = append(empties, sq)
	}
	return &SliderMove{from: from, to: to, emptyBetween: empties, reps: reps}
}

func (m *SliderMove) From() Square { return m.from }
func (m *SliderMove) To() Square   { return m.to }

func (m *SliderMove) Valid(s *State) bool {
	for _, sq := range m.emptyBetween {
		if s.pieces[sq] != 0 {
			return false
		}
	}
	return true
}

// SkipIndex returns the index, within the move list this move came from,
// of the first later move with reps no greater than this move's (the start
// of the next ray, or the list length). When this move's destination holds
// a piece of the mover's own color, every move before that index is
// blocked too, so enumeration resumes there.
func (m *SliderMove) SkipIndex() int { return m.skipIndex }
