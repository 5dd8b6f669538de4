package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Sothatsit/ThreePlayerChess/board"
	"github.com/Sothatsit/ThreePlayerChess/internal/refboard"
)

// ReferenceBoard is the external board contract an Agent consumes: current
// turn color, piece placement, game-over status with winner/loser, a
// per-color millisecond clock, a move count, and the ability to apply a
// (from,to) position pair and report whether it was legal.
// internal/refboard.Board satisfies this directly, with no adapter needed.
type ReferenceBoard interface {
	TurnColor() board.Color
	PieceAt(pos refboard.Position) (board.Piece, bool)
	GameOver() (over bool, winner, loser board.Color)
	TimeRemainingMillis(c board.Color) int64
	MoveCount() int
	ApplyMove(from, to refboard.Position) (legal bool, err error)
}

// Agent reads a ReferenceBoard snapshot and chooses a move, and can Clone
// itself into an independent instance — each concurrent game gets its own
// parameters and scratch allocations rather than sharing either with the
// agent it was cloned from.
type Agent interface {
	PlayMove(rb ReferenceBoard) (from, to refboard.Position, err error)
	Clone() Agent
}

// SearchAgent is the production Agent: a registered Strategy plus the
// Params it searches with, driven over whatever ReferenceBoard its caller
// hands it. budgetMillis of zero runs a single fixed-depth search per
// turn; a positive value runs DeepeningLoop instead.
type SearchAgent struct {
	strategyName  string
	ply           int
	quiescencePly int
	budgetMillis  int64
	cat           *board.Catalogue
	params        *Params
	strategy      Strategy
	log           zerolog.Logger
}

// NewSearchAgent builds a SearchAgent fixed to one registered strategy
// name. An unknown strategyName is reported immediately rather than at the
// first PlayMove call.
func NewSearchAgent(strategyName string, cat *board.Catalogue, params *Params, ply, quiescencePly int, budgetMillis int64, log zerolog.Logger) (*SearchAgent, error) {
	factory, ok := Strategies[strategyName]
	if !ok {
		return nil, fmt.Errorf("engine: unknown strategy %q", strategyName)
	}
	return &SearchAgent{
		strategyName:  strategyName,
		ply:           ply,
		quiescencePly: quiescencePly,
		budgetMillis:  budgetMillis,
		cat:           cat,
		params:        params,
		strategy:      factory(cat, params, ply, quiescencePly),
		log:           log,
	}, nil
}

// PlayMove copies rb's piece placement and turn into a fresh board.State,
// updates the interpolated parameters for the current material balance,
// runs the configured search, and translates the chosen move's squares
// back into rb's own Position space.
func (a *SearchAgent) PlayMove(rb ReferenceBoard) (from, to refboard.Position, err error) {
	state := board.FromReferenceBoard(referenceBoardAdapter{rb: rb}, a.params.Table())
	a.params.UpdateInterpolation(state)
	state.Utility = board.RecomputeUtilities(state, a.params.Table())

	decision := a.decide(state)
	return positionFromSquare(decision.Move.From()), positionFromSquare(decision.Move.To()), nil
}

// decide runs either a single fixed-depth search or the full
// iterative-deepening loop, depending on whether a time budget was given.
func (a *SearchAgent) decide(state *board.State) Decision {
	if a.budgetMillis <= 0 {
		return a.strategy.Decide(state)
	}

	handler := NewTimeHandler()
	budget := handler.Budget(a.budgetMillis*int64(time.Millisecond), false)
	result := DeepeningLoop(budget, a.log, func(p int) DepthResult {
		factory := Strategies[a.strategyName]
		s := factory(a.cat, a.params, p, a.quiescencePly)
		start := time.Now()
		d := s.Decide(state)
		return DepthResult{Ply: p, Move: d.Move, Nodes: d.Nodes, Elapsed: time.Since(start), Utility: d.Utility}
	})
	return Decision{Move: result.Move, Utility: result.Utility, Nodes: result.Nodes}
}

// Clone returns a SearchAgent with the same strategy/depth configuration
// but an independently-owned Params (deep-copied) and Strategy (built
// fresh, so it carries its own ScratchFleet and seeded RNG rather than the
// original's).
func (a *SearchAgent) Clone() Agent {
	clone, err := NewSearchAgent(a.strategyName, a.cat, a.params.Clone(), a.ply, a.quiescencePly, a.budgetMillis, a.log)
	if err != nil {
		panic(fmt.Sprintf("engine: Clone re-validated strategy %q that NewSearchAgent already accepted: %v", a.strategyName, err))
	}
	return clone
}

// positionFromSquare converts a catalogue square into the reference
// board's own coordinate type.
func positionFromSquare(sq board.Square) refboard.Position {
	return refboard.Position{Segment: sq.Segment(), Row: sq.Row(), Col: sq.Col()}
}

// referenceBoardAdapter satisfies board.ExternalBoard by delegating to a
// ReferenceBoard's Position-keyed PieceAt through positionFromSquare.
type referenceBoardAdapter struct{ rb ReferenceBoard }

func (a referenceBoardAdapter) PieceAt(sq board.Square) board.Piece {
	p, _ := a.rb.PieceAt(positionFromSquare(sq))
	return p
}

func (a referenceBoardAdapter) Turn() board.Color { return a.rb.TurnColor() }
