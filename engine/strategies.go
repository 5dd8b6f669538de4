package engine

import (
	"math/rand"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

// Strategy is the common interface every search strategy in this package
// satisfies — the iterative-deepening controller and the CLI both operate
// on this rather than any concrete strategy type.
type Strategy interface {
	Decide(root *board.State) Decision
}

// StrategyFactory builds a Strategy fixed to ply (and quiescencePly, for
// the two strategies that use one; ignored otherwise).
type StrategyFactory func(cat *board.Catalogue, params *Params, ply, quiescencePly int) Strategy

// fallbackMove returns a uniformly-random move from the full catalogue for
// turn, independent of the current board — used only when the root has no
// legal moves at all, so the root never reports "no move".
func fallbackMove(cat *board.Catalogue, turn board.Color, rng *rand.Rand) board.Move {
	var candidates []board.Move
	for sq := board.Square(0); sq < board.NumSquares; sq++ {
		for t := board.PieceType(0); t < board.NumPieceTypes; t++ {
			candidates = append(candidates, cat.MovesFor(sq, turn, t)...)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rng.Intn(len(candidates))]
}

// Strategies is the name → constructor registry the CLI's play/bench
// subcommands select from.
var Strategies = map[string]StrategyFactory{
	"minimax": func(cat *board.Catalogue, params *Params, ply, _ int) Strategy {
		return NewMinimaxStrategy(cat, params, ply)
	},
	"maximax": func(cat *board.Catalogue, params *Params, ply, _ int) Strategy {
		return NewMaximaxStrategy(cat, params, ply)
	},
	"quiescence": func(cat *board.Catalogue, params *Params, ply, quiescencePly int) Strategy {
		return NewQuiescenceStrategy(cat, params, ply, quiescencePly)
	},
	"restricted-quiescence": func(cat *board.Catalogue, params *Params, ply, quiescencePly int) Strategy {
		return NewRestrictedQuiescenceStrategy(cat, params, ply, quiescencePly)
	},
	"pvs": func(cat *board.Catalogue, params *Params, ply, _ int) Strategy {
		return NewPVSStrategy(cat, params, ply)
	},
}
