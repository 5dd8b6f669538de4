package bench

import (
	"testing"

	"github.com/Sothatsit/ThreePlayerChess/board"
	"github.com/Sothatsit/ThreePlayerChess/engine"
)

func benchStrategy(b *testing.B, name string, ply, quiescencePly int) {
	params := engine.DefaultParams()
	state := openingPosition()
	params.UpdateInterpolation(state)
	state.Utility = board.RecomputeUtilities(state, params.Table())

	factory, ok := engine.Strategies[name]
	if !ok {
		b.Fatalf("no registered strategy %q", name)
	}
	strat := factory(board.GlobalCatalogue(), params, ply, quiescencePly)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		strat.Decide(state)
	}
}

func BenchmarkMinimax_Ply2(b *testing.B)               { benchStrategy(b, "minimax", 2, 0) }
func BenchmarkMaximax_Ply2(b *testing.B)               { benchStrategy(b, "maximax", 2, 0) }
func BenchmarkPVS_Ply2(b *testing.B)                   { benchStrategy(b, "pvs", 2, 0) }
func BenchmarkQuiescence_Ply2Q1(b *testing.B)          { benchStrategy(b, "quiescence", 2, 1) }
func BenchmarkRestrictedQuiescence_Ply2Q1(b *testing.B) { benchStrategy(b, "restricted-quiescence", 2, 1) }
