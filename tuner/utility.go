package tuner

import (
	"github.com/Sothatsit/ThreePlayerChess/board"
	"github.com/Sothatsit/ThreePlayerChess/engine"
)

// engineRecomputeUtility derives sample's utility from scratch under the
// parameters currently active in params, from the sample's own
// perspective color — the tuner never trusts a sample's pre-existing
// State.Utility, since it was computed under whatever params produced the
// recorded game.
func engineRecomputeUtility(params *engine.Params, sample Sample) int64 {
	return board.RecomputeUtilities(sample.State, params.Table())[sample.Perspective]
}
