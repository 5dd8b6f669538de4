package engine

import (
	"testing"

	"github.com/Sothatsit/ThreePlayerChess/board"
)

func TestStrategiesRegistryBuildsAndDecides(t *testing.T) {
	params := DefaultParams()
	state := kingTriangleState(params.Table())
	cat := board.GlobalCatalogue()

	for name, factory := range Strategies {
		strat := factory(cat, params, 2, 1)
		decision := strat.Decide(state)
		if decision.Move == nil {
			t.Errorf("strategy %q returned a nil move from a non-terminal position", name)
		}
	}
}
