package tuner

import (
	"fmt"

	"github.com/Sothatsit/ThreePlayerChess/engine"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// Result is what one tuning run reports: the resulting triples plus basic
// convergence statistics over the losses the optimizer actually visited.
type Result struct {
	Start, End engine.Triple
	FinalLoss  float64
	Iterations int
	MeanLoss   float64
	StdDevLoss float64
}

// Tune searches the Start/End triple space with Nelder-Mead to minimize
// mean squared logistic-loss against samples, starting from initStart and
// initEnd (typically engine.DefaultStart/DefaultEnd). The evaluated losses
// from every iteration feed Result's convergence statistics
// (gonum.org/v1/gonum/stat), separate from the optimization itself
// (gonum.org/v1/gonum/optimize).
func Tune(samples []Sample, initStart, initEnd engine.Triple) (Result, error) {
	if len(samples) == 0 {
		return Result{}, fmt.Errorf("tuner: no samples")
	}

	outcomes := make([]float64, len(samples))
	for i, s := range samples {
		outcomes[i] = s.Outcome
	}

	// overflowLoss stands in for a candidate triple Nelder-Mead proposed
	// that overflows the derived utility table: worse than any loss a
	// legitimate triple could produce, steering the simplex away without
	// aborting the run over what is an expected consequence of searching
	// an unconstrained parameter space.
	const overflowLoss = 1e9

	var visitedLosses []float64
	objective := func(x []float64) (loss float64) {
		defer func() {
			if recover() != nil {
				loss = overflowLoss
			}
		}()
		start, end := unflatten(x)
		params := engine.NewParams(start, end)
		utilities := make([]float64, len(samples))
		for i, s := range samples {
			params.UpdateInterpolation(s.State)
			utilities[i] = float64(engineRecomputeUtility(params, s))
		}
		loss = meanSquaredError(outcomes, utilities)
		visitedLosses = append(visitedLosses, loss)
		return loss
	}

	problem := optimize.Problem{Func: objective}
	initial := flatten(initStart, initEnd)

	result, err := optimize.Minimize(problem, initial, nil, &optimize.NelderMead{})
	if err != nil {
		return Result{}, fmt.Errorf("tuner: optimize: %w", err)
	}

	start, end := unflatten(result.X)
	out := Result{
		Start:      start,
		End:        end,
		FinalLoss:  result.F,
		Iterations: result.Stats.MajorIterations,
	}
	if len(visitedLosses) > 0 {
		out.MeanLoss = stat.Mean(visitedLosses, nil)
		out.StdDevLoss = stat.StdDev(visitedLosses, nil)
	}
	return out, nil
}
