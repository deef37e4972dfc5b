package experiment

import (
	"math"

	"github.com/hdsbench/hdsbench/internal/sampling"
)

// OptimisationCriterion stops an optimisation run when the hard cap is hit
// or when too many samples have been drawn without an epsilon improvement
// of the per-iteration minimum.
type OptimisationCriterion struct {
	epsilon             float64
	absoluteImprovement bool
	patience            int
	finishLine          *int

	nSampled []int
	optimals []float64
}

// NewOptimisationCriterion creates an optimisation stopping criterion.
func NewOptimisationCriterion(params CriterionParams) *OptimisationCriterion {
	return &OptimisationCriterion{
		epsilon:             params.Epsilon,
		absoluteImprovement: params.AbsoluteImprovement,
		patience:            params.Patience,
		finishLine:          params.FinishLine,
	}
}

// Name returns the criterion name.
func (c *OptimisationCriterion) Name() string {
	return string(CriterionTypeOptimisation)
}

// Stop folds the batch into the criterion state and reports whether the
// run should halt. The hard cap is checked before the improvement logic.
func (c *OptimisationCriterion) Stop(batch sampling.Batch) bool {
	if len(c.nSampled) == 0 {
		c.nSampled = []int{batch.Len()}
	} else {
		c.nSampled = append(c.nSampled, c.nSampled[len(c.nSampled)-1]+batch.Len())
	}

	if c.finishLine != nil && c.nSampled[len(c.nSampled)-1] > *c.finishLine {
		return true
	}

	c.optimals = append(c.optimals, batchMin(batch))

	return c.sampledSinceImprovement() > c.patience
}

// sampledSinceImprovement scans backward for the most recent iteration
// whose improvement condition exceeds epsilon and returns the number of
// samples drawn since then. The scan runs from the second-to-last entry
// down to index 1: neither the just-appended baseline nor the very first
// entry is a candidate, and the first entry is only the fallback when no
// improvement is found. This asymmetry is kept as-is for compatibility
// with existing result sets.
func (c *OptimisationCriterion) sampledSinceImprovement() int {
	last := len(c.optimals) - 1
	cut := c.optimals[last]
	for i := last - 1; i >= 1; i-- {
		var condition float64
		if c.absoluteImprovement {
			condition = cut - c.optimals[i]
		} else {
			condition = c.optimals[i] / cut
		}
		if condition > c.epsilon {
			return c.nSampled[last] - c.nSampled[i]
		}
	}
	return c.nSampled[last] - c.nSampled[0]
}

// batchMin returns the minimum over all output components of the batch.
// An empty batch yields +Inf so it can never register as an improvement.
func batchMin(batch sampling.Batch) float64 {
	min := math.Inf(1)
	for _, row := range batch.Y {
		for _, v := range row {
			if v < min {
				min = v
			}
		}
	}
	return min
}
