package experiment

import (
	"math"
	"testing"

	"github.com/hdsbench/hdsbench/internal/sampling"
)

// batchOf builds a batch of n one-dimensional points whose outputs are all
// equal to value, so the per-iteration minimum is value.
func batchOf(n int, value float64) sampling.Batch {
	x := make([][]float64, n)
	y := make([][]float64, n)
	for i := 0; i < n; i++ {
		x[i] = []float64{0}
		y[i] = []float64{value}
	}
	return sampling.Batch{X: x, Y: y}
}

func intPtr(v int) *int {
	return &v
}

func TestOptimisationCriterion_Name(t *testing.T) {
	c := NewOptimisationCriterion(CriterionParams{})
	if c.Name() != "optimisation" {
		t.Errorf("expected name 'optimisation', got '%s'", c.Name())
	}
}

func TestOptimisationCriterion_HardCap(t *testing.T) {
	c := NewOptimisationCriterion(CriterionParams{
		Epsilon:             0.1,
		AbsoluteImprovement: true,
		Patience:            1000,
		FinishLine:          intPtr(5),
	})

	// Batches of 2: cumulative 2, 4, 6. The cap fires when the count
	// strictly exceeds the finish line, regardless of improvement.
	if c.Stop(batchOf(2, 10)) {
		t.Error("expected continue at cumulative count 2")
	}
	if c.Stop(batchOf(2, 9)) {
		t.Error("expected continue at cumulative count 4")
	}
	if !c.Stop(batchOf(2, 8)) {
		t.Error("expected stop at cumulative count 6 > finish line 5")
	}
}

func TestOptimisationCriterion_HardCapExactCountContinues(t *testing.T) {
	c := NewOptimisationCriterion(CriterionParams{
		Epsilon:             0.1,
		AbsoluteImprovement: true,
		Patience:            1000,
		FinishLine:          intPtr(4),
	})

	c.Stop(batchOf(2, 10))
	// Cumulative count equals the finish line exactly; the cap uses a
	// strict comparison, so the run continues.
	if c.Stop(batchOf(2, 5)) {
		t.Error("expected continue at cumulative count 4 == finish line 4")
	}
}

// The backward scan excludes both the just-appended entry and entry 0;
// entry 0 only serves as the fallback when no qualifying improvement is
// found. For a decreasing sequence the absolute condition cut-optimals[i]
// is negative throughout, so the fallback always wins and the criterion
// effectively stops once total samples since the first iteration exceed
// the patience. This asymmetric scan is preserved from the reference
// result sets on purpose; treat any change here as a reproducibility risk.
func TestOptimisationCriterion_SlowImprovementScenario(t *testing.T) {
	c := NewOptimisationCriterion(CriterionParams{
		Epsilon:             0.1,
		AbsoluteImprovement: true,
		Patience:            2,
	})

	// Per-iteration minima 10, 9, 8.95, 8.9 with one point each.
	if c.Stop(batchOf(1, 10)) {
		t.Error("iteration 1: expected continue (0 samples since start)")
	}
	if c.Stop(batchOf(1, 9)) {
		t.Error("iteration 2: expected continue (1 sample since start)")
	}
	if c.Stop(batchOf(1, 8.95)) {
		t.Error("iteration 3: expected continue (2 samples, not above patience)")
	}
	if !c.Stop(batchOf(1, 8.9)) {
		t.Error("iteration 4: expected stop (3 samples since start > patience 2)")
	}
}

func TestOptimisationCriterion_AbsoluteImprovementResetsPatience(t *testing.T) {
	c := NewOptimisationCriterion(CriterionParams{
		Epsilon:             0.1,
		AbsoluteImprovement: true,
		Patience:            5,
	})

	// A later minimum ABOVE an earlier one satisfies cut-optimals[i] >
	// epsilon, so the scan finds a qualifying entry and the distance is
	// measured from there.
	c.Stop(batchOf(3, 5))  // n=3
	c.Stop(batchOf(3, 1))  // n=6
	c.Stop(batchOf(3, 2))  // n=9
	// cut=4; i=2: 4-2=2 > 0.1, distance n[3]-n[2] = 12-9 = 3 <= 5.
	if c.Stop(batchOf(3, 4)) {
		t.Error("expected continue: improvement found 3 samples back")
	}
}

func TestOptimisationCriterion_RatioImprovementFound(t *testing.T) {
	c := NewOptimisationCriterion(CriterionParams{
		Epsilon:             1.2,
		AbsoluteImprovement: false,
		Patience:            15,
	})

	if c.Stop(batchOf(10, 100)) { // n=10, fallback distance 0
		t.Error("iteration 1: expected continue")
	}
	if c.Stop(batchOf(10, 50)) { // n=20, fallback distance 10
		t.Error("iteration 2: expected continue")
	}
	// cut=40; i=1: 50/40 = 1.25 > 1.2, distance n[2]-n[1] = 30-20 = 10.
	// Without the find the fallback distance 20 would exceed the patience.
	if c.Stop(batchOf(10, 40)) {
		t.Error("iteration 3: expected continue, ratio improvement found 10 samples back")
	}
}

func TestOptimisationCriterion_RatioImprovementNotFound(t *testing.T) {
	c := NewOptimisationCriterion(CriterionParams{
		Epsilon:             1.3,
		AbsoluteImprovement: false,
		Patience:            15,
	})

	c.Stop(batchOf(10, 100))
	c.Stop(batchOf(10, 50))
	// cut=40; i=1: 50/40 = 1.25 is not above 1.3, so the fallback
	// distance n[2]-n[0] = 20 applies and exceeds the patience.
	if !c.Stop(batchOf(10, 40)) {
		t.Error("iteration 3: expected stop, no qualifying ratio improvement")
	}
}

func TestOptimisationCriterion_EmptyBatch(t *testing.T) {
	c := NewOptimisationCriterion(CriterionParams{
		Epsilon:             0.1,
		AbsoluteImprovement: true,
		Patience:            100,
	})

	// An empty batch is a legal degenerate input and must not panic.
	if c.Stop(sampling.Batch{}) {
		t.Error("expected continue after empty first batch")
	}
	if c.Stop(batchOf(2, 1)) {
		t.Error("expected continue after first real batch")
	}
}

func TestOptimisationCriterion_NilFinishLine(t *testing.T) {
	c := NewOptimisationCriterion(CriterionParams{
		Epsilon:             0.1,
		AbsoluteImprovement: true,
		Patience:            1000000,
	})

	for i := 0; i < 100; i++ {
		if c.Stop(batchOf(100, float64(100-i))) {
			t.Fatalf("expected no stop without finish line, stopped at iteration %d", i+1)
		}
	}
}

func TestBatchMin(t *testing.T) {
	b := sampling.Batch{
		X: [][]float64{{0}, {1}},
		Y: [][]float64{{3, -2}, {7, 4}},
	}
	if got := batchMin(b); got != -2 {
		t.Errorf("expected minimum -2 over all output components, got %g", got)
	}

	if got := batchMin(sampling.Batch{}); !math.IsInf(got, 1) {
		t.Errorf("expected +Inf for empty batch, got %g", got)
	}
}
