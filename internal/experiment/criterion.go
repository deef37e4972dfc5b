package experiment

import (
	"fmt"

	"github.com/hdsbench/hdsbench/internal/sampling"
)

// Criterion decides, per iteration, whether a run should stop independent
// of the method's own completion signal. Stop both updates the criterion's
// accumulated state with the iteration's batch and returns the decision.
type Criterion interface {
	// Name returns the criterion name.
	Name() string

	// Stop folds the batch into the criterion state and reports whether
	// the run should halt.
	Stop(batch sampling.Batch) bool
}

// CriterionType represents the kind of stopping criterion.
type CriterionType string

const (
	CriterionTypeOptimisation      CriterionType = "optimisation"
	CriterionTypePosteriorSampling CriterionType = "posterior_sampling"
)

// IsValid checks if the criterion type is valid.
func (t CriterionType) IsValid() bool {
	switch t {
	case CriterionTypeOptimisation, CriterionTypePosteriorSampling:
		return true
	}
	return false
}

// String returns string representation.
func (t CriterionType) String() string {
	return string(t)
}

// CriterionParams holds criterion construction parameters. FinishLine is a
// hard cap on cumulative sampled points; nil disables it.
type CriterionParams struct {
	Epsilon             float64
	AbsoluteImprovement bool
	Patience            int
	FinishLine          *int
}

// NewCriterion creates a stopping criterion of the specified type.
func NewCriterion(t CriterionType, params CriterionParams) (Criterion, error) {
	switch t {
	case CriterionTypeOptimisation:
		return NewOptimisationCriterion(params), nil
	case CriterionTypePosteriorSampling:
		return NewPosteriorSamplingCriterion(params.FinishLine), nil
	default:
		return nil, fmt.Errorf("unknown criterion type: %s", t)
	}
}
