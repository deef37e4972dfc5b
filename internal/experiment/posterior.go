package experiment

import (
	"github.com/hdsbench/hdsbench/internal/sampling"
)

// PosteriorSamplingCriterion stops a run once the cumulative number of
// sampled points reaches the finish line. With a nil finish line it never
// stops on its own and the run relies entirely on the method's
// self-report.
type PosteriorSamplingCriterion struct {
	finishLine *int
	nSampled   int
}

// NewPosteriorSamplingCriterion creates a posterior-sampling stopping
// criterion.
func NewPosteriorSamplingCriterion(finishLine *int) *PosteriorSamplingCriterion {
	return &PosteriorSamplingCriterion{finishLine: finishLine}
}

// Name returns the criterion name.
func (c *PosteriorSamplingCriterion) Name() string {
	return string(CriterionTypePosteriorSampling)
}

// Stop accumulates the batch size and reports whether the finish line has
// been reached.
func (c *PosteriorSamplingCriterion) Stop(batch sampling.Batch) bool {
	c.nSampled += batch.Len()
	return c.finishLine != nil && c.nSampled >= *c.finishLine
}
