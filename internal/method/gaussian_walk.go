package method

import (
	"math/rand/v2"

	"github.com/hdsbench/hdsbench/internal/sampling"
)

// GaussianWalk proposes points around the best point observed so far. The
// first batch is drawn uniformly; later batches are gaussian perturbations
// of the incumbent, clamped to the function's ranges.
type GaussianWalk struct {
	batchSize int
	seed      uint64
	stepSize  float64
	rng       *rand.Rand

	best     []float64
	bestVal  float64
	haveBest bool
}

// NewGaussianWalk creates a gaussian random-walk sampler. stepSize scales
// the proposal width relative to each dimension's range.
func NewGaussianWalk(batchSize int, seed uint64, stepSize float64) *GaussianWalk {
	if stepSize <= 0 {
		stepSize = 0.1
	}
	return &GaussianWalk{
		batchSize: batchSize,
		seed:      seed,
		stepSize:  stepSize,
		rng:       rand.New(rand.NewPCG(seed, seed)),
	}
}

// Name returns the method name.
func (m *GaussianWalk) Name() string {
	return string(TypeGaussianWalk)
}

// Sample draws one batch around the incumbent and evaluates it.
func (m *GaussianWalk) Sample(f sampling.Function) (sampling.Batch, error) {
	ranges := f.Ranges()

	x := make([][]float64, m.batchSize)
	for i := range x {
		point := make([]float64, len(ranges))
		for d, r := range ranges {
			if m.haveBest {
				width := (r[1] - r[0]) * m.stepSize
				point[d] = clamp(m.best[d]+m.rng.NormFloat64()*width, r[0], r[1])
			} else {
				point[d] = r[0] + m.rng.Float64()*(r[1]-r[0])
			}
		}
		x[i] = point
	}

	y, err := f.Evaluate(x)
	if err != nil {
		return sampling.Batch{}, err
	}

	m.updateBest(x, y)
	return sampling.Batch{X: x, Y: y}, nil
}

func (m *GaussianWalk) updateBest(x [][]float64, y [][]float64) {
	for i, row := range y {
		for _, v := range row {
			if !m.haveBest || v < m.bestVal {
				m.bestVal = v
				m.best = append([]float64(nil), x[i]...)
				m.haveBest = true
			}
		}
	}
}

// IsFinished always reports false.
func (m *GaussianWalk) IsFinished() bool {
	return false
}

// StoredParameters returns the reproducibility-relevant configuration.
func (m *GaussianWalk) StoredParameters() map[string]any {
	return map[string]any{
		"batch_size": m.batchSize,
		"seed":       m.seed,
		"step_size":  m.stepSize,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
