package method

import (
	"math/rand/v2"

	"github.com/hdsbench/hdsbench/internal/sampling"
)

// Random samples points uniformly over the function's ranges. It never
// reports itself finished; runs using it rely on the stopping criterion.
type Random struct {
	batchSize int
	seed      uint64
	rng       *rand.Rand
}

// NewRandom creates a uniform random sampler.
func NewRandom(batchSize int, seed uint64) *Random {
	return &Random{
		batchSize: batchSize,
		seed:      seed,
		rng:       rand.New(rand.NewPCG(seed, seed)),
	}
}

// Name returns the method name.
func (m *Random) Name() string {
	return string(TypeRandom)
}

// Sample draws one uniform batch and evaluates it.
func (m *Random) Sample(f sampling.Function) (sampling.Batch, error) {
	ranges := f.Ranges()

	x := make([][]float64, m.batchSize)
	for i := range x {
		point := make([]float64, len(ranges))
		for d, r := range ranges {
			point[d] = r[0] + m.rng.Float64()*(r[1]-r[0])
		}
		x[i] = point
	}

	y, err := f.Evaluate(x)
	if err != nil {
		return sampling.Batch{}, err
	}
	return sampling.Batch{X: x, Y: y}, nil
}

// IsFinished always reports false.
func (m *Random) IsFinished() bool {
	return false
}

// StoredParameters returns the reproducibility-relevant configuration.
func (m *Random) StoredParameters() map[string]any {
	return map[string]any{
		"batch_size": m.batchSize,
		"seed":       m.seed,
	}
}
