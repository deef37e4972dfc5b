package function

import (
	"fmt"
	"math"
	"time"
)

// Rastrigin is the n-dimensional Rastrigin function, a standard multimodal
// optimisation target: y = 10n + sum(x_i^2 - 10*cos(2*pi*x_i)). Its global
// minimum is 0 at the origin.
type Rastrigin struct {
	recorder
	dimensions int
}

// NewRastrigin creates a Rastrigin function with the given dimensionality.
func NewRastrigin(dimensions int) *Rastrigin {
	if dimensions < 1 {
		dimensions = 1
	}
	return &Rastrigin{dimensions: dimensions}
}

// Name returns the function name.
func (f *Rastrigin) Name() string {
	return "rastrigin"
}

// Evaluate computes the Rastrigin value for every input point.
func (f *Rastrigin) Evaluate(x [][]float64) ([][]float64, error) {
	start := time.Now()

	y := make([][]float64, len(x))
	for i, point := range x {
		if len(point) != f.dimensions {
			return nil, fmt.Errorf("rastrigin: point %d has %d dimensions, want %d", i, len(point), f.dimensions)
		}
		sum := 10 * float64(f.dimensions)
		for _, v := range point {
			sum += v*v - 10*math.Cos(2*math.Pi*v)
		}
		y[i] = []float64{sum}
	}

	f.record(len(x), time.Since(start).Seconds(), false)
	return y, nil
}

// Ranges returns the conventional [-5.12, 5.12] bounds per dimension.
func (f *Rastrigin) Ranges() [][2]float64 {
	ranges := make([][2]float64, f.dimensions)
	for i := range ranges {
		ranges[i] = [2]float64{-5.12, 5.12}
	}
	return ranges
}

// Properties returns the function configuration for metadata snapshots.
func (f *Rastrigin) Properties() map[string]any {
	return map[string]any{
		"dimensions": f.dimensions,
		"minimum":    0.0,
	}
}
