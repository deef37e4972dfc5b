package function

import (
	"fmt"
	"time"
)

// Sphere is the n-dimensional sphere function: y = sum(x_i^2). Its global
// minimum is 0 at the origin.
type Sphere struct {
	recorder
	dimensions int
}

// NewSphere creates a sphere function with the given input dimensionality.
func NewSphere(dimensions int) *Sphere {
	if dimensions < 1 {
		dimensions = 1
	}
	return &Sphere{dimensions: dimensions}
}

// Name returns the function name.
func (f *Sphere) Name() string {
	return "sphere"
}

// Evaluate computes sum(x_i^2) for every input point.
func (f *Sphere) Evaluate(x [][]float64) ([][]float64, error) {
	start := time.Now()

	y := make([][]float64, len(x))
	for i, point := range x {
		if len(point) != f.dimensions {
			return nil, fmt.Errorf("sphere: point %d has %d dimensions, want %d", i, len(point), f.dimensions)
		}
		var sum float64
		for _, v := range point {
			sum += v * v
		}
		y[i] = []float64{sum}
	}

	f.record(len(x), time.Since(start).Seconds(), false)
	return y, nil
}

// Ranges returns [-10, 10] bounds per dimension.
func (f *Sphere) Ranges() [][2]float64 {
	ranges := make([][2]float64, f.dimensions)
	for i := range ranges {
		ranges[i] = [2]float64{-10, 10}
	}
	return ranges
}

// Properties returns the function configuration for metadata snapshots.
func (f *Sphere) Properties() map[string]any {
	return map[string]any{
		"dimensions": f.dimensions,
		"minimum":    0.0,
	}
}
