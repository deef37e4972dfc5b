// Package sampling holds the data types and capability contracts shared
// between sampling methods, objective functions and the experiment loop.
package sampling

import "fmt"

// Batch is one round of sampled points: X holds the inputs (n rows of
// dimension d), Y the corresponding outputs (n rows of dimension k).
type Batch struct {
	X [][]float64
	Y [][]float64
}

// Len returns the number of points in the batch.
func (b Batch) Len() int {
	return len(b.X)
}

// Validate checks the batch invariant: inputs and outputs must pair up.
func (b Batch) Validate() error {
	if len(b.X) != len(b.Y) {
		return fmt.Errorf("batch has %d inputs but %d outputs", len(b.X), len(b.Y))
	}
	return nil
}

// MethodCallRecord describes one invocation of a method by the loop.
type MethodCallRecord struct {
	CallID    int
	Elapsed   float64 // seconds
	TotalSize int     // cumulative dataset size after this call
	NewPoints int     // points generated by this call
}

// QueryRecord describes one query a function logged internally since its
// last reset.
type QueryRecord struct {
	NQueried   int
	Elapsed    float64 // seconds
	Derivative bool
}

// Method is a pluggable sampling strategy. One Sample call produces one
// Batch; IsFinished lets the method end the run on its own terms.
type Method interface {
	Name() string

	// Sample asks the method for its next batch of points against f.
	Sample(f Function) (Batch, error)

	// IsFinished reports whether the method considers itself done.
	IsFinished() bool

	// StoredParameters returns the subset of the method's configuration
	// that should be persisted for reproducibility.
	StoredParameters() map[string]any
}

// Function is a pluggable objective. It records every query internally
// until Reset is called.
type Function interface {
	Name() string

	// Evaluate computes the outputs for the given input points.
	Evaluate(x [][]float64) ([][]float64, error)

	// Ranges returns the [min, max] bounds per input dimension.
	Ranges() [][2]float64

	// Reset clears the internal query counter.
	Reset()

	// Queries returns the queries recorded since the last reset.
	Queries() []QueryRecord

	// Properties returns the function's configuration, excluding the
	// query counter, for the metadata snapshot.
	Properties() map[string]any
}
