// Package function provides objective functions for the harness together
// with the query recording they all share.
package function

import (
	"sync"

	"github.com/hdsbench/hdsbench/internal/sampling"
)

// recorder implements the query-counter part of the sampling.Function
// contract. Concrete functions embed it and call record around every
// evaluation.
type recorder struct {
	mu      sync.Mutex
	queries []sampling.QueryRecord
}

func (r *recorder) record(n int, elapsed float64, derivative bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, sampling.QueryRecord{
		NQueried:   n,
		Elapsed:    elapsed,
		Derivative: derivative,
	})
}

// Reset clears the recorded queries.
func (r *recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = nil
}

// Queries returns a copy of the queries recorded since the last reset.
func (r *recorder) Queries() []sampling.QueryRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]sampling.QueryRecord, len(r.queries))
	copy(out, r.queries)
	return out
}
