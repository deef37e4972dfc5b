// Package method provides sampling methods for the harness.
package method

import (
	"fmt"

	"github.com/hdsbench/hdsbench/internal/sampling"
)

// Type identifies a built-in sampling method.
type Type string

const (
	TypeRandom       Type = "random"
	TypeGaussianWalk Type = "gaussian_walk"
)

// IsValid checks if the method type is known.
func (t Type) IsValid() bool {
	switch t {
	case TypeRandom, TypeGaussianWalk:
		return true
	}
	return false
}

// String returns string representation.
func (t Type) String() string {
	return string(t)
}

// Config holds method construction parameters.
type Config struct {
	BatchSize int
	Seed      uint64
	StepSize  float64 // gaussian_walk proposal scale
}

// New creates a method of the given type.
func New(t Type, cfg Config) (sampling.Method, error) {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 1
	}
	switch t {
	case TypeRandom:
		return NewRandom(cfg.BatchSize, cfg.Seed), nil
	case TypeGaussianWalk:
		return NewGaussianWalk(cfg.BatchSize, cfg.Seed, cfg.StepSize), nil
	default:
		return nil, fmt.Errorf("unknown method type: %s", t)
	}
}
