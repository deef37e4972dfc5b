package function

import (
	"fmt"

	"github.com/hdsbench/hdsbench/internal/sampling"
)

// Type identifies a built-in objective function.
type Type string

const (
	TypeSphere    Type = "sphere"
	TypeRastrigin Type = "rastrigin"
)

// IsValid checks if the function type is known.
func (t Type) IsValid() bool {
	switch t {
	case TypeSphere, TypeRastrigin:
		return true
	}
	return false
}

// String returns string representation.
func (t Type) String() string {
	return string(t)
}

// New creates a function of the given type and dimensionality.
func New(t Type, dimensions int) (sampling.Function, error) {
	switch t {
	case TypeSphere:
		return NewSphere(dimensions), nil
	case TypeRastrigin:
		return NewRastrigin(dimensions), nil
	default:
		return nil, fmt.Errorf("unknown function type: %s", t)
	}
}
