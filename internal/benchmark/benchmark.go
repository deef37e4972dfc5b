// Package benchmark measures machine capability so results from different
// hosts can be compared. The snapshot characterizes the machine, not a
// run, and is shared across runs writing into the same base path.
package benchmark

import (
	"crypto/sha256"
	"math/rand/v2"
	"time"
)

const (
	matrixSize  = 200
	hashChunkKB = 64
	hashRounds  = 4096
)

// Snapshot holds the benchmark timings and the machine description.
type Snapshot struct {
	Benchmarks Timings `yaml:"benchmarks"`
	Machine    Machine `yaml:"machine"`
}

// Timings holds the measured benchmark durations in seconds.
type Timings struct {
	MatrixInversion float64 `yaml:"matrix_inversion"`
	SHAHashing      float64 `yaml:"sha_hashing"`
}

// Collect runs all benchmarks and probes the machine.
func Collect() (Snapshot, error) {
	machine, err := probeMachine()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Benchmarks: Timings{
			MatrixInversion: MatrixInversion(),
			SHAHashing:      SHAHashing(),
		},
		Machine: machine,
	}, nil
}

// MatrixInversion returns the seconds spent inverting a dense 200x200
// matrix with Gauss-Jordan elimination.
func MatrixInversion() float64 {
	rng := rand.New(rand.NewPCG(1, 1))

	m := make([][]float64, matrixSize)
	for i := range m {
		m[i] = make([]float64, matrixSize)
		for j := range m[i] {
			m[i][j] = rng.Float64()
		}
		// Diagonal dominance keeps the matrix invertible.
		m[i][i] += float64(matrixSize)
	}

	start := time.Now()
	invert(m)
	return time.Since(start).Seconds()
}

// invert performs in-place Gauss-Jordan elimination on an augmented copy
// of m and returns the inverse.
func invert(m [][]float64) [][]float64 {
	n := len(m)

	a := make([][]float64, n)
	inv := make([][]float64, n)
	for i := range m {
		a[i] = append([]float64(nil), m[i]...)
		inv[i] = make([]float64, n)
		inv[i][i] = 1
	}

	for col := 0; col < n; col++ {
		pivot := a[col][col]
		for j := 0; j < n; j++ {
			a[col][j] /= pivot
			inv[col][j] /= pivot
		}
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := a[row][col]
			for j := 0; j < n; j++ {
				a[row][j] -= factor * a[col][j]
				inv[row][j] -= factor * inv[col][j]
			}
		}
	}

	return inv
}

// SHAHashing returns the seconds spent computing 4096 SHA-256 digests of a
// 64 KiB buffer.
func SHAHashing() float64 {
	buf := make([]byte, hashChunkKB*1024)
	rng := rand.New(rand.NewPCG(2, 2))
	for i := range buf {
		buf[i] = byte(rng.UintN(256))
	}

	start := time.Now()
	for i := 0; i < hashRounds; i++ {
		sha256.Sum256(buf)
	}
	return time.Since(start).Seconds()
}
