package tui

import (
	"time"
)

// Config holds TUI configuration
type Config struct {
	RunDir          string
	RefreshInterval time.Duration
}

// Model represents the TUI state
type Model struct {
	config Config

	// Data from the run directory
	run *RunData

	// UI state
	width       int
	height      int
	loading     bool
	err         error
	lastUpdated time.Time
}

// RunData is the state of one experiment run as read from its directory.
type RunData struct {
	MethodName   string
	FunctionName string
	User         string
	StartedAt    string

	Calls []MethodCall
}

// MethodCall is one parsed row of methodcalls.csv.
type MethodCall struct {
	ID        int
	Elapsed   float64
	TotalSize int
	NewPoints int
}

// Iterations returns the number of method calls recorded so far.
func (r *RunData) Iterations() int {
	return len(r.Calls)
}

// TotalSize returns the cumulative dataset size after the last call.
func (r *RunData) TotalSize() int {
	if len(r.Calls) == 0 {
		return 0
	}
	return r.Calls[len(r.Calls)-1].TotalSize
}

// NewModel creates a new TUI model
func NewModel(cfg Config) Model {
	return Model{
		config:  cfg,
		loading: true,
	}
}
