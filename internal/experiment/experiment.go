// Package experiment drives one benchmarking run: it repeatedly invokes a
// sampling method on an objective function, feeds every iteration to the
// run logger and halts on the method's self-report or on the configured
// stopping criterion.
package experiment

import (
	"errors"
	"fmt"
	"log/slog"
	"os/user"
	"strconv"
	"strings"
	"time"

	"github.com/hdsbench/hdsbench/internal/benchmark"
	"github.com/hdsbench/hdsbench/internal/runlog"
	"github.com/hdsbench/hdsbench/internal/sampling"
)

// ErrContractViolation marks a method or function that does not satisfy
// its capability contract. It is raised at run start, before any output
// is created.
var ErrContractViolation = errors.New("contract violation")

// Options holds the per-run settings of the control loop.
type Options struct {
	// Path is the base output location shared across runs.
	Path string

	// LogData controls whether sampled batches are written to the
	// samples stream.
	LogData bool
}

// Experiment binds a method and a stopping criterion to the run options.
// One Experiment value performs one run at a time; its criterion state is
// never shared across runs.
type Experiment struct {
	method    sampling.Method
	criterion Criterion
	opts      Options
	log       *slog.Logger
}

// New creates an experiment.
func New(method sampling.Method, criterion Criterion, opts Options, log *slog.Logger) *Experiment {
	return &Experiment{
		method:    method,
		criterion: criterion,
		opts:      opts,
		log:       log,
	}
}

// Run performs the experiment on the given function. All output lands in
// a fresh uniquely named directory under the base path; the run logger is
// released on every exit path.
func (e *Experiment) Run(function sampling.Function) error {
	if err := e.validate(function); err != nil {
		return err
	}

	logger, err := runlog.New(e.opts.Path, strings.ToLower(function.Name()), e.log)
	if err != nil {
		return err
	}
	defer logger.Close()

	if err := logger.WriteMetadata(buildMetadata(e.method, function)); err != nil {
		return err
	}
	if err := logger.WriteBenchmarks(benchmark.Collect); err != nil {
		return err
	}

	e.log.Info("experiment started",
		"method", e.method.Name(),
		"function", function.Name(),
		"criterion", e.criterion.Name(),
		"run_dir", logger.Path(),
	)

	callID := 0
	totalSize := 0
	finished := false
	for !finished {
		callID++

		start := time.Now()
		batch, err := e.method.Sample(function)
		elapsed := time.Since(start).Seconds()
		if err != nil {
			return fmt.Errorf("method %s: %w", e.method.Name(), err)
		}
		if err := batch.Validate(); err != nil {
			return err
		}

		totalSize += batch.Len()
		err = logger.AppendMethodCall(sampling.MethodCallRecord{
			CallID:    callID,
			Elapsed:   elapsed,
			TotalSize: totalSize,
			NewPoints: batch.Len(),
		})
		if err != nil {
			return err
		}

		if e.opts.LogData {
			if err := logger.AppendSamples(callID, batch); err != nil {
				return err
			}
		}

		if err := logger.AppendFunctionCalls(callID, function.Queries()); err != nil {
			return err
		}
		function.Reset()

		// The method's self-report wins; the criterion is not
		// consulted (or updated) once the method says it is done.
		finished = e.method.IsFinished() || e.criterion.Stop(batch)

		e.log.Debug("iteration complete",
			"call_id", callID,
			"new_points", batch.Len(),
			"total_size", totalSize,
			"dt", elapsed,
		)
	}

	e.log.Info("experiment finished", "iterations", callID, "total_size", totalSize)
	return nil
}

func (e *Experiment) validate(function sampling.Function) error {
	if e.method == nil {
		return fmt.Errorf("%w: no method supplied", ErrContractViolation)
	}
	if e.method.Name() == "" {
		return fmt.Errorf("%w: method has no name", ErrContractViolation)
	}
	if function == nil {
		return fmt.Errorf("%w: no function supplied", ErrContractViolation)
	}
	if function.Name() == "" {
		return fmt.Errorf("%w: function has no name", ErrContractViolation)
	}
	if e.criterion == nil {
		return fmt.Errorf("%w: no stopping criterion supplied", ErrContractViolation)
	}
	return nil
}

func buildMetadata(method sampling.Method, function sampling.Function) runlog.Metadata {
	now := time.Now()
	return runlog.Metadata{
		Meta: runlog.MetaInfo{
			Datetime:  now.Format(time.RFC3339),
			Timestamp: strconv.FormatFloat(float64(now.UnixNano())/1e9, 'f', 6, 64),
			User:      currentUser(),
		},
		Function: runlog.ComponentInfo{
			Name:       function.Name(),
			Properties: function.Properties(),
		},
		Method: runlog.ComponentInfo{
			Name:       method.Name(),
			Properties: method.StoredParameters(),
		},
	}
}

func currentUser() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return "unknown"
	}
	return u.Username
}
