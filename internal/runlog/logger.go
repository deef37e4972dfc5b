// Package runlog provides the per-run logging subsystem: three append-only
// CSV streams plus the one-shot metadata and benchmark snapshots, all
// scoped to a uniquely named run directory.
package runlog

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hdsbench/hdsbench/internal/benchmark"
	"github.com/hdsbench/hdsbench/internal/sampling"
)

// ErrIOFailure marks errors caused by the output location: directories
// that cannot be created, streams that cannot be opened or written.
var ErrIOFailure = errors.New("io failure")

const (
	samplesFile       = "samples.csv"
	methodCallsFile   = "methodcalls.csv"
	functionCallsFile = "functioncalls.csv"
	metadataFile      = "experiment.yaml"
	benchmarksFile    = "benchmarks.yaml"
)

// Logger owns all output destinations of one run. It is the sole writer
// to them and must be closed exactly once when the run ends.
type Logger struct {
	basePath string
	path     string
	log      *slog.Logger

	samples       *stream
	methodCalls   *stream
	functionCalls *stream

	samplesHeaderPending bool
	closed               bool
}

// New creates a Logger bound to a freshly created, uniquely named run
// directory under basePath. The method-calls and function-calls headers
// are written eagerly; the samples header waits for the first batch, which
// fixes the dimensionality.
func New(basePath, preferred string, log *slog.Logger) (*Logger, error) {
	path, err := createUniqueDir(basePath, preferred)
	if err != nil {
		return nil, err
	}

	l := &Logger{
		basePath:             basePath,
		path:                 path,
		log:                  log,
		samplesHeaderPending: true,
	}

	if l.samples, err = openStream(filepath.Join(path, samplesFile)); err != nil {
		l.Close()
		return nil, err
	}
	if l.functionCalls, err = openStream(filepath.Join(path, functionCallsFile)); err != nil {
		l.Close()
		return nil, err
	}
	if err = l.functionCalls.writeRow("method_call_id", "n_queried", "dt", "asked_for_derivative"); err != nil {
		l.Close()
		return nil, err
	}
	if l.methodCalls, err = openStream(filepath.Join(path, methodCallsFile)); err != nil {
		l.Close()
		return nil, err
	}
	if err = l.methodCalls.writeRow("method_call_id", "dt", "total_dataset_size", "new_data_generated"); err != nil {
		l.Close()
		return nil, err
	}

	l.log.Info("run directory created", "path", path)
	return l, nil
}

// Path returns the run directory.
func (l *Logger) Path() string {
	return l.path
}

// Close releases all open streams. It is safe to call more than once and
// after a partially failed construction.
func (l *Logger) Close() error {
	if l.closed {
		return nil
	}
	l.closed = true

	return errors.Join(
		l.samples.close(),
		l.functionCalls.close(),
		l.methodCalls.close(),
	)
}

// AppendSamples appends one row per sampled point, tagged with the method
// call id. The header is derived from the first non-empty batch; invalid
// batches are rejected before anything is written.
func (l *Logger) AppendSamples(callID int, batch sampling.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}
	if batch.Len() == 0 {
		return nil
	}

	if l.samplesHeaderPending {
		header := []string{"method_call_id"}
		for i := range batch.X[0] {
			header = append(header, "x"+strconv.Itoa(i))
		}
		for i := range batch.Y[0] {
			header = append(header, "y"+strconv.Itoa(i))
		}
		if err := l.samples.writeRow(header...); err != nil {
			return err
		}
		l.samplesHeaderPending = false
	}

	id := strconv.Itoa(callID)
	for i := range batch.X {
		row := []string{id}
		for _, v := range batch.X[i] {
			row = append(row, formatFloat(v))
		}
		for _, v := range batch.Y[i] {
			row = append(row, formatFloat(v))
		}
		if err := l.samples.writeRow(row...); err != nil {
			return err
		}
	}
	return nil
}

// AppendMethodCall appends one method-call record.
func (l *Logger) AppendMethodCall(rec sampling.MethodCallRecord) error {
	return l.methodCalls.writeRow(
		strconv.Itoa(rec.CallID),
		formatFloat(rec.Elapsed),
		strconv.Itoa(rec.TotalSize),
		strconv.Itoa(rec.NewPoints),
	)
}

// AppendFunctionCalls appends one row per query the function recorded
// since its last reset.
func (l *Logger) AppendFunctionCalls(callID int, queries []sampling.QueryRecord) error {
	id := strconv.Itoa(callID)
	for _, q := range queries {
		err := l.functionCalls.writeRow(
			id,
			strconv.Itoa(q.NQueried),
			formatFloat(q.Elapsed),
			strconv.FormatBool(q.Derivative),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteMetadata writes the experiment snapshot into the run directory.
// It must be called before the first iteration.
func (l *Logger) WriteMetadata(meta Metadata) error {
	return writeYAML(filepath.Join(l.path, metadataFile), meta)
}

// WriteBenchmarks writes the shared benchmark snapshot into the BASE path.
// If the file already exists the benchmarks are not even run; losing a
// creation race to another run counts as success.
func (l *Logger) WriteBenchmarks(collect func() (benchmark.Snapshot, error)) error {
	path := filepath.Join(l.basePath, benchmarksFile)
	if _, err := os.Stat(path); err == nil {
		l.log.Debug("benchmark snapshot already present", "path", path)
		return nil
	}

	snapshot, err := collect()
	if err != nil {
		return fmt.Errorf("collect benchmarks: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("%w: create %s: %w", ErrIOFailure, path, err)
	}

	enc := yaml.NewEncoder(f)
	if err := enc.Encode(snapshot); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrIOFailure, path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrIOFailure, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIOFailure, path, err)
	}

	l.log.Info("benchmark snapshot written", "path", path)
	return nil
}

func writeYAML(path string, v any) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIOFailure, path, err)
	}

	enc := yaml.NewEncoder(f)
	if err := enc.Encode(v); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrIOFailure, path, err)
	}
	if err := enc.Close(); err != nil {
		f.Close()
		return fmt.Errorf("%w: write %s: %w", ErrIOFailure, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrIOFailure, path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
