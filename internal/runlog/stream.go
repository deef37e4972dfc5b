package runlog

import (
	"fmt"
	"os"
	"strings"
)

// stream is an append-only CSV file. Rows are written unbuffered and
// synced so a crash loses at most the in-flight row.
type stream struct {
	f *os.File
}

func openStream(path string) (*stream, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIOFailure, path, err)
	}
	return &stream{f: f}, nil
}

func (s *stream) writeRow(fields ...string) error {
	if _, err := s.f.WriteString(strings.Join(fields, ",") + "\n"); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIOFailure, s.f.Name(), err)
	}
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("%w: sync %s: %w", ErrIOFailure, s.f.Name(), err)
	}
	return nil
}

func (s *stream) close() error {
	if s == nil || s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	return err
}
