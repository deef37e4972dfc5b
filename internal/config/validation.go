package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.Experiment.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("experiment: %w", err))
	}

	if err := c.Stopping.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("stopping: %w", err))
	}

	if err := c.Method.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("method: %w", err))
	}

	if err := c.Function.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("function: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	return errors.Join(errs...)
}

func (e *ExperimentConfig) Validate() error {
	validKinds := map[string]bool{
		"optimisation":       true,
		"posterior_sampling": true,
	}
	if !validKinds[e.Kind] {
		return fmt.Errorf("invalid kind: %s (valid: optimisation, posterior_sampling)", e.Kind)
	}

	if e.Path == "" {
		return fmt.Errorf("path cannot be empty")
	}

	return nil
}

func (s *StoppingConfig) Validate() error {
	var errs []error

	if s.Epsilon < 0 {
		errs = append(errs, fmt.Errorf("epsilon must be non-negative, got %g", s.Epsilon))
	}

	if s.Patience < 0 {
		errs = append(errs, fmt.Errorf("patience must be non-negative, got %d", s.Patience))
	}

	if s.FinishLine != nil && *s.FinishLine < 1 {
		errs = append(errs, fmt.Errorf("finish_line must be at least 1, got %d", *s.FinishLine))
	}

	return errors.Join(errs...)
}

func (m *MethodConfig) Validate() error {
	validNames := map[string]bool{
		"random":        true,
		"gaussian_walk": true,
	}
	if !validNames[m.Name] {
		return fmt.Errorf("invalid method: %s (valid: random, gaussian_walk)", m.Name)
	}

	if m.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1, got %d", m.BatchSize)
	}

	if m.StepSize < 0 {
		return fmt.Errorf("step_size must be non-negative, got %g", m.StepSize)
	}

	return nil
}

func (f *FunctionConfig) Validate() error {
	validNames := map[string]bool{
		"sphere":    true,
		"rastrigin": true,
	}
	if !validNames[f.Name] {
		return fmt.Errorf("invalid function: %s (valid: sphere, rastrigin)", f.Name)
	}

	if f.Dimensions < 1 {
		return fmt.Errorf("dimensions must be at least 1, got %d", f.Dimensions)
	}

	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, text)", l.Format)
	}

	return nil
}
