package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	if cfg.Experiment.Kind != "optimisation" {
		t.Errorf("expected default kind optimisation, got %s", cfg.Experiment.Kind)
	}
	if cfg.Stopping.FinishLine == nil || *cfg.Stopping.FinishLine != 1000 {
		t.Errorf("expected default finish line 1000, got %v", cfg.Stopping.FinishLine)
	}
}

func TestLoad(t *testing.T) {
	content := `
experiment:
  kind: posterior_sampling
  path: /tmp/results
  log_data: false
stopping:
  finish_line: 500
method:
  name: gaussian_walk
  batch_size: 25
  step_size: 0.3
function:
  name: rastrigin
  dimensions: 7
logging:
  level: debug
  format: json
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.Experiment.Kind != "posterior_sampling" {
		t.Errorf("expected posterior_sampling, got %s", cfg.Experiment.Kind)
	}
	if cfg.Experiment.LogData {
		t.Error("expected log_data false")
	}
	if cfg.Stopping.FinishLine == nil || *cfg.Stopping.FinishLine != 500 {
		t.Errorf("expected finish line 500, got %v", cfg.Stopping.FinishLine)
	}
	if cfg.Method.Name != "gaussian_walk" || cfg.Method.BatchSize != 25 {
		t.Errorf("unexpected method config: %+v", cfg.Method)
	}
	if cfg.Function.Dimensions != 7 {
		t.Errorf("expected 7 dimensions, got %d", cfg.Function.Dimensions)
	}
	// Defaults fill unspecified values.
	if cfg.Stopping.Patience != 100 {
		t.Errorf("expected default patience 100, got %d", cfg.Stopping.Patience)
	}
}

func TestLoad_NullFinishLine(t *testing.T) {
	content := `
stopping:
  finish_line: null
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Stopping.FinishLine != nil {
		t.Errorf("expected nil finish line, got %v", *cfg.Stopping.FinishLine)
	}
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("HDSBENCH_TEST_PATH", "/data/results")

	content := `
experiment:
  path: ${HDSBENCH_TEST_PATH}
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Experiment.Path != "/data/results" {
		t.Errorf("expected env-substituted path, got %s", cfg.Experiment.Path)
	}
}

func TestLoad_InvalidConfig(t *testing.T) {
	content := `
experiment:
  kind: simulated_annealing
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected validation error for unknown kind")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg := LoadOrDefault("")
	if cfg.Experiment.Kind != "optimisation" {
		t.Error("expected defaults for empty path")
	}

	cfg = LoadOrDefault("/nonexistent/config.yaml")
	if cfg.Experiment.Kind != "optimisation" {
		t.Error("expected defaults for missing file")
	}
}

func TestValidation(t *testing.T) {
	cfg := Default()
	cfg.Method.BatchSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero batch size")
	}

	cfg = Default()
	cfg.Function.Dimensions = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero dimensions")
	}

	cfg = Default()
	zero := 0
	cfg.Stopping.FinishLine = &zero
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero finish line")
	}

	cfg = Default()
	cfg.Logging.Level = "trace"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown log level")
	}

	cfg = Default()
	cfg.Experiment.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty path")
	}
}
