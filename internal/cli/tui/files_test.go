package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestReadRunDir(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "experiment.yaml"), `
meta:
  datetime: 2026-01-02T15:04:05Z
  timestamp: "1767366245.000000"
  user: tester
function:
  name: sphere
  properties:
    dimensions: 3
method:
  name: random
  properties:
    seed: 42
`)
	writeFile(t, filepath.Join(dir, "methodcalls.csv"), `method_call_id,dt,total_dataset_size,new_data_generated
1,0.5,10,10
2,0.25,20,10
3,0.125,30,10
`)

	run, err := readRunDir(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if run.MethodName != "random" || run.FunctionName != "sphere" {
		t.Errorf("unexpected names: %s / %s", run.MethodName, run.FunctionName)
	}
	if run.User != "tester" {
		t.Errorf("unexpected user: %s", run.User)
	}
	if run.Iterations() != 3 {
		t.Fatalf("expected 3 iterations, got %d", run.Iterations())
	}
	if run.TotalSize() != 30 {
		t.Errorf("expected total size 30, got %d", run.TotalSize())
	}
	if run.Calls[1].Elapsed != 0.25 {
		t.Errorf("expected dt 0.25, got %g", run.Calls[1].Elapsed)
	}
}

func TestReadRunDir_MissingMetadata(t *testing.T) {
	if _, err := readRunDir(t.TempDir()); err == nil {
		t.Error("expected error for missing experiment.yaml")
	}
}

func TestReadMethodCalls_EmptyBeyondHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "methodcalls.csv")
	writeFile(t, path, "method_call_id,dt,total_dataset_size,new_data_generated\n")

	calls, err := readMethodCalls(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("expected no calls, got %d", len(calls))
	}
}
