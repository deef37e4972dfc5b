package tui

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/yaml.v3"
)

// Messages for tea.Cmd
type runMsg struct {
	data *RunData
	err  error
}

type tickMsg time.Time

// metadataFile mirrors the parts of experiment.yaml the dashboard shows.
type metadataFile struct {
	Meta struct {
		Datetime string `yaml:"datetime"`
		User     string `yaml:"user"`
	} `yaml:"meta"`
	Function struct {
		Name string `yaml:"name"`
	} `yaml:"function"`
	Method struct {
		Name string `yaml:"name"`
	} `yaml:"method"`
}

// loadRun reads the run directory as tea.Cmd
func loadRun(cfg Config) tea.Cmd {
	return func() tea.Msg {
		data, err := readRunDir(cfg.RunDir)
		if err != nil {
			return runMsg{err: err}
		}
		return runMsg{data: data}
	}
}

func readRunDir(dir string) (*RunData, error) {
	run := &RunData{}

	metaRaw, err := os.ReadFile(filepath.Join(dir, "experiment.yaml"))
	if err != nil {
		return nil, fmt.Errorf("read run metadata: %w", err)
	}
	var meta metadataFile
	if err := yaml.Unmarshal(metaRaw, &meta); err != nil {
		return nil, fmt.Errorf("parse run metadata: %w", err)
	}
	run.MethodName = meta.Method.Name
	run.FunctionName = meta.Function.Name
	run.User = meta.Meta.User
	run.StartedAt = meta.Meta.Datetime

	calls, err := readMethodCalls(filepath.Join(dir, "methodcalls.csv"))
	if err != nil {
		return nil, err
	}
	run.Calls = calls

	return run, nil
}

func readMethodCalls(path string) ([]MethodCall, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open method calls: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse method calls: %w", err)
	}

	var calls []MethodCall
	for i, row := range rows {
		// Row 0 is the header.
		if i == 0 || len(row) != 4 {
			continue
		}
		id, _ := strconv.Atoi(row[0])
		elapsed, _ := strconv.ParseFloat(row[1], 64)
		total, _ := strconv.Atoi(row[2])
		newPoints, _ := strconv.Atoi(row[3])
		calls = append(calls, MethodCall{
			ID:        id,
			Elapsed:   elapsed,
			TotalSize: total,
			NewPoints: newPoints,
		})
	}
	return calls, nil
}

// tick creates a periodic tick command
func tick(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
