package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hdsbench/hdsbench/internal/benchmark"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark this machine",
	Long: `Run the machine-capability benchmarks (matrix inversion, SHA-256
hashing) and print the snapshot. With --out the snapshot is written to
<dir>/benchmarks.yaml, replacing an existing file.`,
	Example: `  hdsbench bench
  hdsbench bench --out ./results`,
	Args: cobra.NoArgs,
	RunE: runBench,
}

var benchOut string

func init() {
	benchCmd.Flags().StringVar(&benchOut, "out", "", "directory to write benchmarks.yaml into")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	snapshot, err := benchmark.Collect()
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}

	data, err := yaml.Marshal(snapshot)
	if err != nil {
		return err
	}

	if benchOut == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.MkdirAll(benchOut, 0o755); err != nil {
		return err
	}
	path := filepath.Join(benchOut, "benchmarks.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("benchmark snapshot written to %s\n", path)
	return nil
}
