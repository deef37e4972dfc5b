package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/hdsbench/hdsbench/internal/cli/tui"
)

var watchCmd = &cobra.Command{
	Use:   "watch <run-dir>",
	Short: "Watch a running experiment",
	Long: `Open a terminal dashboard that follows an experiment's run
directory, showing iteration progress from its method-calls log.`,
	Example: `  hdsbench watch ./results/sphere
  hdsbench watch --refresh 2s ./results/rastrigin1`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

var watchRefresh time.Duration

func init() {
	watchCmd.Flags().DurationVar(&watchRefresh, "refresh", time.Second, "refresh interval")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	return tui.Run(tui.Config{
		RunDir:          args[0],
		RefreshInterval: watchRefresh,
	})
}
