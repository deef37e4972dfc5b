package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hdsbench/hdsbench/internal/config"
	"github.com/hdsbench/hdsbench/internal/experiment"
	"github.com/hdsbench/hdsbench/internal/function"
	"github.com/hdsbench/hdsbench/internal/logger"
	"github.com/hdsbench/hdsbench/internal/method"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run an experiment",
	Long: `Run one experiment: the configured method samples the configured
function until the method reports completion or the stopping criterion
fires. All logs land in a fresh subfolder of the base path.`,
	Example: `  hdsbench run
  hdsbench run -c experiment.yaml
  hdsbench run --function rastrigin --dimensions 5 --finish-line 5000`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

var (
	runPath       string
	runKind       string
	runMethod     string
	runFunction   string
	runDimensions int
	runBatchSize  int
	runSeed       uint64
	runEpsilon    float64
	runPatience   int
	runFinishLine int
	runLogData    bool
)

func init() {
	runCmd.Flags().StringVar(&runPath, "path", "", "base output path")
	runCmd.Flags().StringVar(&runKind, "kind", "", "experiment kind (optimisation, posterior_sampling)")
	runCmd.Flags().StringVar(&runMethod, "method", "", "sampling method (random, gaussian_walk)")
	runCmd.Flags().StringVar(&runFunction, "function", "", "objective function (sphere, rastrigin)")
	runCmd.Flags().IntVar(&runDimensions, "dimensions", 0, "function input dimensionality")
	runCmd.Flags().IntVar(&runBatchSize, "batch-size", 0, "points sampled per method call")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "method RNG seed")
	runCmd.Flags().Float64Var(&runEpsilon, "epsilon", 0, "required improvement threshold")
	runCmd.Flags().IntVar(&runPatience, "patience", 0, "samples tolerated without improvement")
	runCmd.Flags().IntVar(&runFinishLine, "finish-line", 0, "hard cap on sampled points (0 disables)")
	runCmd.Flags().BoolVar(&runLogData, "log-data", true, "log sampled points to samples.csv")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg := config.LoadOrDefault(cfgFile)
	applyRunFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}

	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	log := logger.New(level, cfg.Logging.Format)

	fn, err := function.New(function.Type(cfg.Function.Name), cfg.Function.Dimensions)
	if err != nil {
		return err
	}

	m, err := method.New(method.Type(cfg.Method.Name), method.Config{
		BatchSize: cfg.Method.BatchSize,
		Seed:      cfg.Method.Seed,
		StepSize:  cfg.Method.StepSize,
	})
	if err != nil {
		return err
	}

	criterion, err := experiment.NewCriterion(criterionKind(cfg.Experiment.Kind), experiment.CriterionParams{
		Epsilon:             cfg.Stopping.Epsilon,
		AbsoluteImprovement: cfg.Stopping.AbsoluteImprovement,
		Patience:            cfg.Stopping.Patience,
		FinishLine:          cfg.Stopping.FinishLine,
	})
	if err != nil {
		return err
	}

	exp := experiment.New(m, criterion, experiment.Options{
		Path:    cfg.Experiment.Path,
		LogData: cfg.Experiment.LogData,
	}, log)

	if err := exp.Run(fn); err != nil {
		return fmt.Errorf("run failed: %w", err)
	}
	return nil
}

func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("path") {
		cfg.Experiment.Path = runPath
	}
	if flags.Changed("kind") {
		cfg.Experiment.Kind = runKind
	}
	if flags.Changed("log-data") {
		cfg.Experiment.LogData = runLogData
	}
	if flags.Changed("method") {
		cfg.Method.Name = runMethod
	}
	if flags.Changed("function") {
		cfg.Function.Name = runFunction
	}
	if flags.Changed("dimensions") {
		cfg.Function.Dimensions = runDimensions
	}
	if flags.Changed("batch-size") {
		cfg.Method.BatchSize = runBatchSize
	}
	if flags.Changed("seed") {
		cfg.Method.Seed = runSeed
	}
	if flags.Changed("epsilon") {
		cfg.Stopping.Epsilon = runEpsilon
	}
	if flags.Changed("patience") {
		cfg.Stopping.Patience = runPatience
	}
	if flags.Changed("finish-line") {
		if runFinishLine <= 0 {
			cfg.Stopping.FinishLine = nil
		} else {
			cfg.Stopping.FinishLine = &runFinishLine
		}
	}
}

func criterionKind(kind string) experiment.CriterionType {
	if kind == "posterior_sampling" {
		return experiment.CriterionTypePosteriorSampling
	}
	return experiment.CriterionTypeOptimisation
}
