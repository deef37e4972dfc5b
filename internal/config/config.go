package config

// Config is the full harness configuration.
type Config struct {
	Experiment ExperimentConfig `yaml:"experiment"`
	Stopping   StoppingConfig   `yaml:"stopping"`
	Method     MethodConfig     `yaml:"method"`
	Function   FunctionConfig   `yaml:"function"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// ExperimentConfig selects the experiment kind and output behaviour.
type ExperimentConfig struct {
	// Kind of run: optimisation or posterior_sampling
	Kind string `yaml:"kind"`

	// Path is the base output location; each run gets its own subfolder
	// and the benchmark snapshot is shared at this level.
	Path string `yaml:"path"`

	// LogData controls whether sampled points are written to samples.csv.
	LogData bool `yaml:"log_data"`
}

// StoppingConfig parameterizes the stopping criterion.
type StoppingConfig struct {
	// Epsilon is the required improvement of the per-iteration minimum.
	Epsilon float64 `yaml:"epsilon"`

	// AbsoluteImprovement interprets epsilon as an absolute difference
	// when true, as a ratio when false.
	AbsoluteImprovement bool `yaml:"absolute_improvement"`

	// Patience is the number of samples tolerated without a qualifying
	// improvement.
	Patience int `yaml:"patience"`

	// FinishLine is the hard cap on total sampled points; null disables it.
	FinishLine *int `yaml:"finish_line"`
}

// MethodConfig selects and parameterizes the sampling method.
type MethodConfig struct {
	// Name: random or gaussian_walk
	Name string `yaml:"name"`

	BatchSize int    `yaml:"batch_size"`
	Seed      uint64 `yaml:"seed"`

	// StepSize is the gaussian_walk proposal scale relative to the
	// function's ranges.
	StepSize float64 `yaml:"step_size"`
}

// FunctionConfig selects and parameterizes the objective function.
type FunctionConfig struct {
	// Name: sphere or rastrigin
	Name string `yaml:"name"`

	Dimensions int `yaml:"dimensions"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}
