package config

func Default() *Config {
	finishLine := 1000

	return &Config{
		Experiment: ExperimentConfig{
			Kind:    "optimisation",
			Path:    "./results",
			LogData: true,
		},
		Stopping: StoppingConfig{
			Epsilon:             0.01,
			AbsoluteImprovement: true,
			Patience:            100,
			FinishLine:          &finishLine,
		},
		Method: MethodConfig{
			Name:      "random",
			BatchSize: 10,
			Seed:      0,
			StepSize:  0.1,
		},
		Function: FunctionConfig{
			Name:       "sphere",
			Dimensions: 3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
