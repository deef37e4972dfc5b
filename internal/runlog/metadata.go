package runlog

// Metadata is the reproducibility snapshot written once per run, before
// the first iteration.
type Metadata struct {
	Meta     MetaInfo      `yaml:"meta"`
	Function ComponentInfo `yaml:"function"`
	Method   ComponentInfo `yaml:"method"`
}

// MetaInfo holds the run's wall-clock context.
type MetaInfo struct {
	Datetime  string `yaml:"datetime"`
	Timestamp string `yaml:"timestamp"`
	User      string `yaml:"user"`
}

// ComponentInfo describes one collaborator (method or function) by name
// and its persisted configuration.
type ComponentInfo struct {
	Name       string         `yaml:"name"`
	Properties map[string]any `yaml:"properties"`
}
