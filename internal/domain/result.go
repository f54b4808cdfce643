package domain

// Target names the three files one generation works on
type Target struct {
	Name      string `yaml:"name" json:"name"`
	Skeleton  string `yaml:"skeleton" json:"skeleton" validate:"required"`
	Interface string `yaml:"interface" json:"interface" validate:"required"`
	Output    string `yaml:"output" json:"output" validate:"required"`
}

// GenerationResult is the outcome of generating one target
type GenerationResult struct {
	Target  Target
	Listing *Listing
	Unit    []byte // Complete emitted source
	Changed bool   // Whether the unit differs from what was at the output path
	Written bool   // Whether the unit was written to the output path
}

// TargetReport is the persisted summary of one generated target
type TargetReport struct {
	Name        string   `json:"name"`
	Skeleton    string   `json:"skeleton"`
	Interface   string   `json:"interface"`
	Output      string   `json:"output"`
	Tests       int      `json:"tests"`
	SuiteStarts int      `json:"suite_starts"`
	Suites      []string `json:"suites"`
	Bytes       int      `json:"bytes"`
	SHA256      string   `json:"sha256"`
	Changed     bool     `json:"changed"`
}

// GenerationReportMeta contains metadata about a generate run
type GenerationReportMeta struct {
	RunID           string  `json:"run_id"`
	Targets         int     `json:"targets"`
	TotalTests      int     `json:"total_tests"`
	ChangedOutputs  int     `json:"changed_outputs"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// GenerationReport is the complete output structure of the report file
type GenerationReport struct {
	Meta    GenerationReportMeta `json:"meta"`
	Targets []TargetReport       `json:"targets"`
}
