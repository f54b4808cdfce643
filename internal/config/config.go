package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string `mapstructure:"-" validate:"required"`

	// Generation inputs and output
	SkeletonPath  string `mapstructure:"skeleton" validate:"required"`
	InterfacePath string `mapstructure:"interface" validate:"required"`
	OutputPath    string `mapstructure:"output" validate:"required"`
	ManifestPath  string `mapstructure:"manifest"`

	// Number of manifest targets generated at once
	Workers int `mapstructure:"workers" validate:"min=1"`

	// Listing grammar
	SuiteTrigger string `mapstructure:"suite_trigger" validate:"required"`
	DefaultSuite string `mapstructure:"default_suite" validate:"required"`
	ReturnType   string `mapstructure:"return_type" validate:"required,cident"`

	// Skeleton routines called by the emitted entry point
	Helpers Helpers `mapstructure:"helpers"`

	// Listing discovery
	InterfaceSuffix string   `mapstructure:"interface_suffix" validate:"required"`
	PathsToIgnore   []string `mapstructure:"paths_to_ignore"`

	// Report settings
	ReportDir  string `mapstructure:"report_dir" validate:"required"`
	ReportFile string `mapstructure:"report_file" validate:"required"`

	// Command flags
	Flags Flags `mapstructure:"-"`
}

// Helpers names the routines the skeleton must define
type Helpers struct {
	SuiteLogger  string `mapstructure:"suite_logger" validate:"required,cident"`
	Recorder     string `mapstructure:"recorder" validate:"required,cident"`
	StatsPrinter string `mapstructure:"stats_printer" validate:"required,cident"`
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile  string
	ProjectPath string
	Skeleton    string
	Interface   string
	Output      string
	Manifest    string
	Workers     int
	NameFilter  string
	Check       bool
	Stdout      bool
	Table       bool
	Verbose     bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:     DefaultProjectPath,
		SkeletonPath:    DefaultSkeletonPath,
		InterfacePath:   DefaultInterfacePath,
		OutputPath:      DefaultOutputPath,
		Workers:         runtime.NumCPU(),
		SuiteTrigger:    DefaultSuiteTrigger,
		DefaultSuite:    DefaultSuite,
		ReturnType:      DefaultReturnType,
		InterfaceSuffix: DefaultInterfaceSuffix,
		ReportDir:       DefaultReportDir,
		ReportFile:      DefaultReportFile,
		Helpers: Helpers{
			SuiteLogger:  DefaultSuiteLogger,
			Recorder:     DefaultRecorder,
			StatsPrinter: DefaultStatsPrinter,
		},
	}
	// Copy default paths to ignore
	cfg.PathsToIgnore = make([]string, len(DefaultPathsToIgnore))
	copy(cfg.PathsToIgnore, DefaultPathsToIgnore)
	return cfg
}

// Load builds the config from the project .env file, the optional config
// file, HTGEN_* environment variables and finally the flags.
func Load(flags Flags) (*Config, error) {
	project := flags.ProjectPath
	if project == "" {
		project = os.Getenv(EnvPrefix + "_PROJECT")
	}
	if project == "" {
		project = DefaultProjectPath
	}

	// .env file might not exist, that's okay - use environment variables
	_ = godotenv.Load(filepath.Join(project, ".env"))

	vip := viper.New()
	if flags.ConfigFile != "" {
		vip.SetConfigFile(flags.ConfigFile)
	} else {
		vip.SetConfigName(DefaultConfigName)
		vip.AddConfigPath(project)
	}
	vip.SetConfigType("yaml")
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()
	setDefaults(vip)

	if err := vip.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := New()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.ProjectPath = project
	cfg.ApplyFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("skeleton", DefaultSkeletonPath)
	vip.SetDefault("interface", DefaultInterfacePath)
	vip.SetDefault("output", DefaultOutputPath)
	vip.SetDefault("manifest", "")
	vip.SetDefault("workers", runtime.NumCPU())
	vip.SetDefault("suite_trigger", DefaultSuiteTrigger)
	vip.SetDefault("default_suite", DefaultSuite)
	vip.SetDefault("return_type", DefaultReturnType)
	vip.SetDefault("helpers.suite_logger", DefaultSuiteLogger)
	vip.SetDefault("helpers.recorder", DefaultRecorder)
	vip.SetDefault("helpers.stats_printer", DefaultStatsPrinter)
	vip.SetDefault("interface_suffix", DefaultInterfaceSuffix)
	vip.SetDefault("paths_to_ignore", DefaultPathsToIgnore)
	vip.SetDefault("report_dir", DefaultReportDir)
	vip.SetDefault("report_file", DefaultReportFile)
}

// ApplyFlags overrides config values with the flags that were set
func (c *Config) ApplyFlags(flags Flags) {
	c.Flags = flags
	if flags.Skeleton != "" {
		c.SkeletonPath = flags.Skeleton
	}
	if flags.Interface != "" {
		c.InterfacePath = flags.Interface
	}
	if flags.Output != "" {
		c.OutputPath = flags.Output
	}
	if flags.Manifest != "" {
		c.ManifestPath = flags.Manifest
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
}

// Validate checks the config against its validation tags
func (c *Config) Validate() error {
	validate := validator.New()
	if err := RegisterCustomValidators(validate); err != nil {
		return fmt.Errorf("failed to register custom validators: %w", err)
	}
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Resolve makes a path relative to the project path unless it is absolute
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectPath, path)
}

// GetSkeletonPath returns the skeleton template path
func (c *Config) GetSkeletonPath() string {
	return c.Resolve(c.SkeletonPath)
}

// GetInterfacePath returns the test interface listing path
func (c *Config) GetInterfacePath() string {
	return c.Resolve(c.InterfacePath)
}

// GetOutputPath returns the path of the emitted unit
func (c *Config) GetOutputPath() string {
	return c.Resolve(c.OutputPath)
}

// GetManifestPath returns the manifest path, or "" when no manifest is configured
func (c *Config) GetManifestPath() string {
	return c.Resolve(c.ManifestPath)
}

// GetReportPath returns the full path to the generation report.
// Resolves to an absolute path so generate and report always agree regardless of cwd.
func (c *Config) GetReportPath() string {
	p := filepath.Join(c.ProjectPath, c.ReportDir, c.ReportFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
