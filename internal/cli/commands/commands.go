package commands

import (
	"io"
	"log/slog"

	"htgen/internal/cli"
	"htgen/internal/config"
	"htgen/internal/discovery"
	"htgen/internal/emitter"
	"htgen/internal/generator"
	"htgen/internal/storage"
	"htgen/internal/ui"

	"github.com/spf13/cobra"
)

// Dependencies are built once flags are parsed and the config is loaded
type Dependencies struct {
	Config    *config.Config
	Reader    *discovery.Reader
	Scanner   *discovery.Scanner
	Filter    *discovery.Filter
	Emitter   *emitter.Emitter
	Generator *generator.Generator
	Storage   storage.Storage
	Formatter *ui.Formatter
	Browser   ui.Viewer
	Out       io.Writer
}

// NewDependencies wires every component from cfg
func NewDependencies(cfg *config.Config, logger *slog.Logger, out io.Writer) *Dependencies {
	parser := discovery.NewParser(cfg.ReturnType)
	reader := discovery.NewReader(cfg.SuiteTrigger, cfg.DefaultSuite, parser)
	em := emitter.NewEmitter(emitter.Helpers{
		SuiteLogger:  cfg.Helpers.SuiteLogger,
		Recorder:     cfg.Helpers.Recorder,
		StatsPrinter: cfg.Helpers.StatsPrinter,
	})

	gen := generator.NewGenerator(reader, em, logger)
	gen.SetWorkers(cfg.Workers)

	return &Dependencies{
		Config:    cfg,
		Reader:    reader,
		Scanner:   discovery.NewScanner(cfg.InterfaceSuffix, cfg.PathsToIgnore),
		Filter:    discovery.NewFilter(),
		Emitter:   em,
		Generator: gen,
		Storage:   storage.NewJSONStorage(cfg),
		Formatter: ui.NewFormatter(cfg, out),
		Browser:   ui.NewBrowser(cfg, em, out),
		Out:       out,
	}
}

// Commands holds all CLI commands
type Commands struct {
	Generate *GenerateCommand
	List     *ListCommand
	Browse   *BrowseCommand
	Report   *ReportCommand

	deps   *Dependencies
	logger *slog.Logger
	level  *slog.LevelVar
	out    io.Writer
}

// NewCommands creates all commands. Their dependencies are filled in by the
// root command's pre-run once the config is known.
func NewCommands(logger *slog.Logger, level *slog.LevelVar, out io.Writer) *Commands {
	deps := &Dependencies{}
	return &Commands{
		Generate: NewGenerateCommand(deps, logger),
		List:     NewListCommand(deps),
		Browse:   NewBrowseCommand(deps),
		Report:   NewReportCommand(deps),
		deps:     deps,
		logger:   logger,
		level:    level,
		out:      out,
	}
}

// load reads the config for the parsed flags and wires the dependencies
func (c *Commands) load(flags *cli.Flags) error {
	if flags.Verbose && c.level != nil {
		c.level.Set(slog.LevelDebug)
	}
	cfg, err := config.Load(flags.ToConfigFlags())
	if err != nil {
		return err
	}
	*c.deps = *NewDependencies(cfg, c.logger, c.out)
	c.logger.Debug("config loaded",
		"project", cfg.ProjectPath,
		"skeleton", cfg.GetSkeletonPath(),
		"interface", cfg.GetInterfacePath(),
		"output", cfg.GetOutputPath(),
		"manifest", cfg.GetManifestPath())
	return nil
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return c.load(flags)
	}
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.ConfigFile, "config", "c", "", "Path to the config file (default <project>/htgen.yaml)")
	pf.StringVarP(&flags.ProjectPath, "project", "p", "", "Project directory that relative paths resolve against")
	pf.StringVarP(&flags.Skeleton, "skeleton", "s", "", "Skeleton template copied at the top of the emitted unit")
	pf.StringVarP(&flags.Interface, "interface", "i", "", "Test interface listing to scan")
	pf.StringVarP(&flags.Output, "output", "o", "", "Path of the emitted unit")
	pf.StringVarP(&flags.Manifest, "manifest", "m", "", "YAML manifest listing several targets")
	pf.BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Running htgen without a subcommand generates
	rootCmd.RunE = c.Generate.Execute
	rootCmd.Flags().BoolVar(&flags.Check, "check", false, "Fail if the output is not up to date instead of writing it")
	rootCmd.Flags().BoolVar(&flags.Stdout, "stdout", false, "Write the emitted unit to stdout instead of the output path")
	rootCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of manifest targets to generate at once (default: number of CPUs)")

	// Generate command
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the test runner unit",
		Long:  "Scan the test interface listing and write the skeleton followed by a main that runs every declared test",
		Args:  cobra.NoArgs,
		RunE:  c.Generate.Execute,
	}
	generateCmd.Flags().BoolVar(&flags.Check, "check", false, "Fail if the output is not up to date instead of writing it")
	generateCmd.Flags().BoolVar(&flags.Stdout, "stdout", false, "Write the emitted unit to stdout instead of the output path")
	generateCmd.Flags().IntVarP(&flags.Workers, "workers", "w", 0, "Number of manifest targets to generate at once (default: number of CPUs)")
	rootCmd.AddCommand(generateCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [listing or directory...]",
		Short: "List discovered suites and tests",
		Long:  "Scan test interface listings and show their suites and tests without generating anything",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. 'properly_*' or '*insert*')")
	listCmd.Flags().BoolVar(&flags.Table, "table", false, "Show one table row per test")
	rootCmd.AddCommand(listCmd)

	// Browse command
	browseCmd := &cobra.Command{
		Use:   "browse [listing or directory...]",
		Short: "Browse suites and tests interactively",
		Long:  "Display listings as a suite/test tree with the statement generated for each entry",
		RunE:  c.Browse.Execute,
	}
	browseCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. 'properly_*' or '*insert*')")
	rootCmd.AddCommand(browseCmd)

	// Report command
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Show the last generation report",
		Long:  "Display what the last generate run produced, read from the report file",
		Args:  cobra.NoArgs,
		RunE:  c.Report.Execute,
	}
	rootCmd.AddCommand(reportCmd)
}
