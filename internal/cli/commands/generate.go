package commands

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"htgen/internal/domain"
	"htgen/internal/generator"
	"htgen/internal/manifest"
	"htgen/internal/ui"

	"github.com/spf13/cobra"
)

// GenerateCommand handles the generate command
type GenerateCommand struct {
	deps   *Dependencies
	logger *slog.Logger
}

// NewGenerateCommand creates a new GenerateCommand
func NewGenerateCommand(deps *Dependencies, logger *slog.Logger) *GenerateCommand {
	return &GenerateCommand{
		deps:   deps,
		logger: logger,
	}
}

// Execute runs the command
func (gc *GenerateCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := gc.deps.Config
	flags := cfg.Flags

	targets, err := gc.targets()
	if err != nil {
		return err
	}

	// Only batches get a progress bar; a single target finishes instantly
	if len(targets) > 1 && !flags.Stdout {
		gc.deps.Generator.SetProgress(ui.NewProgressBar(len(targets)))
	}

	opts := generator.Options{Check: flags.Check, DryRun: flags.Stdout}
	start := time.Now()
	results, err := gc.deps.Generator.GenerateAll(targets, opts)
	if err != nil {
		return err
	}
	duration := time.Since(start)

	if flags.Stdout {
		for _, r := range results {
			if _, err := gc.deps.Out.Write(r.Unit); err != nil {
				return fmt.Errorf("failed to write unit to stdout: %w", err)
			}
		}
		return nil
	}

	gc.deps.Formatter.PrintGenerationSummary(results, duration, flags.Check)
	if flags.Check {
		return nil
	}

	report := generator.BuildReport(results, duration)
	if err := gc.deps.Storage.Save(report); err != nil {
		return fmt.Errorf("failed to save generation report: %w", err)
	}
	gc.logger.Debug("saved generation report", "path", cfg.GetReportPath(), "run_id", report.Meta.RunID)
	return nil
}

// targets returns the manifest targets, or the single configured target
func (gc *GenerateCommand) targets() ([]domain.Target, error) {
	cfg := gc.deps.Config
	if path := cfg.GetManifestPath(); path != "" {
		m, err := manifest.Load(path)
		if err != nil {
			return nil, err
		}
		return m.Targets, nil
	}

	iface := cfg.GetInterfacePath()
	return []domain.Target{{
		Name:      strings.TrimSuffix(filepath.Base(iface), filepath.Ext(iface)),
		Skeleton:  cfg.GetSkeletonPath(),
		Interface: iface,
		Output:    cfg.GetOutputPath(),
	}}, nil
}
