package main

import (
	"fmt"
	"log/slog"
	"os"

	"htgen/internal/cli"
	"htgen/internal/cli/commands"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "htgen",
		Short:         "C test harness generator",
		Long:          `Scans a C test interface listing for suite markers and test declarations and emits a runner unit whose main calls every test in order.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Logs go to stderr so --stdout output stays clean
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := commands.NewCommands(logger, level, os.Stdout)
	cmds.Register(rootCmd, &flags)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
