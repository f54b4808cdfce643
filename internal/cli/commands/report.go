package commands

import (
	"github.com/spf13/cobra"
)

// ReportCommand handles the report command
type ReportCommand struct {
	deps *Dependencies
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(deps *Dependencies) *ReportCommand {
	return &ReportCommand{deps: deps}
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := rc.deps.Storage.Load()
	if err != nil {
		return err
	}

	rc.deps.Formatter.PrintReport(report)
	return nil
}
