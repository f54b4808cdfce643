package commands

import (
	"github.com/spf13/cobra"
)

// BrowseCommand handles the browse command
type BrowseCommand struct {
	deps *Dependencies
}

// NewBrowseCommand creates a new BrowseCommand
func NewBrowseCommand(deps *Dependencies) *BrowseCommand {
	return &BrowseCommand{deps: deps}
}

// Execute runs the command
func (bc *BrowseCommand) Execute(cmd *cobra.Command, args []string) error {
	listings, err := collectListings(bc.deps, args)
	if err != nil {
		return err
	}

	return bc.deps.Browser.View(listings)
}
