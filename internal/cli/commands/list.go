package commands

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"htgen/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	deps *Dependencies
}

// NewListCommand creates a new ListCommand
func NewListCommand(deps *Dependencies) *ListCommand {
	return &ListCommand{deps: deps}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	listings, err := collectListings(lc.deps, args)
	if err != nil {
		return err
	}

	if len(listings) == 0 {
		color.New(color.FgYellow).Fprintln(lc.deps.Out, "No listings found")
		return nil
	}

	if lc.deps.Config.Flags.Table {
		lc.deps.Formatter.PrintListingsTable(listings)
		return nil
	}
	lc.deps.Formatter.PrintListings(listings)
	return nil
}

// collectListings scans every listing named by args, expanding directories.
// Without args the configured interface listing is used.
func collectListings(deps *Dependencies, args []string) ([]*domain.Listing, error) {
	cfg := deps.Config

	paths := []string{cfg.GetInterfacePath()}
	if len(args) > 0 {
		paths = paths[:0]
		for _, arg := range args {
			paths = append(paths, cfg.Resolve(arg))
		}
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, &domain.MissingInputError{Role: "interface", Path: path, Err: err}
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		found, err := deps.Scanner.Scan(path)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}

	listings := make([]*domain.Listing, 0, len(files))
	for _, file := range files {
		listing, err := deps.Reader.ReadListing(file)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", file, err)
		}
		listing.Events = deps.Filter.FilterByName(listing.Events, cfg.Flags.NameFilter)
		listings = append(listings, listing)
	}
	return listings, nil
}
