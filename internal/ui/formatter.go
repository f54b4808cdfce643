package ui

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"htgen/internal/config"
	"htgen/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer

	cyan   *color.Color
	green  *color.Color
	yellow *color.Color
	red    *color.Color
	white  *color.Color
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		out:    out,
		cyan:   color.New(color.FgCyan),
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		white:  color.New(color.FgWhite),
	}
}

// relPath returns path relative to the project for cleaner display
func (f *Formatter) relPath(path string) string {
	rel, err := filepath.Rel(f.config.ProjectPath, path)
	if err != nil {
		return path
	}
	return rel
}

// PrintListings prints every listing as a tree of suites and tests
func (f *Formatter) PrintListings(listings []*domain.Listing) {
	total := 0
	for _, l := range listings {
		total += len(l.Entries())
	}
	f.green.Fprintf(f.out, "Found %d test(s) in %d listing(s):\n\n", total, len(listings))

	for i, listing := range listings {
		f.printListingTree(listing, i == len(listings)-1)
		// Add spacing between listings (except for the last one)
		if i < len(listings)-1 {
			fmt.Fprintln(f.out)
		}
	}
}

func (f *Formatter) printListingTree(listing *domain.Listing, isLastListing bool) {
	connector, indent := "├── ", "│   "
	if isLastListing {
		connector, indent = "└── ", "    "
	}
	f.cyan.Fprintf(f.out, "%s%s\n", connector, f.relPath(listing.Path))

	groups := listing.Groups()
	if len(groups) == 0 {
		fmt.Fprintf(f.out, "%s└── %s\n", indent, f.red.Sprint("(no tests found)"))
		return
	}

	for i, group := range groups {
		isLastGroup := i == len(groups)-1
		groupConnector, groupIndent := "├── ", "│   "
		if isLastGroup {
			groupConnector, groupIndent = "└── ", "    "
		}
		fmt.Fprintf(f.out, "%s%s%s %s\n", indent, groupConnector,
			f.yellow.Sprint(group.Name), f.white.Sprintf("(%d)", len(group.Tests)))

		for j, test := range group.Tests {
			testConnector := "├── "
			if j == len(group.Tests)-1 {
				testConnector = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s%s\n", indent, groupIndent, testConnector, test)
		}
	}
}

// PrintListingsTable prints one row per test declaration
func (f *Formatter) PrintListingsTable(listings []*domain.Listing) {
	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.AppendHeader(table.Row{"#", "Listing", "Line", "Suite", "Test"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", Align: text.AlignRight},
		{Name: "Listing", AutoMerge: true},
		{Name: "Line", Align: text.AlignRight},
		{Name: "Suite", AutoMerge: true},
	})

	n := 0
	suites := 0
	for _, listing := range listings {
		rel := f.relPath(listing.Path)
		for _, ev := range listing.Events {
			if ev.Kind != domain.EventTest {
				continue
			}
			n++
			t.AppendRow(table.Row{n, rel, ev.Line, ev.Suite, ev.Name})
		}
		suites += listing.SuiteStarts()
		t.AppendSeparator()
	}

	t.AppendFooter(table.Row{"", fmt.Sprintf("%d listing(s)", len(listings)), "", fmt.Sprintf("%d marker(s)", suites), fmt.Sprintf("%d test(s)", n)})
	t.SetStyle(table.StyleLight)
	t.Render()
}

// PrintGenerationSummary prints one line per generated target
func (f *Formatter) PrintGenerationSummary(results []*domain.GenerationResult, duration time.Duration, check bool) {
	for _, r := range results {
		tests := len(r.Listing.Entries())
		suites := r.Listing.SuiteStarts()
		out := f.relPath(r.Target.Output)
		switch {
		case check:
			f.green.Fprintf(f.out, "✓ %s is up to date (%d tests, %d suites)\n", out, tests, suites)
		case r.Changed:
			f.green.Fprintf(f.out, "✓ Generated %s (%d tests, %d suites)\n", out, tests, suites)
		default:
			f.yellow.Fprintf(f.out, "= %s unchanged (%d tests, %d suites)\n", out, tests, suites)
		}
	}
	f.white.Fprintf(f.out, "  Generation time: %s\n", duration.Round(time.Millisecond))
}

// PrintReport displays the stored generation report
func (f *Formatter) PrintReport(report *domain.GenerationReport) {
	meta := report.Meta

	// Print header
	fmt.Fprintln(f.out)
	f.cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	f.cyan.Fprintln(f.out, "║                   Harness Generation Report                   ║")
	f.cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintln(f.out)

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	f.printRow("Run", meta.RunID, f.white)
	f.printRow("Targets", meta.Targets, f.white)
	f.printRow("Total Tests", meta.TotalTests, f.green)
	f.printRow("Changed Outputs", meta.ChangedOutputs, f.yellow)
	f.printRow("Duration", fmt.Sprintf("%.3fs", meta.DurationSeconds), f.white)
	fmt.Fprintf(f.out, "│ %-31s │ ", "Timestamp")
	f.white.Fprintf(f.out, "%-27s │\n", meta.Timestamp)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")
	fmt.Fprintln(f.out)

	t := table.NewWriter()
	t.SetOutputMirror(f.out)
	t.AppendHeader(table.Row{"Target", "Output", "Tests", "Suites", "Bytes", "SHA256", "Changed"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Tests", Align: text.AlignRight},
		{Name: "Suites", Align: text.AlignRight},
		{Name: "Bytes", Align: text.AlignRight},
	})
	for _, tr := range report.Targets {
		sum := tr.SHA256
		if len(sum) > 12 {
			sum = sum[:12]
		}
		changed := "no"
		if tr.Changed {
			changed = "yes"
		}
		t.AppendRow(table.Row{tr.Name, f.relPath(tr.Output), tr.Tests, len(tr.Suites), tr.Bytes, sum, changed})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}

func (f *Formatter) printRow(label string, value interface{}, c *color.Color) {
	fmt.Fprintf(f.out, "│ %-31s │ ", label)
	c.Fprintf(f.out, "%-27v │\n", value)
	fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
}
