package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"htgen/internal/config"
	"htgen/internal/domain"
	"htgen/internal/emitter"
)

// Browser displays listings as an interactive suite/test tree
type Browser struct {
	config  *config.Config
	emitter *emitter.Emitter
	out     io.Writer
}

// NewBrowser creates a new Browser. Messages printed instead of opening
// the TUI go to out.
func NewBrowser(cfg *config.Config, em *emitter.Emitter, out io.Writer) *Browser {
	return &Browser{
		config:  cfg,
		emitter: em,
		out:     out,
	}
}

// suiteRef is attached to suite nodes of the tree
type suiteRef struct {
	listing string
	name    string
	line    int // 0 for the implicit default suite
	tests   int
}

// View runs the TUI until the user quits
func (b *Browser) View(listings []*domain.Listing) error {
	total := 0
	for _, l := range listings {
		total += len(l.Entries())
	}
	if total == 0 {
		color.New(color.FgYellow).Fprintln(b.out, "No tests found")
		return nil
	}

	app := tview.NewApplication()

	root := b.buildTree(listings)
	tree := tview.NewTreeView().
		SetRoot(root).
		SetCurrentNode(root)
	tree.SetBorder(true).SetTitle(" Listings ")

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	detailsView.SetBorder(true).SetTitle(" Details ")

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf(" %d tests in %d listing(s) | ↑↓ to navigate, Enter to expand/collapse, [yellow]q[white] to exit ", total, len(listings)))

	tree.SetChangedFunc(func(node *tview.TreeNode) {
		detailsView.SetText(b.formatDetails(node.GetReference()))
	})
	tree.SetSelectedFunc(func(node *tview.TreeNode) {
		if len(node.GetChildren()) > 0 {
			node.SetExpanded(!node.IsExpanded())
		}
	})
	detailsView.SetText(b.formatDetails(root.GetReference()))

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(tree, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(flex, 0, 1, true)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' || event.Rune() == 'Q' {
				app.Stop()
				return nil
			}
		}
		return event
	})

	if err := app.SetRoot(mainLayout, true).SetFocus(tree).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// buildTree builds listing -> suite -> test nodes in scan order
func (b *Browser) buildTree(listings []*domain.Listing) *tview.TreeNode {
	root := tview.NewTreeNode(b.config.ProjectPath).
		SetColor(tcell.ColorWhite).
		SetSelectable(false)

	for _, listing := range listings {
		listingNode := tview.NewTreeNode(listing.Path).
			SetColor(tcell.ColorDarkCyan).
			SetReference(listing)
		root.AddChild(listingNode)

		suites := make(map[string]*tview.TreeNode)
		suiteNode := func(name string, line int) *tview.TreeNode {
			if node, ok := suites[name]; ok {
				return node
			}
			node := tview.NewTreeNode(name).
				SetColor(tcell.ColorYellow).
				SetReference(&suiteRef{listing: listing.Path, name: name, line: line})
			suites[name] = node
			listingNode.AddChild(node)
			return node
		}

		for _, ev := range listing.Events {
			switch ev.Kind {
			case domain.EventSuiteStart:
				ref := suiteNode(ev.Suite, ev.Line).GetReference().(*suiteRef)
				// tests seen before the marker created the node without a line
				if ref.line == 0 {
					ref.line = ev.Line
				}
			case domain.EventTest:
				parent := suiteNode(ev.Suite, 0)
				parent.GetReference().(*suiteRef).tests++
				parent.AddChild(tview.NewTreeNode(ev.Name).
					SetColor(tcell.ColorWhite).
					SetReference(ev))
			}
		}
	}
	return root
}

// formatDetails describes a tree node using tview color tags
func (b *Browser) formatDetails(ref interface{}) string {
	var builder strings.Builder

	switch r := ref.(type) {
	case *domain.Listing:
		fmt.Fprintf(&builder, "[cyan]Listing:[white] %s\n\n", r.Path)
		fmt.Fprintf(&builder, "[yellow]Tests:[white] %d\n", len(r.Entries()))
		fmt.Fprintf(&builder, "[yellow]Suite markers:[white] %d\n", r.SuiteStarts())
	case *suiteRef:
		fmt.Fprintf(&builder, "[cyan]Suite:[white] %s\n", r.name)
		fmt.Fprintf(&builder, "[cyan]Listing:[white] %s\n\n", r.listing)
		if r.line > 0 {
			fmt.Fprintf(&builder, "[yellow]Marker line:[white] %d\n", r.line)
			fmt.Fprintf(&builder, "[yellow]Emits:[white]\n  %s\n", tview.Escape(b.emitter.Statement(domain.Event{Kind: domain.EventSuiteStart, Suite: r.name})))
		} else {
			fmt.Fprintf(&builder, "[gray]Default suite, no suite start is emitted[white]\n")
		}
		fmt.Fprintf(&builder, "[yellow]Tests:[white] %d\n", r.tests)
	case domain.Event:
		fmt.Fprintf(&builder, "[cyan]Test:[white] %s\n", r.Name)
		fmt.Fprintf(&builder, "[cyan]Suite:[white] %s\n", r.Suite)
		fmt.Fprintf(&builder, "[cyan]Line:[white] %d\n\n", r.Line)
		fmt.Fprintf(&builder, "[yellow]Emits:[white]\n  %s\n", tview.Escape(b.emitter.Statement(r)))
	default:
		builder.WriteString("[gray]Select a listing, suite or test[white]\n")
	}

	return builder.String()
}
