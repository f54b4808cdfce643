package discovery

import (
	"errors"
	"os"
	"strings"

	"htgen/internal/domain"
)

// Reader turns a test interface listing into an ordered event stream
type Reader struct {
	trigger      string
	defaultSuite string
	parser       *Parser
}

// NewReader creates a Reader that starts in defaultSuite and switches suite
// on every line containing trigger.
func NewReader(trigger, defaultSuite string, parser *Parser) *Reader {
	return &Reader{
		trigger:      trigger,
		defaultSuite: defaultSuite,
		parser:       parser,
	}
}

// scanState is the accumulator threaded through Scan
type scanState struct {
	suite  string
	events []domain.Event
}

// Scan folds the lines into suite-start and test events, in line order.
// A line containing the trigger without "=" and a name aborts the scan.
func (r *Reader) Scan(lines []string) ([]domain.Event, error) {
	state := scanState{suite: r.defaultSuite}
	for i, line := range lines {
		var err error
		state, err = r.step(state, i+1, line)
		if err != nil {
			return nil, err
		}
	}
	return state.events, nil
}

func (r *Reader) step(state scanState, lineNo int, line string) (scanState, error) {
	if strings.Contains(line, r.trigger) {
		suite, err := suiteName(line)
		if err != nil {
			return state, &domain.MalformedSuiteMarkerError{Line: lineNo, Text: strings.TrimSpace(line)}
		}
		state.suite = suite
		state.events = append(state.events, domain.Event{
			Kind:  domain.EventSuiteStart,
			Suite: suite,
			Line:  lineNo,
		})
		return state, nil
	}

	name, ok := r.parser.ParseDeclaration(line)
	if !ok {
		// blank lines, comments and unrelated declarations
		return state, nil
	}
	state.events = append(state.events, domain.Event{
		Kind:  domain.EventTest,
		Name:  name,
		Suite: state.suite,
		Line:  lineNo,
	})
	return state, nil
}

var errNoSuiteName = errors.New("suite marker has no name")

// suiteName extracts the trimmed text after the first "="
func suiteName(line string) (string, error) {
	_, after, found := strings.Cut(line, "=")
	if !found {
		return "", errNoSuiteName
	}
	name := strings.TrimSpace(after)
	if name == "" {
		return "", errNoSuiteName
	}
	return name, nil
}

// ReadListing reads and scans the listing at path
func (r *Reader) ReadListing(path string) (*domain.Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.MissingInputError{Role: "interface", Path: path, Err: err}
	}

	events, err := r.Scan(SplitLines(string(data)))
	if err != nil {
		var malformed *domain.MalformedSuiteMarkerError
		if errors.As(err, &malformed) {
			malformed.Path = path
		}
		return nil, err
	}

	return &domain.Listing{Path: path, Events: events}, nil
}

// SplitLines splits content into lines without their terminators
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
