package domain

// EventKind distinguishes the two statements a listing can produce
type EventKind int

const (
	// EventSuiteStart is produced by every suite marker line
	EventSuiteStart EventKind = iota
	// EventTest is produced by every matching test declaration
	EventTest
)

// String returns a short name for the kind
func (k EventKind) String() string {
	switch k {
	case EventSuiteStart:
		return "suite"
	case EventTest:
		return "test"
	default:
		return "unknown"
	}
}

// Event is one recognized line of a test interface listing, in scan order.
// For EventSuiteStart, Name is empty and Suite holds the new suite name.
type Event struct {
	Kind  EventKind
	Name  string // Test function identifier
	Suite string // Suite active when the line was scanned
	Line  int    // 1-based line number in the listing
}

// TestEntry represents a single test paired with the suite it belongs to
type TestEntry struct {
	Name  string
	Suite string
}

// Listing is the scanned form of one test interface file
type Listing struct {
	Path   string
	Events []Event
}

// Entries returns the test entries of the listing in declaration order
func (l *Listing) Entries() []TestEntry {
	var entries []TestEntry
	for _, ev := range l.Events {
		if ev.Kind == EventTest {
			entries = append(entries, TestEntry{Name: ev.Name, Suite: ev.Suite})
		}
	}
	return entries
}

// SuiteStarts returns the number of suite markers seen
func (l *Listing) SuiteStarts() int {
	n := 0
	for _, ev := range l.Events {
		if ev.Kind == EventSuiteStart {
			n++
		}
	}
	return n
}

// Suites returns the distinct suite names that own at least one test or
// were explicitly started, in order of first appearance.
func (l *Listing) Suites() []string {
	seen := make(map[string]bool)
	var suites []string
	for _, ev := range l.Events {
		if seen[ev.Suite] {
			continue
		}
		seen[ev.Suite] = true
		suites = append(suites, ev.Suite)
	}
	return suites
}

// SuiteGroup is a suite together with the tests declared under it
type SuiteGroup struct {
	Name  string
	Tests []string
}

// Groups groups tests by suite, keeping suites in first-appearance order.
// A suite that is started more than once is reported once.
func (l *Listing) Groups() []SuiteGroup {
	index := make(map[string]int)
	var groups []SuiteGroup
	for _, ev := range l.Events {
		i, ok := index[ev.Suite]
		if !ok {
			i = len(groups)
			index[ev.Suite] = i
			groups = append(groups, SuiteGroup{Name: ev.Suite})
		}
		if ev.Kind == EventTest {
			groups[i].Tests = append(groups[i].Tests, ev.Name)
		}
	}
	return groups
}
