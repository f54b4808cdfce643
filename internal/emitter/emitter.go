// Package emitter renders a scanned listing into a C test-runner unit.
//
// The unit is the skeleton verbatim followed by a generated main that calls
// the three routines the skeleton defines: the suite logger, the per-test
// recorder and the cumulative stats printer.
package emitter

import (
	"bytes"
	"fmt"
	"strings"

	"htgen/internal/domain"
)

const (
	entryPoint     = "int main(int argc, char** argv)"
	failureCounter = "failures"
	totalCounter   = "total"
)

// Helpers names the skeleton routines the generated main calls
type Helpers struct {
	SuiteLogger  string
	Recorder     string
	StatsPrinter string
}

// Emitter builds emitted units
type Emitter struct {
	helpers Helpers
}

// NewEmitter creates a new Emitter calling the given helpers
func NewEmitter(helpers Helpers) *Emitter {
	return &Emitter{helpers: helpers}
}

// Emit returns skeleton followed by the entry point for events.
// Statements are emitted in event order.
func (e *Emitter) Emit(events []domain.Event, skeleton []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(len(skeleton) + 64*(len(events)+4))

	buf.Write(skeleton)
	if len(skeleton) > 0 && skeleton[len(skeleton)-1] != '\n' {
		buf.WriteByte('\n')
	}

	fmt.Fprintf(&buf, "%s\n{\n", entryPoint)
	fmt.Fprintf(&buf, "\tint %s = 0, %s = 0;\n", failureCounter, totalCounter)

	for _, ev := range events {
		buf.WriteByte('\t')
		buf.WriteString(e.Statement(ev))
		buf.WriteByte('\n')
	}

	fmt.Fprintf(&buf, "\t%s(%s, %s);\n}\n", e.helpers.StatsPrinter, failureCounter, totalCounter)
	return buf.Bytes()
}

// Statement renders the single call for one event
func (e *Emitter) Statement(ev domain.Event) string {
	switch ev.Kind {
	case domain.EventSuiteStart:
		return fmt.Sprintf("%s(%s);", e.helpers.SuiteLogger, quote(ev.Suite))
	case domain.EventTest:
		return fmt.Sprintf("%s(%s, %s, %s(), &%s, &%s);",
			e.helpers.Recorder, quote(ev.Name), quote(ev.Suite), ev.Name, failureCounter, totalCounter)
	default:
		return ""
	}
}

var literalEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote renders s as a C string literal
func quote(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}
