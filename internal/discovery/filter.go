package discovery

import (
	"path/filepath"
	"strings"

	"htgen/internal/domain"
)

// Filter filters listing events by test name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the test events whose name matches pattern, plus every
// suite-start event so suites stay visible even when none of their tests match.
// Supports patterns like "test_*", "*insert*" or a plain substring.
func (f *Filter) FilterByName(events []domain.Event, pattern string) []domain.Event {
	if pattern == "" {
		return events
	}

	var filtered []domain.Event
	for _, ev := range events {
		if ev.Kind != domain.EventTest || matchName(ev.Name, pattern) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		// every non-empty fragment between wildcards must appear in the name
		hasPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasPart = true
			if !strings.Contains(name, part) {
				return false
			}
		}
		return hasPart
	}

	// If no wildcards, do a simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(name, pattern)
	}
	return false
}
