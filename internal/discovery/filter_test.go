package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"htgen/internal/domain"
)

func namesOf(events []domain.Event) []string {
	var names []string
	for _, ev := range events {
		if ev.Kind == domain.EventTest {
			names = append(names, ev.Name)
		}
	}
	return names
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	events := []domain.Event{
		suiteStart("insert", 1),
		testEvent("properly_insert", "insert", 2),
		testEvent("indicate_insert_failure", "insert", 3),
		suiteStart("delete", 4),
		testEvent("properly_delete", "delete", 5),
		testEvent("allow_reinsert_after_delete", "delete", 6),
	}

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{
			name:     "empty pattern returns all",
			pattern:  "",
			expected: []string{"properly_insert", "indicate_insert_failure", "properly_delete", "allow_reinsert_after_delete"},
		},
		{
			name:     "wildcard pattern matches prefix",
			pattern:  "properly_*",
			expected: []string{"properly_insert", "properly_delete"},
		},
		{
			name:     "wildcard pattern matches substring",
			pattern:  "*insert*",
			expected: []string{"properly_insert", "indicate_insert_failure", "allow_reinsert_after_delete"},
		},
		{
			name:     "simple contains match",
			pattern:  "failure",
			expected: []string{"indicate_insert_failure"},
		},
		{
			name:     "no matches",
			pattern:  "*nonexistent*",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(events, tt.pattern)
			assert.Equal(t, tt.expected, namesOf(result))
		})
	}
}

func TestFilter_FilterByName_KeepsSuiteStarts(t *testing.T) {
	filter := NewFilter()
	events := []domain.Event{
		suiteStart("a", 1),
		testEvent("x", "a", 2),
		suiteStart("b", 3),
	}

	result := filter.FilterByName(events, "nothing")
	assert.Equal(t, []domain.Event{suiteStart("a", 1), suiteStart("b", 3)}, result)
}
