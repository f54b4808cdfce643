package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_ParseDeclaration(t *testing.T) {
	parser := NewParser("bool")

	tests := []struct {
		name     string
		line     string
		expected string
		ok       bool
	}{
		{name: "plain declaration", line: "bool test_insert();", expected: "test_insert", ok: true},
		{name: "surrounding whitespace", line: "\t  bool reject_empty_size();  \n", expected: "reject_empty_size", ok: true},
		{name: "spaces between tokens", line: "bool   properly_upsize ( ) ;", expected: "properly_upsize", ok: true},
		{name: "trailing comment", line: "bool properly_copy(); // slow", expected: "properly_copy", ok: true},
		{name: "digits after first char", line: "bool test2();", expected: "test2", ok: true},
		{name: "camel case", line: "bool handleSelfSwap();", expected: "handleSelfSwap", ok: true},
		{name: "empty line", line: "", ok: false},
		{name: "comment", line: "// bool test_insert();", ok: false},
		{name: "include", line: `#include "../hashtable.h"`, ok: false},
		{name: "parameters", line: "bool test_insert(int n);", ok: false},
		{name: "void parameter list", line: "bool test_insert(void);", ok: false},
		{name: "definition", line: "bool test_insert() {", ok: false},
		{name: "missing semicolon", line: "bool test_insert()", ok: false},
		{name: "other return type", line: "int test_insert();", ok: false},
		{name: "return type prefix only", line: "boolean test_insert();", ok: false},
		{name: "no space after type", line: "bool*test_insert();", ok: false},
		{name: "pointer return", line: "bool *test_insert();", ok: false},
		{name: "leading digit", line: "bool 2fast();", ok: false},
		{name: "missing name", line: "bool ();", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, ok := parser.ParseDeclaration(tt.line)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestParser_CustomReturnType(t *testing.T) {
	parser := NewParser("int")

	name, ok := parser.ParseDeclaration("int check_all();")
	assert.True(t, ok)
	assert.Equal(t, "check_all", name)

	_, ok = parser.ParseDeclaration("bool check_all();")
	assert.False(t, ok)
}
