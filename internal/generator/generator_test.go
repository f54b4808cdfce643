package generator

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htgen/internal/discovery"
	"htgen/internal/domain"
	"htgen/internal/emitter"
)

const testSkeleton = `#include "hashtable_test.h"

void log_suite_start(const char* name)
{
    fprintf(stdout, "RUNNING SUITE : %s\n", name);
}
`

const testListing = `/*
Description: interface of unit tests for hashtable functionality
*/

#include "../hashtable.h"

//SUITE = hashtable_init_should
bool reject_empty_size();
bool properly_initialize_members();

//SUITE = hashtable_clear_should

//SUITE = hashtable_swap_should
bool properly_swap();
`

func newTestGenerator() *Generator {
	reader := discovery.NewReader("SUITE", "general", discovery.NewParser("bool"))
	em := emitter.NewEmitter(emitter.Helpers{
		SuiteLogger:  "log_suite_start",
		Recorder:     "run_test_and_print",
		StatsPrinter: "print_cumulative_stats",
	})
	return NewGenerator(reader, em, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func writeTarget(t *testing.T, dir, listing string) domain.Target {
	t.Helper()
	target := domain.Target{
		Name:      "hashtable",
		Skeleton:  filepath.Join(dir, "test", ".test_skeleton.c"),
		Interface: filepath.Join(dir, "test", "hashtable_test.h"),
		Output:    filepath.Join(dir, "test", ".test_impl.c"),
	}
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "test"), 0755))
	require.NoError(t, os.WriteFile(target.Skeleton, []byte(testSkeleton), 0644))
	require.NoError(t, os.WriteFile(target.Interface, []byte(listing), 0644))
	return target
}

func TestGenerator_Generate(t *testing.T) {
	gen := newTestGenerator()
	target := writeTarget(t, t.TempDir(), testListing)

	result, err := gen.Generate(target, Options{})
	require.NoError(t, err)
	assert.True(t, result.Written)
	assert.True(t, result.Changed)

	data, err := os.ReadFile(target.Output)
	require.NoError(t, err)

	expected := testSkeleton +
		"int main(int argc, char** argv)\n{\n" +
		"\tint failures = 0, total = 0;\n" +
		"\tlog_suite_start(\"hashtable_init_should\");\n" +
		"\trun_test_and_print(\"reject_empty_size\", \"hashtable_init_should\", reject_empty_size(), &failures, &total);\n" +
		"\trun_test_and_print(\"properly_initialize_members\", \"hashtable_init_should\", properly_initialize_members(), &failures, &total);\n" +
		"\tlog_suite_start(\"hashtable_clear_should\");\n" +
		"\tlog_suite_start(\"hashtable_swap_should\");\n" +
		"\trun_test_and_print(\"properly_swap\", \"hashtable_swap_should\", properly_swap(), &failures, &total);\n" +
		"\tprint_cumulative_stats(failures, total);\n}\n"
	assert.Equal(t, expected, string(data))
	assert.Equal(t, expected, string(result.Unit))
}

func TestGenerator_Generate_IdempotentAndOverwrites(t *testing.T) {
	gen := newTestGenerator()
	target := writeTarget(t, t.TempDir(), testListing)
	require.NoError(t, os.WriteFile(target.Output, []byte("stale output from an earlier run"), 0644))

	first, err := gen.Generate(target, Options{})
	require.NoError(t, err)
	assert.True(t, first.Changed)
	firstBytes, err := os.ReadFile(target.Output)
	require.NoError(t, err)
	assert.NotContains(t, string(firstBytes), "stale output")

	second, err := gen.Generate(target, Options{})
	require.NoError(t, err)
	assert.False(t, second.Changed)
	secondBytes, err := os.ReadFile(target.Output)
	require.NoError(t, err)
	assert.Equal(t, firstBytes, secondBytes)
}

func TestGenerator_Generate_MalformedMarker(t *testing.T) {
	gen := newTestGenerator()
	target := writeTarget(t, t.TempDir(), "//SUITE = ok\nbool a();\n//SUITE broken\nbool b();\n")
	require.NoError(t, os.WriteFile(target.Output, []byte("previous"), 0644))

	_, err := gen.Generate(target, Options{})
	require.Error(t, err)
	assert.True(t, domain.IsMalformedSuiteMarker(err))

	data, err := os.ReadFile(target.Output)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestGenerator_Generate_MalformedMarkerLeavesNoOutput(t *testing.T) {
	gen := newTestGenerator()
	target := writeTarget(t, t.TempDir(), "//SUITE\n")

	_, err := gen.Generate(target, Options{})
	require.Error(t, err)
	assert.NoFileExists(t, target.Output)
}

func TestGenerator_Generate_MissingInputs(t *testing.T) {
	gen := newTestGenerator()

	t.Run("missing skeleton", func(t *testing.T) {
		target := writeTarget(t, t.TempDir(), testListing)
		require.NoError(t, os.Remove(target.Skeleton))

		_, err := gen.Generate(target, Options{})
		var missing *domain.MissingInputError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "skeleton", missing.Role)
		assert.NoFileExists(t, target.Output)
	})

	t.Run("missing interface", func(t *testing.T) {
		target := writeTarget(t, t.TempDir(), testListing)
		require.NoError(t, os.Remove(target.Interface))

		_, err := gen.Generate(target, Options{})
		var missing *domain.MissingInputError
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "interface", missing.Role)
	})
}

func TestGenerator_Generate_Check(t *testing.T) {
	gen := newTestGenerator()
	target := writeTarget(t, t.TempDir(), testListing)

	_, err := gen.Generate(target, Options{Check: true})
	require.Error(t, err)
	assert.True(t, domain.IsStaleOutput(err))
	assert.NoFileExists(t, target.Output)

	_, err = gen.Generate(target, Options{})
	require.NoError(t, err)

	result, err := gen.Generate(target, Options{Check: true})
	require.NoError(t, err)
	assert.False(t, result.Changed)
	assert.False(t, result.Written)
}

func TestGenerator_Generate_DryRun(t *testing.T) {
	gen := newTestGenerator()
	target := writeTarget(t, t.TempDir(), testListing)

	result, err := gen.Generate(target, Options{DryRun: true})
	require.NoError(t, err)
	assert.False(t, result.Written)
	assert.NotEmpty(t, result.Unit)
	assert.NoFileExists(t, target.Output)
}

type recordingProgress struct {
	updates  []string
	finished bool
}

func (p *recordingProgress) Update(done int, current string) {
	p.updates = append(p.updates, current)
}

func (p *recordingProgress) Finish() {
	p.finished = true
}

func TestGenerator_GenerateAll(t *testing.T) {
	gen := newTestGenerator()
	progress := &recordingProgress{}
	gen.SetProgress(progress)

	first := writeTarget(t, t.TempDir(), testListing)
	second := writeTarget(t, t.TempDir(), "bool lonely();\n")
	second.Name = "lonely"

	results, err := gen.GenerateAll([]domain.Target{first, second}, Options{})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, []string{"hashtable", "lonely"}, progress.updates)
	assert.True(t, progress.finished)

	data, err := os.ReadFile(second.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `run_test_and_print("lonely", "general", lonely(), &failures, &total);`)
	assert.NotContains(t, string(data), "log_suite_start(\"general\")")
}

func TestGenerator_GenerateAll_StopsOnError(t *testing.T) {
	gen := newTestGenerator()
	bad := writeTarget(t, t.TempDir(), "// SUITE nope\n")
	bad.Name = "bad"
	good := writeTarget(t, t.TempDir(), testListing)

	results, err := gen.GenerateAll([]domain.Target{bad, good}, Options{})
	require.Error(t, err)
	assert.Empty(t, results)
	assert.True(t, strings.HasPrefix(err.Error(), "target bad:"))
	assert.NoFileExists(t, good.Output)
}

func TestBuildReport(t *testing.T) {
	gen := newTestGenerator()
	target := writeTarget(t, t.TempDir(), testListing)
	result, err := gen.Generate(target, Options{})
	require.NoError(t, err)

	report := BuildReport([]*domain.GenerationResult{result}, 1500*time.Millisecond)

	assert.NotEmpty(t, report.Meta.RunID)
	assert.Equal(t, 1, report.Meta.Targets)
	assert.Equal(t, 3, report.Meta.TotalTests)
	assert.Equal(t, 1, report.Meta.ChangedOutputs)
	assert.InDelta(t, 1.5, report.Meta.DurationSeconds, 0.001)
	require.Len(t, report.Targets, 1)

	tr := report.Targets[0]
	assert.Equal(t, 3, tr.SuiteStarts)
	assert.Equal(t, []string{"hashtable_init_should", "hashtable_clear_should", "hashtable_swap_should"}, tr.Suites)
	assert.Equal(t, len(result.Unit), tr.Bytes)
	assert.Len(t, tr.SHA256, 64)
}
