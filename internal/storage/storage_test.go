package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"htgen/internal/config"
	"htgen/internal/domain"
)

func TestWriteFileAtomic(t *testing.T) {
	dir := t.TempDir()

	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(dir, "nested", "out.c")
		require.NoError(t, WriteFileAtomic(path, []byte("first"), 0644))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first", string(data))
	})

	t.Run("replaces existing content", func(t *testing.T) {
		path := filepath.Join(dir, "replace.c")
		require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0644))
		require.NoError(t, WriteFileAtomic(path, []byte("new"), 0644))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("leaves no temporary files behind", func(t *testing.T) {
		sub := filepath.Join(dir, "clean")
		require.NoError(t, WriteFileAtomic(filepath.Join(sub, "a.c"), []byte("a"), 0644))

		entries, err := os.ReadDir(sub)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "a.c", entries[0].Name())
	})

	t.Run("keeps the mode of an existing file", func(t *testing.T) {
		path := filepath.Join(dir, "mode.c")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0600))
		require.NoError(t, os.Chmod(path, 0600))
		require.NoError(t, WriteFileAtomic(path, []byte("new"), 0644))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("applies perm to new files", func(t *testing.T) {
		path := filepath.Join(dir, "fresh.c")
		require.NoError(t, WriteFileAtomic(path, []byte("new"), 0640))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
	})

	t.Run("reports write errors", func(t *testing.T) {
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("file"), 0644))

		err := WriteFileAtomic(filepath.Join(blocker, "out.c"), []byte("x"), 0644)
		require.Error(t, err)
		assert.True(t, domain.IsWriteError(err))
	})
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	st := NewJSONStorage(cfg)

	_, err := st.Load()
	require.Error(t, err)

	report := &domain.GenerationReport{
		Meta: domain.GenerationReportMeta{
			RunID:      "run-1",
			Targets:    1,
			TotalTests: 2,
		},
		Targets: []domain.TargetReport{
			{Name: "hashtable", Output: "test/.test_impl.c", Tests: 2, Suites: []string{"core"}},
		},
	}
	require.NoError(t, st.Save(report))
	assert.FileExists(t, cfg.GetReportPath())

	loaded, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
}
