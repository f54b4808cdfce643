package storage

import (
	"os"
	"path/filepath"

	"htgen/internal/domain"
)

// WriteFileAtomic replaces path with data. The data is written to a
// temporary file in the same directory and renamed into place, so readers
// see either the old content or the new content, never a partial file.
// An existing file keeps its mode; perm applies to new files.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	committed = true
	return nil
}
