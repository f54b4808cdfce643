// Package manifest loads batch generation targets from a YAML file:
//
//	targets:
//	  - name: hashtable
//	    skeleton: test/.test_skeleton.c
//	    interface: test/hashtable_test.h
//	    output: test/.test_impl.c
//
// Relative paths are resolved against the directory containing the manifest.
package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"htgen/internal/domain"
)

// Manifest lists the targets generated by one batch run
type Manifest struct {
	Targets []domain.Target `yaml:"targets" validate:"required,min=1,dive"`
}

// Load reads, validates and resolves the manifest at path
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &domain.MissingInputError{Role: "manifest", Path: path, Err: err}
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	m.resolve(filepath.Dir(path))
	// a relative output and its absolute spelling only collide once resolved
	if err := m.checkOutputs(); err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes and validates manifest content without resolving paths
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if err := validator.New().Struct(&m); err != nil {
		return nil, fmt.Errorf("manifest validation failed: %w", err)
	}

	for i := range m.Targets {
		t := &m.Targets[i]
		if t.Name == "" {
			t.Name = strings.TrimSuffix(filepath.Base(t.Interface), filepath.Ext(t.Interface))
		}
	}
	if err := m.checkOutputs(); err != nil {
		return nil, err
	}
	return &m, nil
}

// checkOutputs rejects targets whose outputs name the same file
func (m *Manifest) checkOutputs() error {
	seen := make(map[string]int)
	for i, t := range m.Targets {
		out := filepath.Clean(t.Output)
		if prev, ok := seen[out]; ok {
			return fmt.Errorf("targets %q and %q write the same output %s", m.Targets[prev].Name, t.Name, out)
		}
		seen[out] = i
	}
	return nil
}

func (m *Manifest) resolve(base string) {
	join := func(p string) string {
		if filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(base, p)
	}
	for i := range m.Targets {
		m.Targets[i].Skeleton = join(m.Targets[i].Skeleton)
		m.Targets[i].Interface = join(m.Targets[i].Interface)
		m.Targets[i].Output = join(m.Targets[i].Output)
	}
}
