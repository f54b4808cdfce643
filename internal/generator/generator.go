package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"htgen/internal/discovery"
	"htgen/internal/domain"
	"htgen/internal/emitter"
	"htgen/internal/storage"
)

// Progress is notified as batch targets complete
type Progress interface {
	Update(done int, current string)
	Finish()
}

// Options control what Generate does with the emitted unit
type Options struct {
	// Check compares the unit with the output on disk and writes nothing
	Check bool
	// DryRun builds the unit without writing it
	DryRun bool
}

// Generator reads listings and writes emitted units
type Generator struct {
	reader   *discovery.Reader
	emitter  *emitter.Emitter
	logger   *slog.Logger
	progress Progress
	workers  int
}

// NewGenerator creates a new Generator
func NewGenerator(reader *discovery.Reader, em *emitter.Emitter, logger *slog.Logger) *Generator {
	return &Generator{
		reader:  reader,
		emitter: em,
		logger:  logger,
		workers: 1,
	}
}

// SetWorkers sets how many targets GenerateAll works on at once
func (g *Generator) SetWorkers(workers int) {
	if workers < 1 {
		workers = 1
	}
	g.workers = workers
}

// SetProgress sets the progress reporter used by GenerateAll
func (g *Generator) SetProgress(progress Progress) {
	g.progress = progress
}

// Generate emits the unit for one target. Nothing is written unless the
// listing scans cleanly and the skeleton can be read.
func (g *Generator) Generate(target domain.Target, opts Options) (*domain.GenerationResult, error) {
	listing, err := g.reader.ReadListing(target.Interface)
	if err != nil {
		return nil, err
	}
	g.logger.Debug("scanned listing",
		"interface", target.Interface,
		"tests", len(listing.Entries()),
		"suite_starts", listing.SuiteStarts())

	skeleton, err := os.ReadFile(target.Skeleton)
	if err != nil {
		return nil, &domain.MissingInputError{Role: "skeleton", Path: target.Skeleton, Err: err}
	}

	unit := g.emitter.Emit(listing.Events, skeleton)

	changed, err := differs(target.Output, unit)
	if err != nil {
		return nil, err
	}

	result := &domain.GenerationResult{
		Target:  target,
		Listing: listing,
		Unit:    unit,
		Changed: changed,
	}

	if opts.Check {
		if changed {
			return result, &domain.StaleOutputError{Path: target.Output}
		}
		return result, nil
	}
	if opts.DryRun {
		return result, nil
	}

	if err := storage.WriteFileAtomic(target.Output, unit, 0644); err != nil {
		return nil, err
	}
	result.Written = true
	g.logger.Debug("wrote unit", "output", target.Output, "bytes", len(unit), "changed", changed)

	return result, nil
}

// GenerateAll generates every target and stops at the first error.
// With more than one worker, targets run in parallel.
func (g *Generator) GenerateAll(targets []domain.Target, opts Options) ([]*domain.GenerationResult, error) {
	if g.workers > 1 && len(targets) > 1 {
		return g.generateParallel(targets, opts)
	}

	results := make([]*domain.GenerationResult, 0, len(targets))
	for i, target := range targets {
		result, err := g.Generate(target, opts)
		if err != nil {
			if g.progress != nil {
				g.progress.Finish()
			}
			return results, fmt.Errorf("target %s: %w", target.Name, err)
		}
		results = append(results, result)
		if g.progress != nil {
			g.progress.Update(i+1, target.Name)
		}
	}
	if g.progress != nil {
		g.progress.Finish()
	}
	return results, nil
}

// differs reports whether the file at path is missing or has other content
func differs(path string, unit []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read existing output: %w", err)
	}
	return !bytes.Equal(existing, unit), nil
}
