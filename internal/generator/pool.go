package generator

import (
	"context"
	"fmt"
	"sync"

	"htgen/internal/domain"
)

// job is one target queued for a worker, with its position in the batch
type job struct {
	index  int
	target domain.Target
}

// generateParallel spreads targets over the configured workers and stops
// handing out new targets after the first error. Results keep target order;
// targets that were never generated are left out.
func (g *Generator) generateParallel(targets []domain.Target, opts Options) ([]*domain.GenerationResult, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	queue := make(chan job, 1)
	go func() {
		defer close(queue)
		for i, target := range targets {
			select {
			case <-ctx.Done():
				return
			case queue <- job{index: i, target: target}:
			}
		}
	}()

	workerCount := g.workers
	if workerCount > len(targets) {
		workerCount = len(targets)
	}

	slots := make([]*domain.GenerationResult, len(targets))
	var mu sync.Mutex
	var firstErr error
	var completed int

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for j := range queue {
				mu.Lock()
				done := firstErr != nil
				mu.Unlock()
				if done {
					continue
				}

				result, err := g.Generate(j.target, opts)

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = fmt.Errorf("target %s: %w", j.target.Name, err)
						cancel()
					}
					mu.Unlock()
					continue
				}
				slots[j.index] = result
				completed++
				if g.progress != nil {
					g.progress.Update(completed, j.target.Name)
				}
				mu.Unlock()
				g.logger.Debug("generated target", "worker", workerID, "target", j.target.Name)
			}
		}(i)
	}
	wg.Wait()

	if g.progress != nil {
		g.progress.Finish()
	}

	results := make([]*domain.GenerationResult, 0, len(targets))
	for _, r := range slots {
		if r != nil {
			results = append(results, r)
		}
	}
	return results, firstErr
}
