// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"figmop-core/pattern"
	"figmop-core/profile"

	"figmop/internal/report"
)

// Config controls the build pipeline.
type Config struct {
	Threads int            // number of worker goroutines (>=1)
	Profile profile.Config // builder options shared by every file
	// Load reads one pattern file; nil means pattern.Load.
	Load func(path string) (*pattern.File, error)
}

// BuildOne loads and builds a single pattern file.
func BuildOne(cfg Config, idx int, path string) report.Model {
	load := cfg.Load
	if load == nil {
		load = pattern.Load
	}
	m := report.Model{Index: idx, SourceFile: path}
	f, err := load(path)
	if err != nil {
		m.Stage, m.Err = report.StageLoad, err
		return m
	}
	m.Settings = f.Settings
	p, err := f.Build(cfg.Profile)
	if err != nil {
		m.Stage, m.Err = report.StageBuild, fmt.Errorf("%s: %w", path, err)
		return m
	}
	m.Params = p
	return m
}

// ForEachModel builds every file and calls visit once per file, in the
// order of files, from a single goroutine. Invalid files are reported
// through Model.Err, not as a returned error. It returns the first visit
// error or the context error.
func ForEachModel(ctx context.Context, cfg Config, files []string, visit func(report.Model) error) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}

	type job struct {
		idx  int
		path string
	}
	jobs := make(chan job, cfg.Threads*2)
	results := make(chan report.Model, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-jobs:
					if !ok {
						return
					}
					m := BuildOne(cfg, j.idx, j.path)
					select {
					case results <- m:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: restore input order.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]report.Model)
		next := 0
		for m := range results {
			pending[m.Index] = m
			for {
				cur, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if cerr != nil {
					continue
				}
				if err := visit(cur); err != nil {
					cerr = err
				}
			}
		}
	}()

	// Feed work
feed:
	for i, path := range files {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- job{idx: i, path: path}:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return ctx.Err()
	}
	return cerr
}
