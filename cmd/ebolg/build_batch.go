package main

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pvidal/ebolg/internal/fileutil"
)

// BuildResult holds the outcome of rendering and writing a single page.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// renderBatch processes jobs concurrently using the generator pool.
func renderBatch(ctx context.Context, pool Pool, jobs []renderJob) []BuildResult {
	if len(jobs) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(jobs) {
		concurrency = len(jobs)
	}

	results := make([]BuildResult, len(jobs))
	var wg sync.WaitGroup
	queue := make(chan int, len(jobs))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			gen := pool.Acquire()
			if gen == nil {
				// Generator creation failed, mark remaining jobs as failed
				for idx := range queue {
					results[idx] = BuildResult{
						InputPath: jobs[idx].post.SourcePath,
						Err:       ErrGeneratorInit,
					}
				}
				return
			}
			defer pool.Release(gen)

			for idx := range queue {
				if ctx.Err() != nil {
					results[idx] = BuildResult{
						InputPath: jobs[idx].post.SourcePath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = buildPage(ctx, gen, jobs[idx])
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	wg.Wait()
	return results
}

// buildPage renders one post and writes the page to disk.
func buildPage(ctx context.Context, gen Renderer, job renderJob) BuildResult {
	start := time.Now()
	result := BuildResult{
		InputPath:  job.post.SourcePath,
		OutputPath: job.outputPath,
	}

	rendered, err := gen.Render(ctx, job.input)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFileAtomic(job.outputPath, rendered.HTML); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePage, err)
	}

	result.Duration = time.Since(start)
	return result
}
