package team

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// WorkerFunc processes a job of type T and returns a result of type U
type WorkerFunc[T any, U any] func(ctx context.Context, job T) (U, error)

// assignment is a job together with its position in the input
type assignment[T any] struct {
	index int
	job   T
}

// Team is a generic worker pool
// WorkerCount: number of concurrent workers
// Worker: the function to process each job
type Team[T any, U any] struct {
	WorkerCount int
	Worker      WorkerFunc[T, U]
}

// Run feeds jobs to the workers and returns the results in job order.
// Every failed job is reported in the joined error; results of failed jobs
// are left as the zero value.
func (t *Team[T, U]) Run(ctx context.Context, jobs []T) ([]U, error) {
	results := make([]U, len(jobs))
	errs := make([]error, len(jobs))
	if len(jobs) == 0 {
		return results, nil
	}

	workerCount := t.WorkerCount
	if workerCount <= 0 || workerCount > len(jobs) {
		workerCount = len(jobs)
	}

	jobChan := make(chan assignment[T], len(jobs))
	var wg sync.WaitGroup

	// Start workers. Each one writes only to its own job's slot.
	for range workerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for a := range jobChan {
				if err := ctx.Err(); err != nil {
					errs[a.index] = err
					continue
				}
				res, err := t.Worker(ctx, a.job)
				if err != nil {
					errs[a.index] = fmt.Errorf("job %d: %w", a.index, err)
					continue
				}
				results[a.index] = res
			}
		}()
	}

	// Feed jobs
	for i, job := range jobs {
		jobChan <- assignment[T]{index: i, job: job}
	}
	close(jobChan)

	wg.Wait()
	return results, errors.Join(errs...)
}
