package compute

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/fivetwenty-io/cloudres/internal/constants"
	"github.com/fivetwenty-io/cloudres/pkg/resource"
)

// ReloadResult is the outcome of reloading one resource.
type ReloadResult struct {
	Resource *resource.Resource
	Error    error
	Duration time.Duration
}

// ReloadAll reloads resources concurrently, at most concurrency at a time.
// A resource is never touched by two goroutines: repeated pointers are
// reloaded once and share the result, and nil entries are skipped. Results
// are in input order; the returned error joins every failure.
func ReloadAll(ctx context.Context, resources []*resource.Resource, concurrency int) ([]ReloadResult, error) {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	results := make([]ReloadResult, len(resources))
	first := make(map[*resource.Resource]int, len(resources))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, concurrency)

	for index, res := range resources {
		results[index].Resource = res

		if _, seen := first[res]; seen || res == nil {
			continue
		}

		first[res] = index

		waitGroup.Add(1)

		go func(index int, res *resource.Resource) {
			defer waitGroup.Done()

			select {
			case semaphore <- struct{}{}:
			case <-ctx.Done():
				results[index].Error = ctx.Err()

				return
			}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, constants.DefaultHTTPTimeout)
			defer cancel()

			start := time.Now()
			results[index].Error = res.Reload(opCtx)
			results[index].Duration = time.Since(start)
		}(index, res)
	}

	waitGroup.Wait()

	var errs []error

	for index, res := range resources {
		if res == nil {
			continue
		}

		if origin := first[res]; origin != index {
			results[index].Error = results[origin].Error
			results[index].Duration = results[origin].Duration

			continue
		}

		if results[index].Error != nil {
			errs = append(errs, results[index].Error)
		}
	}

	return results, errors.Join(errs...)
}
