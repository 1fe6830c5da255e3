// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Process runs a worker pool over the provided work items, invoking process
// for each. The first error cancels the context shared by all workers; items
// that have not been handed to a worker by then are skipped. onCancel is
// invoked for every item whose processing failed.
func Process[T any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) error,
	onCancel func(),
) error {
	if workerCount < 1 {
		workerCount = 1
	}

	pool, workCtx := errgroup.WithContext(ctx)
	pool.SetLimit(workerCount)

	for _, item := range items {
		if workCtx.Err() != nil {
			break
		}

		item := item
		pool.Go(func() error {
			if err := process(workCtx, item); err != nil {
				if onCancel != nil {
					onCancel()
				}
				return err
			}
			return nil
		})
	}

	if err := pool.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
