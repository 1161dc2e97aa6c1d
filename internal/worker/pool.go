// Package worker provides a bounded pool for offloading blocking database
// and network calls from the update dispatch path.
package worker

import (
	"context"
	"log/slog"

	"golang.org/x/sync/semaphore"
)

// Pool runs blocking functions on their own goroutines while capping how
// many run at once.
type Pool struct {
	sem    *semaphore.Weighted
	logger *slog.Logger
}

// NewPool creates a pool that admits at most size concurrent calls.
func NewPool(size int64, logger *slog.Logger) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{
		sem:    semaphore.NewWeighted(size),
		logger: logger.With("component", "worker_pool"),
	}
}

// Do submits fn to the pool and waits for its result. The caller blocks,
// but on its own handler goroutine, so the dispatch loop keeps accepting
// updates. When ctx is done before fn finishes, Do returns the context
// error; fn itself is not cancelled and runs to completion (fetches carry
// their own timeout).
func (p *Pool) Do(ctx context.Context, fn func(context.Context) error) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		defer p.sem.Release(1)
		done <- fn(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		p.logger.WarnContext(ctx, "Context done before offloaded call finished", "error", ctx.Err())
		return ctx.Err()
	}
}
