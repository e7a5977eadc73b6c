// Package fanout runs independent backend calls side by side. A page that
// needs destinations and categories, or a dashboard that needs three
// counters, issues them together and renders with whatever came back:
// every call settles, and one failure never cancels its siblings.
package fanout

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrPanic wraps a panic recovered from a worker.
var ErrPanic = errors.New("fanout: worker panicked")

// Result holds the outcome of processing a single item.
// Either Value is populated (on success) or Err is non-nil (on failure).
type Result[R any] struct {
	Value R
	Err   error
}

// OK reports whether the item succeeded.
func (r Result[R]) OK() bool {
	return r.Err == nil
}

// Run executes fn for each item using at most maxWorkers concurrent
// goroutines. Results are returned in input order. A maxWorkers below 1
// runs every item at once.
//
// If ctx is canceled while an item waits for a slot, that item records
// ctx.Err() and fn is not called for it. A panicking fn is recorded as an
// error wrapping ErrPanic instead of crashing the process.
//
// Run blocks until all items settle. For empty input it returns an empty
// non-nil slice.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	if len(items) == 0 {
		return []Result[R]{}
	}
	if maxWorkers < 1 || maxWorkers > len(items) {
		maxWorkers = len(items)
	}

	results := make([]Result[R], len(items))
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i] = Result[R]{Err: ctx.Err()}
				return
			}

			results[i] = call(ctx, item, fn)
		})
	}

	wg.Wait()
	return results
}

// Task is one independent piece of work for Settle. Tasks write their
// output through captured variables.
type Task func(ctx context.Context) error

// Settle runs all tasks concurrently and returns their errors in order. It
// never short-circuits: each slot is nil or the error of that task.
func Settle(ctx context.Context, tasks ...Task) []error {
	results := Run(ctx, len(tasks), tasks, func(ctx context.Context, task Task) (struct{}, error) {
		return struct{}{}, task(ctx)
	})

	errs := make([]error, len(results))
	for i, r := range results {
		errs[i] = r.Err
	}
	return errs
}

func call[T, R any](ctx context.Context, item T, fn func(context.Context, T) (R, error)) (res Result[R]) {
	defer func() {
		if p := recover(); p != nil {
			res = Result[R]{Err: fmt.Errorf("%w: %v", ErrPanic, p)}
		}
	}()

	val, err := fn(ctx, item)
	return Result[R]{Value: val, Err: err}
}
