// Package appctx provides request-scoped context for page orchestration.
//
// RequestContext extends Go's context.Context with an in-memory cache so
// that data shared by several parts of one page (the category list used by
// the filter bar and by the destination cards, the signed-in user's
// profile) is fetched from the backend once per request:
//
//	rc := appctx.New(ctx)
//	cats, err := appctx.GetOrFetch(rc, "categories", fetchCategories)
//
// A new RequestContext is created per HTTP request by middleware and
// retrieved with FromContext; it must not outlive the request.
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTypeMismatch is returned by GetOrFetch when a cached value's type does
// not match the requested type T. This indicates a programming error where
// the same cache key is used with different types.
var ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

// ErrFetchPanicked is returned to callers waiting on a key whose fetch
// panicked.
var ErrFetchPanicked = errors.New("appctx: fetch panicked")

type ctxKey struct{}

// RequestContext is a request-scoped context wrapper providing in-memory
// caching. It embeds context.Context and adds memoization via GetOrFetch.
//
// Unlike a plain map it is safe for the concurrent fetches a page fans out:
// concurrent GetOrFetch calls for the same key share a single fetch.
type RequestContext struct {
	context.Context

	mu    sync.Mutex
	cache map[string]*cacheEntry
}

// cacheEntry stores the result of a GetOrFetch call, including any error.
// done is closed once value and err are set.
type cacheEntry struct {
	done  chan struct{}
	value any
	err   error
}

// New creates a RequestContext wrapping the given context.Context.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]*cacheEntry),
	}
}

// WithRequestContext stores rc in ctx.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx. When none is
// present (background jobs, tests) a fresh one wrapping ctx is returned, so
// callers never have to nil-check.
func FromContext(ctx context.Context) *RequestContext {
	if rc, ok := ctx.Value(ctxKey{}).(*RequestContext); ok && rc != nil {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns a cached value for the given key, or calls fetchFn to
// fetch and cache it. Both successful results and errors are cached to
// prevent redundant calls within the same request.
//
// The same key must always be used with the same type T. If a cached value
// exists but its type does not match T, GetOrFetch returns ErrTypeMismatch.
// Use DataProvider for type-safe, reusable fetch bindings that prevent this.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	rc.mu.Lock()
	entry, ok := rc.cache[key]
	if !ok {
		entry = &cacheEntry{done: make(chan struct{})}
		rc.cache[key] = entry
	}
	rc.mu.Unlock()

	if !ok {
		return fetchOnce(rc, entry, key, fetchFn)
	}

	select {
	case <-entry.done:
	case <-rc.Done():
		var zero T
		return zero, rc.Err()
	}

	var zero T
	if entry.err != nil {
		return zero, entry.err
	}
	v, ok := entry.value.(T)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
	}
	return v, nil
}

// fetchOnce runs fetchFn for the entry's first caller. A panicking fetch
// still releases the waiters, with ErrFetchPanicked, before the panic
// continues up the stack.
func fetchOnce[T any](rc *RequestContext, entry *cacheEntry, key string, fetchFn func(ctx context.Context) (T, error)) (val T, err error) {
	completed := false
	defer func() {
		if !completed {
			entry.err = fmt.Errorf("%w: key %q", ErrFetchPanicked, key)
		}
		close(entry.done)
	}()

	val, err = fetchFn(rc.Context)
	entry.value, entry.err = val, err
	completed = true
	return val, err
}

// Invalidate drops the cached result for key, so that a page rendered after
// a write (an admin renaming a category) sees fresh data.
func (rc *RequestContext) Invalidate(key string) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	delete(rc.cache, key)
}

// DataProvider is a type-safe wrapper around GetOrFetch for a specific data
// type. It binds a cache key and fetch function together, allowing callers
// to retrieve data without specifying the key and function each time.
type DataProvider[T any] struct {
	key     string
	fetchFn func(ctx context.Context) (T, error)
}

// NewDataProvider creates a DataProvider with the given cache key and fetch
// function.
func NewDataProvider[T any](key string, fetchFn func(ctx context.Context) (T, error)) *DataProvider[T] {
	return &DataProvider[T]{key: key, fetchFn: fetchFn}
}

// Get returns the cached value or fetches it using the provider's fetch
// function.
func (p *DataProvider[T]) Get(rc *RequestContext) (T, error) {
	return GetOrFetch(rc, p.key, p.fetchFn)
}

// Key returns the provider's cache key, for use with Invalidate.
func (p *DataProvider[T]) Key() string {
	return p.key
}
