package appctx

import "sync"

// SafeRef provides goroutine-safe access to a mutable value. The browse
// controllers keep the current page location in one: the debounce timer
// fires on its own goroutine while clicks arrive on the caller's.
//
// Reads (Get) take a shared lock; writes (Set, Update, Swap) are serialized.
type SafeRef[T any] struct {
	mu  sync.RWMutex
	val T
}

// NewRef creates a SafeRef initialized with the given value.
func NewRef[T any](val T) *SafeRef[T] {
	return &SafeRef[T]{val: val}
}

// Get returns a copy of the current value under a read lock.
func (r *SafeRef[T]) Get() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.val
}

// Set replaces the current value under a write lock.
func (r *SafeRef[T]) Set(val T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.val = val
}

// Update applies fn to the value under a write lock, allowing atomic
// in-place mutations.
func (r *SafeRef[T]) Update(fn func(*T)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(&r.val)
}

// Swap computes the next value from the current one under a write lock and
// returns both, so a caller can act on exactly the transition it made.
func (r *SafeRef[T]) Swap(fn func(T) T) (prev, next T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	prev = r.val
	r.val = fn(prev)
	return prev, r.val
}
