package appctx

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

const testFetchValue = "hello"

// --- GetOrFetch tests ---

func TestGetOrFetch_CacheMiss(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	val, err := GetOrFetch(rc, "key", func(_ context.Context) (string, error) {
		calls++
		return testFetchValue, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != testFetchValue {
		t.Fatalf("got %q, want %q", val, testFetchValue)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CacheHit(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	fetchFn := func(_ context.Context) (string, error) {
		calls++
		return testFetchValue, nil
	}

	_, _ = GetOrFetch(rc, "key", fetchFn)
	val, err := GetOrFetch(rc, "key", fetchFn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != testFetchValue {
		t.Fatalf("got %q, want %q", val, testFetchValue)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_CachesErrors(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0
	fetchErr := errors.New("fetch failed")

	fetchFn := func(_ context.Context) (string, error) {
		calls++
		return "", fetchErr
	}

	_, _ = GetOrFetch(rc, "key", fetchFn)
	val, err := GetOrFetch(rc, "key", fetchFn)

	if !errors.Is(err, fetchErr) {
		t.Fatalf("got error %v, want %v", err, fetchErr)
	}
	if val != "" {
		t.Fatalf("got %q, want empty string", val)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_DifferentKeys(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	v1, _ := GetOrFetch(rc, "a", func(_ context.Context) (int, error) { return 1, nil })
	v2, _ := GetOrFetch(rc, "b", func(_ context.Context) (int, error) { return 2, nil })

	if v1 != 1 {
		t.Fatalf("key a: got %d, want 1", v1)
	}
	if v2 != 2 {
		t.Fatalf("key b: got %d, want 2", v2)
	}
}

func TestGetOrFetch_ZeroValue(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	val, err := GetOrFetch(rc, "key", func(_ context.Context) (int, error) { return 0, nil })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 0 {
		t.Fatalf("got %d, want 0", val)
	}

	// Second call should return cached zero value.
	calls := 0
	val, err = GetOrFetch(rc, "key", func(_ context.Context) (int, error) {
		calls++
		return 99, nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != 0 {
		t.Fatalf("got %d, want cached 0", val)
	}
	if calls != 0 {
		t.Fatalf("fetchFn should not be called on cache hit")
	}
}

// --- DataProvider tests ---

func TestDataProvider_Get(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	p := NewDataProvider("categories", func(_ context.Context) (string, error) {
		return "air-terjun", nil
	})

	val, err := p.Get(rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if val != "air-terjun" {
		t.Fatalf("got %q, want %q", val, "air-terjun")
	}
}

func TestDataProvider_Memoizes(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	p := NewDataProvider("key", func(_ context.Context) (int, error) {
		calls++
		return 42, nil
	})

	_, _ = p.Get(rc)
	val, _ := p.Get(rc)

	if val != 42 {
		t.Fatalf("got %d, want 42", val)
	}
	if calls != 1 {
		t.Fatalf("fetchFn called %d times, want 1", calls)
	}
}

func TestGetOrFetch_TypeMismatch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	_, _ = GetOrFetch(rc, "key", func(_ context.Context) (int, error) { return 1, nil })
	_, err := GetOrFetch(rc, "key", func(_ context.Context) (string, error) { return "x", nil })

	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("got error %v, want ErrTypeMismatch", err)
	}
}

func TestGetOrFetch_ConcurrentCallersShareOneFetch(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	var calls atomic.Int32
	release := make(chan struct{})
	fetchFn := func(_ context.Context) (int, error) {
		calls.Add(1)
		<-release
		return 7, nil
	}

	const callers = 20
	var wg sync.WaitGroup
	results := make([]int, callers)
	for i := range callers {
		wg.Go(func() {
			v, err := GetOrFetch(rc, "shared", fetchFn)
			if err != nil {
				t.Errorf("caller %d: %v", i, err)
			}
			results[i] = v
		})
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("fetchFn called %d times, want 1", got)
	}
	for i, v := range results {
		if v != 7 {
			t.Errorf("caller %d got %d, want 7", i, v)
		}
	}
}

func TestGetOrFetch_WaiterHonoursCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	rc := New(ctx)

	started := make(chan struct{})
	release := make(chan struct{})
	go func() {
		_, _ = GetOrFetch(rc, "slow", func(_ context.Context) (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()
	<-started

	cancel()
	_, err := GetOrFetch(rc, "slow", func(_ context.Context) (int, error) { return 2, nil })
	close(release)

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got error %v, want context.Canceled", err)
	}
}

func TestGetOrFetch_PanickingFetchReleasesWaiters(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())

	started := make(chan struct{})
	release := make(chan struct{})
	recovered := make(chan any, 1)
	go func() {
		defer func() { recovered <- recover() }()
		_, _ = GetOrFetch(rc, "boom", func(_ context.Context) (int, error) {
			close(started)
			<-release
			panic("backend client bug")
		})
	}()
	<-started

	errCh := make(chan error, 1)
	go func() {
		_, err := GetOrFetch(rc, "boom", func(_ context.Context) (int, error) { return 2, nil })
		errCh <- err
	}()
	time.Sleep(10 * time.Millisecond)
	close(release)

	select {
	case err := <-errCh:
		if !errors.Is(err, ErrFetchPanicked) {
			t.Fatalf("got error %v, want ErrFetchPanicked", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("waiter still blocked after the fetch panicked")
	}
	if r := <-recovered; r == nil {
		t.Error("panic was swallowed, want it re-raised to the first caller")
	}
}

func TestInvalidate(t *testing.T) {
	t.Parallel()
	rc := New(context.Background())
	calls := 0

	p := NewDataProvider("categories", func(_ context.Context) (int, error) {
		calls++
		return calls, nil
	})

	first, _ := p.Get(rc)
	rc.Invalidate(p.Key())
	second, _ := p.Get(rc)

	if first != 1 || second != 2 {
		t.Fatalf("got %d then %d, want 1 then 2", first, second)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	rc := New(context.Background())
	ctx := WithRequestContext(context.Background(), rc)

	if got := FromContext(ctx); got != rc {
		t.Fatal("FromContext did not return the stored RequestContext")
	}

	fresh := FromContext(context.Background())
	if fresh == nil || fresh == rc {
		t.Fatal("FromContext without a stored value should return a fresh RequestContext")
	}
}
