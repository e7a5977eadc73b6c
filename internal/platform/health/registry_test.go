package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/explorekerinci/web/internal/platform/health"
	"github.com/explorekerinci/web/mocks"
)

func TestCheckAll_Empty(t *testing.T) {
	t.Parallel()

	r := health.New()
	results := r.CheckAll(context.Background())

	if results == nil {
		t.Fatal("expected non-nil map, got nil")
	}
	if len(results) != 0 {
		t.Errorf("expected empty map, got %d entries", len(results))
	}
}

func TestCheckAll_AllHealthy(t *testing.T) {
	t.Parallel()

	checkerA := mocks.NewMockHealthChecker(t)
	checkerA.EXPECT().Name().Return("db")
	checkerA.EXPECT().HealthCheck(mock.Anything).Return(nil)

	checkerB := mocks.NewMockHealthChecker(t)
	checkerB.EXPECT().Name().Return("cache")
	checkerB.EXPECT().HealthCheck(mock.Anything).Return(nil)

	r := health.New()
	r.Register(checkerA)
	r.Register(checkerB)

	results := r.CheckAll(context.Background())

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results["db"] != nil {
		t.Errorf("db check = %v, want nil", results["db"])
	}
	if results["cache"] != nil {
		t.Errorf("cache check = %v, want nil", results["cache"])
	}
}

func TestCheckAll_MixedHealth(t *testing.T) {
	t.Parallel()

	healthy := mocks.NewMockHealthChecker(t)
	healthy.EXPECT().Name().Return("db")
	healthy.EXPECT().HealthCheck(mock.Anything).Return(nil)

	unhealthyErr := errors.New("connection refused")
	unhealthy := mocks.NewMockHealthChecker(t)
	unhealthy.EXPECT().Name().Return("kerinci-api")
	unhealthy.EXPECT().HealthCheck(mock.Anything).Return(unhealthyErr)

	r := health.New()
	r.Register(healthy)
	r.Register(unhealthy)

	results := r.CheckAll(context.Background())

	if results["db"] != nil {
		t.Errorf("db check = %v, want nil", results["db"])
	}
	if results["kerinci-api"] == nil {
		t.Fatal("kerinci-api check = nil, want error")
	}
	if results["kerinci-api"].Error() != "connection refused" {
		t.Errorf("kerinci-api check = %q, want %q", results["kerinci-api"].Error(), "connection refused")
	}
}

func TestCheckAll_ContextPropagated(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("kerinci-api")
	checker.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		return ctx.Err() != nil
	})).Return(context.Canceled)

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["kerinci-api"], context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", results["kerinci-api"])
	}
}

func TestCheckAll_DuplicateNames_LastWriteWins(t *testing.T) {
	t.Parallel()

	first := mocks.NewMockHealthChecker(t)
	first.EXPECT().Name().Return("db")
	first.EXPECT().HealthCheck(mock.Anything).Return(nil)

	secondErr := errors.New("second failure")
	second := mocks.NewMockHealthChecker(t)
	second.EXPECT().Name().Return("db")
	second.EXPECT().HealthCheck(mock.Anything).Return(secondErr)

	r := health.New()
	r.Register(first)
	r.Register(second)

	results := r.CheckAll(context.Background())

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	got, ok := results["db"]
	if !ok {
		t.Fatal(`expected result for key "db", but it was missing`)
	}
	if !errors.Is(got, secondErr) {
		t.Errorf("db check = %v, want %v (from last registered checker)", got, secondErr)
	}
}

func TestCheckAll_ConcurrentSafety(t *testing.T) {
	t.Parallel()

	r := health.New()

	var wg sync.WaitGroup
	const goroutines = 50

	// Half the goroutines register checkers, half call CheckAll.
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		if i%2 == 0 {
			go func() {
				defer wg.Done()
				c := mocks.NewMockHealthChecker(t)
				c.EXPECT().Name().Return("checker").Maybe()
				c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
				r.Register(c)
			}()
		} else {
			go func() {
				defer wg.Done()
				r.CheckAll(context.Background())
			}()
		}
	}

	wg.Wait()
}

func TestCheckAll_RunsConcurrently(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{}, 2)

	slow := func(ctx context.Context) error {
		started <- struct{}{}
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	a := mocks.NewMockHealthChecker(t)
	a.EXPECT().Name().Return("kerinci-api")
	a.EXPECT().HealthCheck(mock.Anything).RunAndReturn(slow)

	b := mocks.NewMockHealthChecker(t)
	b.EXPECT().Name().Return("uploads")
	b.EXPECT().HealthCheck(mock.Anything).RunAndReturn(slow)

	r := health.New()
	r.Register(a)
	r.Register(b)

	done := make(chan map[string]error)
	go func() { done <- r.CheckAll(context.Background()) }()

	// Both checks must be in flight before either is released.
	for range 2 {
		select {
		case <-started:
		case <-time.After(time.Second):
			t.Fatal("checks did not start concurrently")
		}
	}
	close(release)

	results := <-done
	if results["kerinci-api"] != nil || results["uploads"] != nil {
		t.Errorf("results = %v, want all healthy", results)
	}
}

func TestCheckAll_CallerDeadlineBoundsCheck(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	t.Cleanup(cancel)

	checker := mocks.NewMockHealthChecker(t)
	checker.EXPECT().Name().Return("kerinci-api")
	checker.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New()
	r.Register(checker)

	results := r.CheckAll(ctx)

	if !errors.Is(results["kerinci-api"], context.DeadlineExceeded) {
		t.Errorf("kerinci-api check = %v, want deadline exceeded", results["kerinci-api"])
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		results     map[string]error
		wantStatus  health.Status
		wantFailing []string
	}{
		{
			name:       "no checks",
			results:    map[string]error{},
			wantStatus: health.StatusOK,
		},
		{
			name:       "all healthy",
			results:    map[string]error{"kerinci-api": nil},
			wantStatus: health.StatusOK,
		},
		{
			name: "failing checks sorted",
			results: map[string]error{
				"uploads":     errors.New("timeout"),
				"kerinci-api": errors.New("circuit breaker open"),
				"cache":       nil,
			},
			wantStatus:  health.StatusDegraded,
			wantFailing: []string{"kerinci-api", "uploads"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := health.Summarize(tt.results)
			if got.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", got.Status, tt.wantStatus)
			}
			if len(got.Failing) != len(tt.wantFailing) {
				t.Fatalf("Failing = %v, want %v", got.Failing, tt.wantFailing)
			}
			for i := range got.Failing {
				if got.Failing[i] != tt.wantFailing[i] {
					t.Errorf("Failing[%d] = %q, want %q", i, got.Failing[i], tt.wantFailing[i])
				}
			}
			if len(got.Checks) != len(tt.results) {
				t.Errorf("Checks has %d entries, want %d", len(got.Checks), len(tt.results))
			}
		})
	}
}
