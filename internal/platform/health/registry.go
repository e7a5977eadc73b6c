// Package health tracks the health of the site's downstream dependencies,
// chiefly the Explore Kerinci REST API. The readiness endpoint uses the
// registry to decide whether the frontend can serve pages.
package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/explorekerinci/web/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single checker when the caller's context has
// no earlier deadline.
const DefaultCheckTimeout = 2 * time.Second

// Registry is a thread-safe implementation of [ports.HealthRegistry].
// Components that implement [ports.HealthChecker] are registered at startup
// and checked on each readiness probe.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// New creates an empty health check registry.
func New() *Registry {
	return &Registry{timeout: DefaultCheckTimeout}
}

// Register adds a health checker to the registry. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check concurrently and returns results keyed
// by checker name. Nil values indicate healthy components. The checker slice
// is copied under a read lock so checks run without holding the lock.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))

	var wg sync.WaitGroup
	for i, c := range checkers {
		wg.Go(func() {
			checkCtx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			errs[i] = c.HealthCheck(checkCtx)
		})
	}
	wg.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

// Status is the overall readiness verdict.
type Status string

// Readiness verdicts.
const (
	StatusOK       Status = "ok"
	StatusDegraded Status = "degraded"
)

// Report is the readiness view rendered by the health endpoint.
type Report struct {
	Status Status            `json:"status"`
	Checks map[string]string `json:"checks"`
	// Failing lists unhealthy checker names in sorted order.
	Failing []string `json:"failing,omitempty"`
}

// Summarize turns CheckAll results into a Report. A check's entry is "ok" or
// the error text.
func Summarize(results map[string]error) Report {
	report := Report{Status: StatusOK, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err == nil {
			report.Checks[name] = string(StatusOK)
			continue
		}
		report.Checks[name] = err.Error()
		report.Failing = append(report.Failing, name)
	}
	if len(report.Failing) > 0 {
		report.Status = StatusDegraded
		sort.Strings(report.Failing)
	}
	return report
}
