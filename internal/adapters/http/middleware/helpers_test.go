package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/explorekerinci/web/internal/domain"
)

// fakeRenderer records the errors it was asked to render and writes a
// status derived from them.
type fakeRenderer struct {
	mu   sync.Mutex
	errs []error
}

func (f *fakeRenderer) RenderError(w http.ResponseWriter, _ *http.Request, err error) {
	f.mu.Lock()
	f.errs = append(f.errs, err)
	f.mu.Unlock()

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte("<h1>error page</h1>"))
}

func (f *fakeRenderer) rendered() []error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]error(nil), f.errs...)
}
