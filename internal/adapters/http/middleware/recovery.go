package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// errInternalServer is what the error page is rendered from when a panic is
// recovered. The actual panic value and stack trace are logged but never
// exposed in the response.
var errInternalServer = errors.New("internal server error")

// ErrorRenderer writes the HTML error page for err. The view renderer
// implements it; the status code is derived from err.
type ErrorRenderer interface {
	RenderError(w http.ResponseWriter, r *http.Request, err error)
}

// Recovery returns middleware that recovers from panics in downstream handlers.
// When a panic occurs the middleware logs the error with the full stack trace
// and renders the 500 page. If the response headers have already been
// written, only the log entry is emitted. A nil renderer falls back to a
// plain-text 500.
func Recovery(logger *slog.Logger, renderer ErrorRenderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := newResponseWriter(w)

			defer func() {
				if v := recover(); v != nil {
					if v == http.ErrAbortHandler {
						panic(v)
					}
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.String("panic", fmt.Sprint(v)),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
					)

					if !rw.headerWritten {
						renderError(rw, r, renderer, errInternalServer, http.StatusInternalServerError)
					}
				}
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

// renderError renders err through renderer, or writes a plain-text status
// when no renderer is configured.
func renderError(w http.ResponseWriter, r *http.Request, renderer ErrorRenderer, err error, status int) {
	if renderer == nil {
		http.Error(w, http.StatusText(status), status)
		return
	}
	renderer.RenderError(w, r, err)
}
