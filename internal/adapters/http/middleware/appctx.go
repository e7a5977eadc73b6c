package middleware

import (
	"net/http"

	appctx "github.com/explorekerinci/web/internal/app/context"
)

// AppContext returns middleware that creates a new RequestContext for each
// HTTP request and stores it in the request context. The catalog service
// memoizes the category list in it, so the filter bar and the destination
// cards of one page share a single API call.
//
// Memoized fetches run with the context the RequestContext wraps, so this
// middleware must be registered innermost, after Session and Timeout: that
// way the fetches carry the bearer token, the page deadline and the active
// span.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			ctx := appctx.WithRequestContext(r.Context(), rc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
