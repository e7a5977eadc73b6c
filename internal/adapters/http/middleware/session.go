package middleware

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/platform/httpclient"
	"github.com/explorekerinci/web/internal/platform/logging"
	"github.com/explorekerinci/web/internal/platform/session"
)

// LoginPath is where RequireAuth sends guests.
const LoginPath = "/login"

// SessionLoader reads the session cookie and can drop it. Implemented by
// *session.Store.
type SessionLoader interface {
	Load(r *http.Request) (*session.Session, error)
	Clear(w http.ResponseWriter)
}

// Session returns middleware that hydrates the per-request session from the
// cookie. For a signed-in user the API bearer token is forwarded to the
// outbound client and the request logger gains a user_id attribute. A
// cookie that fails verification is cleared and the request continues as a
// guest.
func Session(store SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess, err := store.Load(r)
			if err != nil {
				logging.FromContext(ctx).WarnContext(ctx, "discarding session cookie",
					slog.Any("error", err),
				)
				store.Clear(w)
			}

			ctx = session.WithSession(ctx, sess)
			if sess.Authenticated() {
				ctx = httpclient.WithBearerToken(ctx, sess.Token)
				ctx = logging.Enrich(ctx, slog.Int64("user_id", sess.User.ID))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth redirects guests to the login page, carrying the requested
// path in the next parameter so the login form can return there.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.FromContext(r.Context()).Authenticated() {
				http.Redirect(w, r, LoginURL(ReturnPath(r)), http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin renders the 403 page for signed-in users without the admin
// role. Guests are sent to the login page as with RequireAuth.
func RequireAdmin(renderer ErrorRenderer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := session.FromContext(r.Context())
			switch {
			case !sess.Authenticated():
				http.Redirect(w, r, LoginURL(ReturnPath(r)), http.StatusSeeOther)
			case !sess.IsAdmin():
				renderError(w, r, renderer, domain.ErrForbidden, http.StatusForbidden)
			default:
				next.ServeHTTP(w, r)
			}
		})
	}
}

// LoginURL builds the login link that returns to next after signing in.
func LoginURL(next string) string {
	if next == "" || next == "/" {
		return LoginPath
	}
	return LoginPath + "?" + url.Values{"next": {next}}.Encode()
}

// ReturnPath is where to go after login. A form post returns to the page
// the form was on rather than to the POST-only endpoint.
func ReturnPath(r *http.Request) string {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return r.URL.RequestURI()
	}
	if ref, err := url.Parse(r.Referer()); err == nil && ref.Host == r.Host {
		return ref.RequestURI()
	}
	return "/"
}
