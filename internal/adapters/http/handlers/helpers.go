package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/explorekerinci/web/internal/adapters/http/dto"
	"github.com/explorekerinci/web/internal/adapters/http/middleware"
	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/domain/user"
	"github.com/explorekerinci/web/internal/platform/logging"
	"github.com/explorekerinci/web/internal/platform/session"
)

// Renderer renders HTML pages. Implemented by the view package.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, name, title string, data any)
	RenderError(w http.ResponseWriter, r *http.Request, err error)
}

// SessionWriter persists the visitor's session and one-shot notices.
// Implemented by *session.Store.
type SessionWriter interface {
	Save(w http.ResponseWriter, auth *user.Auth) error
	Refresh(w http.ResponseWriter, sess *session.Session, u *user.User) error
	Clear(w http.ResponseWriter)
	SetFlash(w http.ResponseWriter, kind, message string)
}

// pages bundles what every page handler needs to answer a request.
type pages struct {
	rd       Renderer
	sessions SessionWriter
}

// fail answers a failed page load. An expired backend token clears the
// session and sends the visitor to the login page; anything else renders
// the matching error page.
func (p *pages) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	logFailure(r.Context(), op, err)

	if errors.Is(err, domain.ErrUnauthorized) {
		p.sessions.Clear(w)
		p.sessions.SetFlash(w, session.FlashError, "Sesi Anda telah berakhir. Silakan masuk kembali.")
		seeOther(w, r, middleware.LoginURL(middleware.ReturnPath(r)))
		return
	}
	p.rd.RenderError(w, r, err)
}

// done queues a success notice and redirects.
func (p *pages) done(w http.ResponseWriter, r *http.Request, target, message string) {
	p.sessions.SetFlash(w, session.FlashSuccess, message)
	seeOther(w, r, target)
}

// logFailure logs expected client-side outcomes at WARN and everything else
// at ERROR.
func logFailure(ctx context.Context, op string, err error) {
	level := slog.LevelError
	if dto.StatusFor(err) < http.StatusInternalServerError {
		level = slog.LevelWarn
	}
	logging.FromContext(ctx).Log(ctx, level, "page request failed",
		slog.String("operation", op),
		slog.Any("error", err),
	)
}

// seeOther redirects with 303 so the browser follows up with a GET.
func seeOther(w http.ResponseWriter, r *http.Request, target string) {
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// localPath reduces raw to a path and query on this site, or returns
// fallback. Anything with a scheme or host is refused, as is a backslash:
// browsers read "/\host" as "//host".
func localPath(raw, fallback string) string {
	if raw == "" || strings.ContainsAny(raw, "\\\r\n\t") {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil || u.Opaque != "" {
		return fallback
	}
	if !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") || strings.Contains(u.Path, "\\") {
		return fallback
	}
	if u.RawQuery == "" {
		return u.Path
	}
	return u.Path + "?" + u.RawQuery
}

// parseID extracts an int64 path parameter. Malformed IDs are treated as
// unknown resources.
func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}

// queryInt reads a positive integer query parameter, or fallback.
func queryInt(r *http.Request, key string, fallback int) int {
	n, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
