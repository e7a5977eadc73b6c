package middleware_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/explorekerinci/web/internal/adapters/http/middleware"
	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/domain/user"
	"github.com/explorekerinci/web/internal/platform/config"
	"github.com/explorekerinci/web/internal/platform/httpclient"
	"github.com/explorekerinci/web/internal/platform/logging"
	"github.com/explorekerinci/web/internal/platform/session"
)

const testCookie = "ek_session"

func newStore() *session.Store {
	return session.NewStore(&config.SessionConfig{
		Secret:     "middleware-test-secret-0123456789",
		CookieName: testCookie,
		MaxAge:     time.Hour,
	})
}

// signedIn returns a request carrying a valid session cookie for u.
func signedIn(t *testing.T, store *session.Store, method, target string, u user.User) *http.Request {
	t.Helper()

	rec := httptest.NewRecorder()
	if err := store.Save(rec, &user.Auth{User: u, Token: "7|api-token"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	req := httptest.NewRequest(method, target, http.NoBody)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func visitor() user.User {
	return user.User{ID: 7, Name: "Rina", Email: "rina@example.id", Role: user.RoleUser}
}

func admin() user.User {
	return user.User{ID: 1, Name: "Admin", Email: "admin@example.id", Role: user.RoleAdmin}
}

func TestSession_Guest(t *testing.T) {
	t.Parallel()

	var got *session.Session
	handler := middleware.Session(newStore())(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = session.FromContext(r.Context())
		if tok := httpclient.BearerToken(r.Context()); tok != "" {
			t.Errorf("BearerToken = %q, want empty for guest", tok)
		}
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if !got.Hydrated || got.Authenticated() {
		t.Errorf("session = %+v, want hydrated guest", got)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Error("guest request should not touch cookies")
	}
}

func TestSession_SignedInForwardsTokenAndEnrichesLogger(t *testing.T) {
	t.Parallel()

	store := newStore()
	var buf bytes.Buffer
	logger := testLogger(&buf)

	var got *session.Session
	var token string
	handler := middleware.Logging(logger)(
		middleware.Session(store)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			got = session.FromContext(r.Context())
			token = httpclient.BearerToken(r.Context())
			logging.FromContext(r.Context()).Info("handler log")
		})),
	)

	handler.ServeHTTP(httptest.NewRecorder(), signedIn(t, store, http.MethodGet, "/profil", visitor()))

	if !got.Authenticated() || got.User.Name != "Rina" {
		t.Fatalf("session = %+v, want Rina signed in", got)
	}
	if token != "7|api-token" {
		t.Errorf("BearerToken = %q, want %q", token, "7|api-token")
	}
	if !strings.Contains(buf.String(), "user_id=7") {
		t.Errorf("handler log missing user_id, got: %s", buf.String())
	}
	if strings.Contains(buf.String(), "7|api-token") {
		t.Error("API token leaked into logs")
	}
}

func TestSession_TamperedCookieIsCleared(t *testing.T) {
	t.Parallel()

	var got *session.Session
	handler := middleware.Session(newStore())(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = session.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "not.a.jwt"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got.Authenticated() {
		t.Error("tampered cookie produced an authenticated session")
	}
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != testCookie || cookies[0].MaxAge >= 0 {
		t.Errorf("cookies = %+v, want %s cleared", cookies, testCookie)
	}
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	store := newStore()
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Session(store)(middleware.RequireAuth()(ok))

	t.Run("guest is redirected with next", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/profil?page=2", http.NoBody))

		if rec.Code != http.StatusSeeOther {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusSeeOther)
		}
		if loc := rec.Header().Get("Location"); loc != "/login?next=%2Fprofil%3Fpage%3D2" {
			t.Errorf("Location = %q", loc)
		}
	})

	t.Run("post returns to the referring page", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/wisata/danau-kaco/ulasan", http.NoBody)
		req.Header.Set("Referer", "http://"+req.Host+"/wisata/danau-kaco")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if loc := rec.Header().Get("Location"); loc != "/login?next=%2Fwisata%2Fdanau-kaco" {
			t.Errorf("Location = %q", loc)
		}
	})

	t.Run("signed in passes", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, signedIn(t, store, http.MethodGet, "/profil", visitor()))

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	store := newStore()
	renderer := &fakeRenderer{}
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.Session(store)(middleware.RequireAdmin(renderer)(ok))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", http.NoBody))
	if rec.Code != http.StatusSeeOther {
		t.Errorf("guest status = %d, want %d", rec.Code, http.StatusSeeOther)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, signedIn(t, store, http.MethodGet, "/admin", visitor()))
	if rec.Code != http.StatusForbidden {
		t.Errorf("visitor status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if errs := renderer.rendered(); len(errs) != 1 || !errors.Is(errs[0], domain.ErrForbidden) {
		t.Errorf("rendered errors = %v, want [ErrForbidden]", errs)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, signedIn(t, store, http.MethodGet, "/admin", admin()))
	if rec.Code != http.StatusOK {
		t.Errorf("admin status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestLoginURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		next string
		want string
	}{
		{next: "", want: "/login"},
		{next: "/", want: "/login"},
		{next: "/profil", want: "/login?next=%2Fprofil"},
	}
	for _, tt := range tests {
		if got := middleware.LoginURL(tt.next); got != tt.want {
			t.Errorf("LoginURL(%q) = %q, want %q", tt.next, got, tt.want)
		}
	}
}
