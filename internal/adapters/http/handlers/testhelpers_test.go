package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/explorekerinci/web/internal/adapters/http/view"
	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/domain/user"
	"github.com/explorekerinci/web/internal/platform/config"
	"github.com/explorekerinci/web/internal/platform/session"
)

var testTime = time.Date(2026, 8, 17, 3, 0, 0, 0, time.UTC)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func newStore() *session.Store {
	return session.NewStore(&config.SessionConfig{
		Secret:     "0123456789abcdef0123456789abcdef",
		CookieName: "ek_session",
		MaxAge:     time.Hour,
	})
}

func newRenderer(t *testing.T, store *session.Store) *view.Renderer {
	t.Helper()
	rd, err := view.New(store)
	if err != nil {
		t.Fatalf("view.New() error = %v", err)
	}
	return rd
}

func visitor() *session.Session {
	return &session.Session{
		User:     &user.User{ID: 7, Name: "Rina", Email: "rina@example.com", Role: user.RoleUser},
		Token:    "api-token-7",
		Hydrated: true,
	}
}

func signedIn(r *http.Request, sess *session.Session) *http.Request {
	return r.WithContext(session.WithSession(r.Context(), sess))
}

func postForm(target string, values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func validDestination() *destination.Destination {
	avg := 4.5
	return &destination.Destination{
		ID:          3,
		Name:        "Danau Kaco",
		Slug:        "danau-kaco",
		Description: "Danau kecil dengan air **biru jernih**.",
		Location:    "Lempur, Gunung Raya",
		TicketPrice: 10000,
		Status:      destination.StatusActive,
		RatingAvg:   &avg,
		ReviewCount: 1,
		Categories:  []category.Category{{ID: 2, Name: "Danau & Sungai", Slug: "danau-sungai"}},
		Images: []destination.Image{
			{ID: 1, URL: "https://cdn.example/kaco-1.jpg", IsPrimary: true},
			{ID: 2, URL: "https://cdn.example/kaco-2.jpg"},
		},
		Reviews: []review.Review{{
			ID: 9, Rating: 5, Comment: "Airnya biru sekali, wajib dikunjungi.",
			CreatedAt: testTime, Author: &review.Author{ID: 8, Name: "Budi"},
		}},
		CreatedAt: testTime,
	}
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

func requireRedirect(t *testing.T, rec *httptest.ResponseRecorder, want string) {
	t.Helper()
	requireStatus(t, rec, http.StatusSeeOther)
	if got := rec.Header().Get("Location"); got != want {
		t.Errorf("Location = %q, want %q", got, want)
	}
}

func requireBody(t *testing.T, rec *httptest.ResponseRecorder, want ...string) {
	t.Helper()
	body := rec.Body.String()
	for _, w := range want {
		if !strings.Contains(body, w) {
			t.Errorf("body does not contain %q", w)
		}
	}
}

// flashOf returns the flash cookie's raw value, or "" when none was set.
func flashOf(rec *httptest.ResponseRecorder) string {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "ek_session_flash" && c.MaxAge >= 0 {
			return c.Value
		}
	}
	return ""
}
