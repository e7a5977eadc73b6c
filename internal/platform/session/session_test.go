package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/explorekerinci/web/internal/domain/user"
	"github.com/explorekerinci/web/internal/platform/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testAuth() *user.Auth {
	return &user.Auth{
		User:  user.User{ID: 7, Name: "Rina", Email: "rina@example.com", Role: user.RoleUser},
		Token: "api-token-7",
	}
}

func testStore() *Store {
	return NewStore(&config.SessionConfig{
		Secret:     testSecret,
		CookieName: "ek_session",
		MaxAge:     time.Hour,
		Secure:     true,
	})
}

func TestCodec_RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCodec(testSecret, time.Hour)

	raw, err := c.Encode(testAuth())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	sess, err := c.Decode(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !sess.Hydrated {
		t.Error("Hydrated = false, want true")
	}
	if sess.Token != "api-token-7" {
		t.Errorf("Token = %q, want %q", sess.Token, "api-token-7")
	}
	if sess.User == nil || sess.User.ID != 7 || sess.User.Name != "Rina" {
		t.Errorf("User = %+v, want ID 7 named Rina", sess.User)
	}
}

func TestCodec_EncodeRequiresToken(t *testing.T) {
	t.Parallel()

	c := NewCodec(testSecret, time.Hour)

	if _, err := c.Encode(&user.Auth{User: user.User{ID: 1}}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Encode() error = %v, want ErrInvalidToken", err)
	}
	if _, err := c.Encode(nil); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Encode(nil) error = %v, want ErrInvalidToken", err)
	}
}

func TestCodec_Expired(t *testing.T) {
	t.Parallel()

	c := NewCodec(testSecret, time.Hour)
	issued := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return issued }

	raw, err := c.Encode(testAuth())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	c.now = func() time.Time { return issued.Add(2 * time.Hour) }

	if _, err := c.Decode(raw); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Decode() error = %v, want ErrExpiredToken", err)
	}
}

func TestCodec_WrongSecret(t *testing.T) {
	t.Parallel()

	raw, err := NewCodec(testSecret, time.Hour).Encode(testAuth())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	other := NewCodec(strings.Repeat("x", 32), time.Hour)
	if _, err := other.Decode(raw); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Decode() error = %v, want ErrInvalidToken", err)
	}
}

func TestCodec_Garbage(t *testing.T) {
	t.Parallel()

	if _, err := NewCodec(testSecret, time.Hour).Decode("not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Decode() error = %v, want ErrInvalidToken", err)
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	t.Parallel()

	store := testStore()
	rec := httptest.NewRecorder()

	if err := store.Save(rec, testAuth()); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != "ek_session" || !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie = %+v, want HttpOnly Secure SameSite=Lax ek_session", c)
	}
	if c.MaxAge != 3600 {
		t.Errorf("MaxAge = %d, want 3600", c.MaxAge)
	}

	req := httptest.NewRequest(http.MethodGet, "/profil", nil)
	req.AddCookie(c)

	sess, err := store.Load(req)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !sess.Authenticated() {
		t.Error("Authenticated() = false, want true")
	}
	if sess.IsAdmin() {
		t.Error("IsAdmin() = true, want false for a visitor")
	}
}

func TestStore_LoadWithoutCookie(t *testing.T) {
	t.Parallel()

	sess, err := testStore().Load(httptest.NewRequest(http.MethodGet, "/", nil))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !sess.Hydrated {
		t.Error("Hydrated = false, want true")
	}
	if sess.Authenticated() {
		t.Error("Authenticated() = true, want guest")
	}
}

func TestStore_LoadTampered(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "ek_session", Value: "tampered"})

	sess, err := testStore().Load(req)
	if !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Load() error = %v, want ErrInvalidToken", err)
	}
	if sess.Authenticated() {
		t.Error("Authenticated() = true, want guest for tampered cookie")
	}
}

func TestStore_Clear(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	testStore().Clear(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Errorf("cookies = %+v, want one expired cookie", cookies)
	}
}

func TestStore_Refresh(t *testing.T) {
	t.Parallel()

	store := testStore()
	sess := &Session{User: &user.User{ID: 7, Name: "Rina"}, Token: "api-token-7", Hydrated: true}

	rec := httptest.NewRecorder()
	if err := store.Refresh(rec, sess, &user.User{ID: 7, Name: "Rina Kerinci"}); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])

	got, err := store.Load(req)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.User.Name != "Rina Kerinci" || got.Token != "api-token-7" {
		t.Errorf("session = %+v, want renamed user with same token", got)
	}

	if err := store.Refresh(httptest.NewRecorder(), &Session{}, &user.User{}); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Refresh(guest) error = %v, want ErrInvalidToken", err)
	}
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	empty := FromContext(context.Background())
	if empty.Hydrated || empty.Authenticated() {
		t.Errorf("FromContext(empty) = %+v, want un-hydrated guest", empty)
	}

	admin := &Session{User: &user.User{ID: 1, Role: user.RoleAdmin}, Token: "t", Hydrated: true}
	ctx := WithSession(context.Background(), admin)
	if got := FromContext(ctx); got != admin {
		t.Errorf("FromContext() = %p, want %p", got, admin)
	}
	if !admin.IsAdmin() {
		t.Error("IsAdmin() = false, want true")
	}

	var nilSession *Session
	if nilSession.Authenticated() {
		t.Error("nil session Authenticated() = true")
	}
}
