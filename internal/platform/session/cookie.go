package session

import (
	"net/http"
	"time"

	"github.com/explorekerinci/web/internal/domain/user"
	"github.com/explorekerinci/web/internal/platform/config"
)

// Store reads and writes the session cookie.
type Store struct {
	codec  *Codec
	name   string
	maxAge time.Duration
	secure bool
}

// NewStore creates a cookie store from the session config.
func NewStore(cfg *config.SessionConfig) *Store {
	return &Store{
		codec:  NewCodec(cfg.Secret, cfg.MaxAge),
		name:   cfg.CookieName,
		maxAge: cfg.MaxAge,
		secure: cfg.Secure,
	}
}

// CookieName returns the configured cookie name.
func (s *Store) CookieName() string {
	return s.name
}

// Load returns the session carried by the request. A missing, tampered or
// expired cookie yields a hydrated guest session; the error reports why so
// the caller can clear the cookie.
func (s *Store) Load(r *http.Request) (*Session, error) {
	c, err := r.Cookie(s.name)
	if err != nil {
		return &Session{Hydrated: true}, nil
	}

	sess, err := s.codec.Decode(c.Value)
	if err != nil {
		return &Session{Hydrated: true}, err
	}
	return sess, nil
}

// Save writes a fresh session cookie for the authenticated user.
func (s *Store) Save(w http.ResponseWriter, auth *user.Auth) error {
	token, err := s.codec.Encode(auth)
	if err != nil {
		return err
	}

	http.SetCookie(w, s.cookie(token, int(s.maxAge.Seconds())))
	return nil
}

// Refresh re-signs the cookie with an updated user, keeping the API token.
// Used after a profile update changes the name or avatar.
func (s *Store) Refresh(w http.ResponseWriter, sess *Session, u *user.User) error {
	if !sess.Authenticated() || u == nil {
		return ErrInvalidToken
	}
	return s.Save(w, &user.Auth{User: *u, Token: sess.Token})
}

// Clear removes the session cookie.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, s.cookie("", -1))
}

func (s *Store) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     s.name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
