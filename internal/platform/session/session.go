// Package session keeps the signed-in visitor between requests.
//
// The durable state is a single HttpOnly cookie holding an HS256-signed JWT
// that wraps the user and the bearer token the REST API issued at login.
// Per request the state lives in the context as a [Session]:
//
//	sess := session.FromContext(ctx)
//	if sess.Authenticated() {
//	    ctx = httpclient.WithBearerToken(ctx, sess.Token)
//	}
package session

import (
	"context"

	"github.com/explorekerinci/web/internal/domain/user"
)

// Session is the per-request auth state.
type Session struct {
	// User is nil for guests.
	User *user.User
	// Token is the API bearer token; empty for guests.
	Token string
	// Hydrated is set once the cookie has been read, so "not loaded" and
	// "loaded, no user" are distinguishable.
	Hydrated bool
}

// Authenticated reports whether a user is signed in.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != nil && s.Token != ""
}

// IsAdmin reports whether the signed-in user may access the back-office.
func (s *Session) IsAdmin() bool {
	return s.Authenticated() && s.User.IsAdmin()
}

type sessionKey struct{}

// WithSession stores the session in the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext returns the request's session, or an empty un-hydrated one.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionKey{}).(*Session); ok && s != nil {
		return s
	}
	return &Session{}
}
