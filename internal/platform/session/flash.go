package session

import (
	"encoding/base64"
	"net/http"
	"strings"
)

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot notice shown on the page after a redirect.
type Flash struct {
	Kind    string
	Message string
}

// flashMaxAge bounds how long an unread notice survives.
const flashMaxAge = 60

func (s *Store) flashName() string {
	return s.name + "_flash"
}

// SetFlash queues a notice for the next page the visitor sees.
func (s *Store) SetFlash(w http.ResponseWriter, kind, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(kind + "\n" + message))
	c := s.cookie(value, flashMaxAge)
	c.Name = s.flashName()
	http.SetCookie(w, c)
}

// PopFlash returns the queued notice, if any, and clears it. A malformed
// cookie is cleared and ignored.
func (s *Store) PopFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(s.flashName())
	if err != nil {
		return nil
	}

	expired := s.cookie("", -1)
	expired.Name = s.flashName()
	http.SetCookie(w, expired)

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(string(raw), "\n")
	if !ok || message == "" {
		return nil
	}
	if kind != FlashSuccess {
		kind = FlashError
	}
	return &Flash{Kind: kind, Message: message}
}
