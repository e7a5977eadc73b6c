// Package user holds visitor accounts, credentials, and profile updates.
package user

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/explorekerinci/web/internal/domain"
)

// MinPasswordLength mirrors the backend's password rule.
const MinPasswordLength = 8

// MaxAvatarBytes caps avatar uploads.
const MaxAvatarBytes = 2 << 20

// Role separates visitors from back-office administrators.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is an authenticated account.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Role      Role   `json:"role"`
}

// IsAdmin reports whether the user may access the back-office.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// Auth is the result of a successful login or registration: the account
// and the bearer token the backend issued for it.
type Auth struct {
	User  User
	Token string
}

// Credentials is a login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Validate only checks presence; the backend decides whether they match.
func (c *Credentials) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(c.Email) == "" {
		fields["email"] = "email " + domain.MsgRequired
	}
	if c.Password == "" {
		fields["password"] = "password " + domain.MsgRequired
	}
	return domain.NewValidationError(fields)
}

// Registration is a sign-up request.
type Registration struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// Validate checks the registration form rules.
func (r *Registration) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "nama " + domain.MsgRequired
	}
	validateEmail(fields, r.Email)
	validatePassword(fields, r.Password, r.PasswordConfirmation)

	return domain.NewValidationError(fields)
}

// Avatar is an uploaded profile picture.
type Avatar struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ProfileUpdate changes name/email and optionally the password or avatar.
// A password change requires the current password.
type ProfileUpdate struct {
	Name                 string
	Email                string
	CurrentPassword      string
	Password             string
	PasswordConfirmation string
	Avatar               *Avatar
}

// ChangesPassword reports whether the update carries a new password.
func (p *ProfileUpdate) ChangesPassword() bool {
	return p.Password != ""
}

// Validate checks the profile form rules.
func (p *ProfileUpdate) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = "nama " + domain.MsgRequired
	}
	validateEmail(fields, p.Email)
	if p.Avatar != nil {
		if msg := domain.CheckImage(p.Avatar.ContentType, len(p.Avatar.Data), MaxAvatarBytes); msg != "" {
			fields["avatar"] = msg
		}
	}
	if p.ChangesPassword() {
		if p.CurrentPassword == "" {
			fields["current_password"] = "password lama " + domain.MsgRequired
		}
		validatePassword(fields, p.Password, p.PasswordConfirmation)
	}

	return domain.NewValidationError(fields)
}

func validateEmail(fields map[string]string, email string) {
	email = strings.TrimSpace(email)
	if email == "" {
		fields["email"] = "email " + domain.MsgRequired
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fields["email"] = "format email " + domain.MsgInvalid
	}
}

func validatePassword(fields map[string]string, password, confirmation string) {
	switch {
	case password == "":
		fields["password"] = "password " + domain.MsgRequired
	case utf8.RuneCountInString(password) < MinPasswordLength:
		fields["password"] = fmt.Sprintf("password minimal %d karakter", MinPasswordLength)
	case password != confirmation:
		fields["password_confirmation"] = "konfirmasi password tidak cocok"
	}
}
