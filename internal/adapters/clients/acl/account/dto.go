// Package account implements the Anti-Corruption Layer translators for the
// API's auth, profile and review submission resources.
package account

// UserDTO matches the API's User schema.
type UserDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatar_url"`
	Role      string  `json:"role"`
}

// AuthDTO matches the data member of /auth/login and /auth/register.
type AuthDTO struct {
	User  UserDTO `json:"user"`
	Token string  `json:"token"`
}

// LoginRequestDTO is the /auth/login body.
type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequestDTO is the /auth/register body.
type RegisterRequestDTO struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// ReviewRequestDTO is the /reviews body.
type ReviewRequestDTO struct {
	DestinationID int64  `json:"destination_id"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment"`
}
