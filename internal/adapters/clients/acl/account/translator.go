package account

import (
	"strings"

	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/domain/user"
)

// ToDomainUser converts a UserDTO. Unknown roles are treated as visitors.
func ToDomainUser(dto *UserDTO) user.User {
	role := user.RoleUser
	if user.Role(dto.Role) == user.RoleAdmin {
		role = user.RoleAdmin
	}
	u := user.User{ID: dto.ID, Name: dto.Name, Email: dto.Email, Role: role}
	if dto.AvatarURL != nil {
		u.AvatarURL = *dto.AvatarURL
	}
	return u
}

// ToDomainAuth converts an AuthDTO.
func ToDomainAuth(dto *AuthDTO) user.Auth {
	return user.Auth{User: ToDomainUser(&dto.User), Token: dto.Token}
}

// ToLoginRequest converts credentials to the login body.
func ToLoginRequest(c *user.Credentials) LoginRequestDTO {
	return LoginRequestDTO{Email: c.Email, Password: c.Password}
}

// ToRegisterRequest converts a registration to the register body.
func ToRegisterRequest(r *user.Registration) RegisterRequestDTO {
	return RegisterRequestDTO{
		Name:                 r.Name,
		Email:                r.Email,
		Password:             r.Password,
		PasswordConfirmation: r.PasswordConfirmation,
	}
}

// ToReviewRequest converts a submission to the review body. The comment is
// sent trimmed.
func ToReviewRequest(s *review.Submission) ReviewRequestDTO {
	return ReviewRequestDTO{
		DestinationID: s.DestinationID,
		Rating:        s.Rating,
		Comment:       strings.TrimSpace(s.Comment),
	}
}

// ProfileFields lists the text parts of the multipart profile update in
// the order the form sends them. Password fields are only included when the
// password changes.
func ProfileFields(p *user.ProfileUpdate) [][2]string {
	fields := [][2]string{
		{"name", p.Name},
		{"email", p.Email},
	}
	if p.ChangesPassword() {
		fields = append(fields,
			[2]string{"current_password", p.CurrentPassword},
			[2]string{"password", p.Password},
			[2]string{"password_confirmation", p.PasswordConfirmation},
		)
	}
	return fields
}
