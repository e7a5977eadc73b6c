package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/domain/user"
	"github.com/explorekerinci/web/internal/ports"
)

// Compile-time check that AccountService implements ports.AccountService.
var _ ports.AccountService = (*AccountService)(nil)

// AccountService implements ports.AccountService. Forms are validated here
// with the same rules the backend applies, so obvious mistakes never leave
// the server.
type AccountService struct {
	client ports.AccountClient
	logger *slog.Logger
}

// MsgBadCredentials is shown when the API rejects a login with 401.
const MsgBadCredentials = "Email atau password salah."

// NewAccountService creates an AccountService. A nil logger discards output.
func NewAccountService(client ports.AccountClient, logger *slog.Logger) *AccountService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AccountService{client: client, logger: logger}
}

// Login validates the credentials and exchanges them for a token.
func (s *AccountService) Login(ctx context.Context, creds user.Credentials) (*user.Auth, error) {
	creds.Email = strings.TrimSpace(creds.Email)

	if err := creds.Validate(); err != nil {
		return nil, err
	}

	auth, err := s.client.Login(ctx, creds)
	if err != nil {
		s.logger.WarnContext(ctx, "login failed",
			slog.String("operation", "Login"),
			slog.Any("error", err),
		)
		if errors.Is(err, domain.ErrUnauthorized) {
			// Wrong credentials, not an expired session.
			return nil, &domain.ValidationError{Message: MsgBadCredentials}
		}
		return nil, err
	}

	return auth, nil
}

// Register validates the form and creates the account.
func (s *AccountService) Register(ctx context.Context, reg user.Registration) (*user.Auth, error) {
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Email = strings.TrimSpace(reg.Email)

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	auth, err := s.client.Register(ctx, reg)
	if err != nil {
		s.logger.WarnContext(ctx, "registration failed",
			slog.String("operation", "Register"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return auth, nil
}

// Logout revokes the backend token. The caller clears its session whatever
// happens here.
func (s *AccountService) Logout(ctx context.Context) {
	if err := s.client.Logout(ctx); err != nil {
		s.logger.WarnContext(ctx, "token revocation failed",
			slog.String("operation", "Logout"),
			slog.Any("error", err),
		)
	}
}

// Profile returns the signed-in user as the backend currently knows it.
func (s *AccountService) Profile(ctx context.Context) (*user.User, error) {
	u, err := s.client.Profile(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch profile",
			slog.String("operation", "Profile"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return u, nil
}

// UpdateProfile validates and sends a profile update.
func (s *AccountService) UpdateProfile(ctx context.Context, update user.ProfileUpdate) (*user.User, error) {
	update.Name = strings.TrimSpace(update.Name)
	update.Email = strings.TrimSpace(update.Email)
	s.logger.InfoContext(ctx, "updating profile",
		slog.Bool("password_change", update.ChangesPassword()),
		slog.Bool("avatar", update.Avatar != nil),
	)

	if err := update.Validate(); err != nil {
		return nil, err
	}

	u, err := s.client.UpdateProfile(ctx, update)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update profile",
			slog.String("operation", "UpdateProfile"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return u, nil
}

// MyReviews returns the signed-in user's reviews.
func (s *AccountService) MyReviews(ctx context.Context, page int) (*listing.Page[review.Review], error) {
	page = max(page, 1)

	reviews, err := s.client.MyReviews(ctx, page)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list own reviews",
			slog.String("operation", "MyReviews"),
			slog.Int("page", page),
			slog.Any("error", err),
		)
		return nil, err
	}
	return reviews, nil
}

// SubmitReview validates and posts a review. The comment is sent trimmed.
func (s *AccountService) SubmitReview(ctx context.Context, sub review.Submission) (*review.Review, error) {
	sub.Comment = strings.TrimSpace(sub.Comment)
	s.logger.InfoContext(ctx, "submitting review",
		slog.Int64("destination_id", sub.DestinationID),
		slog.Int("rating", sub.Rating),
	)

	if err := sub.Validate(); err != nil {
		return nil, err
	}

	r, err := s.client.SubmitReview(ctx, sub)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to submit review",
			slog.String("operation", "SubmitReview"),
			slog.Int64("destination_id", sub.DestinationID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return r, nil
}
