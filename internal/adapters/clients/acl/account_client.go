package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/explorekerinci/web/internal/adapters/clients/acl/account"
	"github.com/explorekerinci/web/internal/adapters/clients/acl/catalog"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/domain/user"
	"github.com/explorekerinci/web/internal/platform/httpclient"
	"github.com/explorekerinci/web/internal/ports"
)

// Compile-time interface check.
var _ ports.AccountClient = (*AccountClient)(nil)

// AccountClient is the outbound adapter for auth, profile and review
// submission. Authenticated calls rely on the bearer token placed on the
// context with [httpclient.WithBearerToken].
type AccountClient struct {
	req *Requester
}

// NewAccountClient creates an AccountClient.
func NewAccountClient(client *httpclient.Client, logger *slog.Logger) *AccountClient {
	return &AccountClient{req: NewRequester(client, logger)}
}

// Login posts to /api/auth/login.
func (c *AccountClient) Login(ctx context.Context, creds user.Credentials) (*user.Auth, error) {
	var dto account.AuthDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   "/api/auth/login",
		Body:   account.ToLoginRequest(&creds),
		Data:   &dto,
	})
	if err != nil {
		return nil, err
	}
	auth := account.ToDomainAuth(&dto)
	return &auth, nil
}

// Register posts to /api/auth/register.
func (c *AccountClient) Register(ctx context.Context, reg user.Registration) (*user.Auth, error) {
	var dto account.AuthDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   "/api/auth/register",
		Body:   account.ToRegisterRequest(&reg),
		Data:   &dto,
	})
	if err != nil {
		return nil, err
	}
	auth := account.ToDomainAuth(&dto)
	return &auth, nil
}

// Logout posts to /api/auth/logout, revoking the token on the context.
func (c *AccountClient) Logout(ctx context.Context) error {
	return c.req.Do(ctx, Call{Method: http.MethodPost, Path: "/api/auth/logout"})
}

// Profile fetches GET /api/user/profile.
func (c *AccountClient) Profile(ctx context.Context) (*user.User, error) {
	var dto account.UserDTO
	if err := c.req.Do(ctx, Call{Method: http.MethodGet, Path: "/api/user/profile", Data: &dto}); err != nil {
		return nil, err
	}
	u := account.ToDomainUser(&dto)
	return &u, nil
}

// UpdateProfile posts a multipart form to /api/user/profile. The avatar is
// sent as the "avatar" file part when present.
func (c *AccountClient) UpdateProfile(ctx context.Context, update user.ProfileUpdate) (*user.User, error) {
	body := &Multipart{Fields: account.ProfileFields(&update)}
	if update.Avatar != nil {
		body.Files = append(body.Files, File{
			Field:       "avatar",
			Filename:    update.Avatar.Filename,
			ContentType: update.Avatar.ContentType,
			Data:        update.Avatar.Data,
		})
	}

	var dto account.UserDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   "/api/user/profile",
		Body:   body,
		Data:   &dto,
	})
	if err != nil {
		return nil, err
	}
	u := account.ToDomainUser(&dto)
	return &u, nil
}

// MyReviews fetches GET /api/user/reviews?page=N.
func (c *AccountClient) MyReviews(ctx context.Context, page int) (*listing.Page[review.Review], error) {
	var (
		dtos []catalog.ReviewDTO
		meta catalog.MetaDTO
	)
	err := c.req.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   "/api/user/reviews",
		Query:  url.Values{"page": {strconv.Itoa(max(page, 1))}},
		Data:   &dtos,
		Meta:   &meta,
	})
	if err != nil {
		return nil, err
	}
	return &listing.Page[review.Review]{
		Items: catalog.ToDomainReviews(dtos),
		Meta:  catalog.ToDomainMeta(&meta, len(dtos)),
	}, nil
}

// SubmitReview posts to /api/reviews.
func (c *AccountClient) SubmitReview(ctx context.Context, sub review.Submission) (*review.Review, error) {
	var dto catalog.ReviewDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   "/api/reviews",
		Body:   account.ToReviewRequest(&sub),
		Data:   &dto,
	})
	if err != nil {
		return nil, err
	}
	r := catalog.ToDomainReview(&dto)
	return &r, nil
}
