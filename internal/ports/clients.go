package ports

import (
	"context"

	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/domain/user"
)

// CatalogClient defines the client port for the public catalog endpoints of
// the backend. Implemented by the ACL adapter; called by the application layer.
type CatalogClient interface {
	// ListDestinations returns one page of active destinations matching the
	// filter. Unknown category slugs yield an empty page, not an error.
	ListDestinations(ctx context.Context, filter listing.FilterState) (*listing.Page[destination.Destination], error)

	// GetDestination returns a destination with images, categories and
	// approved reviews.
	// Returns domain.ErrNotFound if no active destination has the slug.
	GetDestination(ctx context.Context, slug string) (*destination.Destination, error)

	// ListCategories returns every category.
	ListCategories(ctx context.Context) ([]category.Category, error)
}

// AccountClient defines the client port for authentication and the
// signed-in visitor's own resources. Calls other than Login and Register
// require a bearer token on the context.
type AccountClient interface {
	// Login exchanges credentials for a token.
	// Returns a *domain.ValidationError when the backend rejects them.
	Login(ctx context.Context, creds user.Credentials) (*user.Auth, error)

	// Register creates an account and signs it in.
	Register(ctx context.Context, reg user.Registration) (*user.Auth, error)

	// Logout revokes the current token.
	Logout(ctx context.Context) error

	// Profile returns the signed-in user.
	// Returns domain.ErrUnauthorized if the token is missing or expired.
	Profile(ctx context.Context) (*user.User, error)

	// UpdateProfile sends a multipart update, including the avatar when set.
	UpdateProfile(ctx context.Context, update user.ProfileUpdate) (*user.User, error)

	// MyReviews returns the signed-in user's reviews, pending ones included.
	MyReviews(ctx context.Context, page int) (*listing.Page[review.Review], error)

	// SubmitReview posts a review. It stays pending until moderated.
	SubmitReview(ctx context.Context, sub review.Submission) (*review.Review, error)
}

// AdminClient defines the client port for the back-office endpoints.
// Every call requires an administrator's bearer token on the context.
type AdminClient interface {
	ListDestinations(ctx context.Context, page int) (*listing.Page[destination.Destination], error)
	GetDestination(ctx context.Context, id int64) (*destination.Destination, error)
	CreateDestination(ctx context.Context, payload destination.Payload) (*destination.Destination, error)
	UpdateDestination(ctx context.Context, id int64, payload destination.Payload) (*destination.Destination, error)
	DeleteDestination(ctx context.Context, id int64) error

	// UploadImage attaches a photo. The first photo becomes the primary one.
	UploadImage(ctx context.Context, destinationID int64, upload destination.Upload) (*destination.Image, error)
	DeleteImage(ctx context.Context, destinationID, imageID int64) error

	// ListCategories returns categories with DestinationsCount populated.
	ListCategories(ctx context.Context) ([]category.Category, error)
	CreateCategory(ctx context.Context, name string) (*category.Category, error)
	UpdateCategory(ctx context.Context, id int64, name string) (*category.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	// ListReviews returns the moderation queue. review.StatusAll lists everything.
	ListReviews(ctx context.Context, status review.Status, page int) (*listing.Page[review.Review], error)
	ApproveReview(ctx context.Context, id int64) error
	RejectReview(ctx context.Context, id int64) error
	DeleteReview(ctx context.Context, id int64) error
}
