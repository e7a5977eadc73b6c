package ports

import (
	"context"

	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/domain/user"
)

// Browse is everything the listing page renders for one URL.
// Degraded is set when the destination fetch failed and the empty fallback
// page is shown instead.
type Browse struct {
	Filter       listing.FilterState
	Destinations []destination.Destination
	Meta         listing.Meta
	Categories   []category.Category
	Degraded     bool
}

// Home is the landing page content.
type Home struct {
	Featured   []destination.Destination
	Categories []category.Category
}

// CatalogService defines the service port for the public pages.
// Implemented by the application layer; called by inbound adapters (handlers).
type CatalogService interface {
	// Browse loads the listing for a filter. Backend failures degrade to an
	// empty result set; Browse never returns an error.
	Browse(ctx context.Context, filter listing.FilterState) *Browse

	// Home loads the featured destinations and categories with the same
	// fallback policy as Browse.
	Home(ctx context.Context) *Home

	// Destination loads the detail page.
	// Returns domain.ErrNotFound if the slug is unknown.
	Destination(ctx context.Context, slug string) (*destination.Destination, error)

	// Categories returns the category list, fetched at most once per request.
	Categories(ctx context.Context) ([]category.Category, error)
}

// AccountService defines the service port for sign-in and the visitor's
// own profile and reviews.
type AccountService interface {
	// Login validates the form and signs in.
	// Returns domain.ErrValidation for missing fields or rejected credentials.
	Login(ctx context.Context, creds user.Credentials) (*user.Auth, error)
	Register(ctx context.Context, reg user.Registration) (*user.Auth, error)

	// Logout revokes the backend token. Failures are logged, not returned:
	// the local session is cleared either way.
	Logout(ctx context.Context)

	Profile(ctx context.Context) (*user.User, error)
	UpdateProfile(ctx context.Context, update user.ProfileUpdate) (*user.User, error)
	MyReviews(ctx context.Context, page int) (*listing.Page[review.Review], error)
	SubmitReview(ctx context.Context, sub review.Submission) (*review.Review, error)
}

// Dashboard holds the back-office counters. A nil counter could not be loaded.
type Dashboard struct {
	Destinations   *int
	PendingReviews *int
	Categories     *int
}

// AdminService defines the service port for the back-office. Every write
// validates its payload before calling the backend.
type AdminService interface {
	Dashboard(ctx context.Context) *Dashboard

	Destinations(ctx context.Context, page int) (*listing.Page[destination.Destination], error)
	Destination(ctx context.Context, id int64) (*destination.Destination, error)
	CreateDestination(ctx context.Context, payload destination.Payload) (*destination.Destination, error)
	UpdateDestination(ctx context.Context, id int64, payload destination.Payload) (*destination.Destination, error)
	DeleteDestination(ctx context.Context, id int64) error
	UploadImage(ctx context.Context, destinationID int64, upload destination.Upload) (*destination.Image, error)
	DeleteImage(ctx context.Context, destinationID, imageID int64) error

	Categories(ctx context.Context) ([]category.Category, error)
	CreateCategory(ctx context.Context, name string) (*category.Category, error)
	RenameCategory(ctx context.Context, id int64, name string) (*category.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	Reviews(ctx context.Context, status review.Status, page int) (*listing.Page[review.Review], error)
	ApproveReview(ctx context.Context, id int64) error
	RejectReview(ctx context.Context, id int64) error
	DeleteReview(ctx context.Context, id int64) error
}
