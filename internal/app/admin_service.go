package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/explorekerinci/web/internal/app/fanout"
	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/ports"
)

// Compile-time check that AdminService implements ports.AdminService.
var _ ports.AdminService = (*AdminService)(nil)

// AdminService implements ports.AdminService on top of the back-office
// endpoints. Authorization is enforced by the backend; the HTTP layer only
// keeps non-admins from reaching these pages.
type AdminService struct {
	client ports.AdminClient
	logger *slog.Logger
}

// NewAdminService creates an AdminService. A nil logger discards output.
func NewAdminService(client ports.AdminClient, logger *slog.Logger) *AdminService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AdminService{client: client, logger: logger}
}

// Dashboard loads the three counters concurrently. A counter that fails is
// left nil and rendered as unavailable.
func (s *AdminService) Dashboard(ctx context.Context) *ports.Dashboard {
	var destinations, pending, categories int

	errs := fanout.Settle(ctx,
		func(ctx context.Context) error {
			p, err := s.client.ListDestinations(ctx, 1)
			if err == nil {
				destinations = p.Meta.Total
			}
			return err
		},
		func(ctx context.Context) error {
			p, err := s.client.ListReviews(ctx, review.StatusPending, 1)
			if err == nil {
				pending = p.Meta.Total
			}
			return err
		},
		func(ctx context.Context) error {
			c, err := s.client.ListCategories(ctx)
			if err == nil {
				categories = len(c)
			}
			return err
		},
	)

	d := &ports.Dashboard{}
	counters := []struct {
		name   string
		value  int
		target **int
	}{
		{"destinations", destinations, &d.Destinations},
		{"pending_reviews", pending, &d.PendingReviews},
		{"categories", categories, &d.Categories},
	}
	for i, c := range counters {
		if errs[i] != nil {
			s.logger.WarnContext(ctx, "dashboard counter unavailable",
				slog.String("operation", "Dashboard"),
				slog.String("counter", c.name),
				slog.Any("error", errs[i]),
			)
			continue
		}
		*c.target = &c.value
	}
	return d
}

// Destinations lists destinations of every status.
func (s *AdminService) Destinations(ctx context.Context, page int) (*listing.Page[destination.Destination], error) {
	p, err := s.client.ListDestinations(ctx, max(page, 1))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list destinations",
			slog.String("operation", "Destinations"),
			slog.Int("page", page),
			slog.Any("error", err),
		)
		return nil, err
	}
	return p, nil
}

// Destination loads one destination for editing.
func (s *AdminService) Destination(ctx context.Context, id int64) (*destination.Destination, error) {
	d, err := s.client.GetDestination(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch destination",
			slog.String("operation", "Destination"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	d.Images = normalizeImageURLs(d.Images)
	return d, nil
}

// CreateDestination validates and creates a destination.
func (s *AdminService) CreateDestination(ctx context.Context, p destination.Payload) (*destination.Destination, error) {
	p = trimPayload(p)
	s.logger.InfoContext(ctx, "creating destination", slog.String("name", p.Name))

	if err := p.Validate(); err != nil {
		return nil, err
	}

	created, err := s.client.CreateDestination(ctx, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create destination",
			slog.String("operation", "CreateDestination"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// UpdateDestination validates and updates a destination.
func (s *AdminService) UpdateDestination(ctx context.Context, id int64, p destination.Payload) (*destination.Destination, error) {
	p = trimPayload(p)
	s.logger.InfoContext(ctx, "updating destination", slog.Int64("id", id))

	if err := p.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateDestination(ctx, id, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update destination",
			slog.String("operation", "UpdateDestination"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteDestination removes a destination with its photos and reviews.
func (s *AdminService) DeleteDestination(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting destination", slog.Int64("id", id))

	if err := s.client.DeleteDestination(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete destination",
			slog.String("operation", "DeleteDestination"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// UploadImage validates and uploads a photo.
func (s *AdminService) UploadImage(ctx context.Context, destinationID int64, upload destination.Upload) (*destination.Image, error) {
	s.logger.InfoContext(ctx, "uploading destination image",
		slog.Int64("destination_id", destinationID),
		slog.String("content_type", upload.ContentType),
		slog.Int("bytes", len(upload.Data)),
	)

	if err := upload.Validate(); err != nil {
		return nil, err
	}

	img, err := s.client.UploadImage(ctx, destinationID, upload)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to upload image",
			slog.String("operation", "UploadImage"),
			slog.Int64("destination_id", destinationID),
			slog.Any("error", err),
		)
		return nil, err
	}
	img.URL = destination.NormalizeImageURL(img.URL)
	return img, nil
}

// DeleteImage removes a photo.
func (s *AdminService) DeleteImage(ctx context.Context, destinationID, imageID int64) error {
	s.logger.InfoContext(ctx, "deleting destination image",
		slog.Int64("destination_id", destinationID),
		slog.Int64("image_id", imageID),
	)

	if err := s.client.DeleteImage(ctx, destinationID, imageID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete image",
			slog.String("operation", "DeleteImage"),
			slog.Int64("destination_id", destinationID),
			slog.Int64("image_id", imageID),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Categories lists categories with their destination counts.
func (s *AdminService) Categories(ctx context.Context) ([]category.Category, error) {
	cats, err := s.client.ListCategories(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list categories",
			slog.String("operation", "Categories"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return cats, nil
}

// CreateCategory validates and creates a category.
func (s *AdminService) CreateCategory(ctx context.Context, name string) (*category.Category, error) {
	c := category.Category{Name: strings.TrimSpace(name)}
	s.logger.InfoContext(ctx, "creating category", slog.String("name", c.Name))

	if err := c.Validate(); err != nil {
		return nil, err
	}

	created, err := s.client.CreateCategory(ctx, c.Name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create category",
			slog.String("operation", "CreateCategory"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// RenameCategory validates and renames a category.
func (s *AdminService) RenameCategory(ctx context.Context, id int64, name string) (*category.Category, error) {
	c := category.Category{ID: id, Name: strings.TrimSpace(name)}
	s.logger.InfoContext(ctx, "renaming category", slog.Int64("id", id))

	if err := c.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.client.UpdateCategory(ctx, id, c.Name)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to rename category",
			slog.String("operation", "RenameCategory"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return updated, nil
}

// DeleteCategory removes a category. Destinations keep their other categories.
func (s *AdminService) DeleteCategory(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "deleting category", slog.Int64("id", id))

	if err := s.client.DeleteCategory(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete category",
			slog.String("operation", "DeleteCategory"),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

// Reviews lists the moderation queue.
func (s *AdminService) Reviews(ctx context.Context, status review.Status, page int) (*listing.Page[review.Review], error) {
	if !status.IsValid() {
		return nil, domain.NewValidationError(map[string]string{"status": domain.MsgInvalid})
	}

	p, err := s.client.ListReviews(ctx, status, max(page, 1))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list reviews",
			slog.String("operation", "Reviews"),
			slog.String("status", status.String()),
			slog.Any("error", err),
		)
		return nil, err
	}
	return p, nil
}

// ApproveReview publishes a review.
func (s *AdminService) ApproveReview(ctx context.Context, id int64) error {
	return s.moderate(ctx, "ApproveReview", id, s.client.ApproveReview)
}

// RejectReview withdraws a review from publication.
func (s *AdminService) RejectReview(ctx context.Context, id int64) error {
	return s.moderate(ctx, "RejectReview", id, s.client.RejectReview)
}

// DeleteReview removes a review.
func (s *AdminService) DeleteReview(ctx context.Context, id int64) error {
	return s.moderate(ctx, "DeleteReview", id, s.client.DeleteReview)
}

func (s *AdminService) moderate(ctx context.Context, op string, id int64, fn func(context.Context, int64) error) error {
	s.logger.InfoContext(ctx, "moderating review", slog.String("operation", op), slog.Int64("id", id))

	if err := fn(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "review moderation failed",
			slog.String("operation", op),
			slog.Int64("id", id),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func trimPayload(p destination.Payload) destination.Payload {
	p.Name = strings.TrimSpace(p.Name)
	p.Description = strings.TrimSpace(p.Description)
	p.Location = strings.TrimSpace(p.Location)
	p.MapURL = strings.TrimSpace(p.MapURL)
	p.OpenHours = strings.TrimSpace(p.OpenHours)
	return p
}
