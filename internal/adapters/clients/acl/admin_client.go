package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/explorekerinci/web/internal/adapters/clients/acl/catalog"
	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/domain/review"
	"github.com/explorekerinci/web/internal/platform/httpclient"
	"github.com/explorekerinci/web/internal/ports"
)

// Compile-time interface check.
var _ ports.AdminClient = (*AdminClient)(nil)

// AdminClient is the outbound adapter for the /api/admin endpoints. Every
// call needs an administrator's bearer token on the context.
type AdminClient struct {
	req *Requester
}

// NewAdminClient creates an AdminClient.
func NewAdminClient(client *httpclient.Client, logger *slog.Logger) *AdminClient {
	return &AdminClient{req: NewRequester(client, logger)}
}

// --- Destinations ---

// ListDestinations fetches GET /api/admin/destinations?page=N. Drafts and
// inactive destinations are included.
func (c *AdminClient) ListDestinations(ctx context.Context, page int) (*listing.Page[destination.Destination], error) {
	var (
		dtos []catalog.DestinationDTO
		meta catalog.MetaDTO
	)
	err := c.req.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   "/api/admin/destinations",
		Query:  pageQuery(page),
		Data:   &dtos,
		Meta:   &meta,
	})
	if err != nil {
		return nil, err
	}
	return &listing.Page[destination.Destination]{
		Items: catalog.ToDomainDestinations(dtos),
		Meta:  catalog.ToDomainMeta(&meta, len(dtos)),
	}, nil
}

// GetDestination fetches GET /api/admin/destinations/{id}.
func (c *AdminClient) GetDestination(ctx context.Context, id int64) (*destination.Destination, error) {
	var dto catalog.DestinationDTO
	if err := c.req.Do(ctx, Call{Method: http.MethodGet, Path: destinationPath(id), Data: &dto}); err != nil {
		return nil, err
	}
	d := catalog.ToDomainDestination(&dto)
	return &d, nil
}

// CreateDestination posts to /api/admin/destinations.
func (c *AdminClient) CreateDestination(ctx context.Context, payload destination.Payload) (*destination.Destination, error) {
	return c.saveDestination(ctx, http.MethodPost, "/api/admin/destinations", &payload)
}

// UpdateDestination puts to /api/admin/destinations/{id}.
func (c *AdminClient) UpdateDestination(ctx context.Context, id int64, payload destination.Payload) (*destination.Destination, error) {
	return c.saveDestination(ctx, http.MethodPut, destinationPath(id), &payload)
}

func (c *AdminClient) saveDestination(ctx context.Context, method, path string, payload *destination.Payload) (*destination.Destination, error) {
	var dto catalog.DestinationDTO
	err := c.req.Do(ctx, Call{
		Method: method,
		Path:   path,
		Body:   catalog.ToDestinationRequest(payload),
		Data:   &dto,
	})
	if err != nil {
		return nil, err
	}
	d := catalog.ToDomainDestination(&dto)
	return &d, nil
}

// DeleteDestination sends DELETE /api/admin/destinations/{id}.
func (c *AdminClient) DeleteDestination(ctx context.Context, id int64) error {
	return c.req.Do(ctx, Call{Method: http.MethodDelete, Path: destinationPath(id)})
}

// UploadImage posts the photo as the multipart "image" part to
// /api/admin/destinations/{id}/images.
func (c *AdminClient) UploadImage(ctx context.Context, destinationID int64, upload destination.Upload) (*destination.Image, error) {
	body := &Multipart{Files: []File{{
		Field:       "image",
		Filename:    upload.Filename,
		ContentType: upload.ContentType,
		Data:        upload.Data,
	}}}

	var dto catalog.ImageDTO
	err := c.req.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   destinationPath(destinationID) + "/images",
		Body:   body,
		Data:   &dto,
	})
	if err != nil {
		return nil, err
	}
	img := catalog.ToDomainImage(&dto)
	return &img, nil
}

// DeleteImage sends DELETE /api/admin/destinations/{id}/images/{imageId}.
func (c *AdminClient) DeleteImage(ctx context.Context, destinationID, imageID int64) error {
	path := fmt.Sprintf("%s/images/%d", destinationPath(destinationID), imageID)
	return c.req.Do(ctx, Call{Method: http.MethodDelete, Path: path})
}

// --- Categories ---

// ListCategories fetches GET /api/admin/categories, which includes
// destinations_count.
func (c *AdminClient) ListCategories(ctx context.Context) ([]category.Category, error) {
	var dtos []catalog.CategoryDTO
	if err := c.req.Do(ctx, Call{Method: http.MethodGet, Path: "/api/admin/categories", Data: &dtos}); err != nil {
		return nil, err
	}
	return catalog.ToDomainCategories(dtos), nil
}

// CreateCategory posts to /api/admin/categories. The API derives the slug.
func (c *AdminClient) CreateCategory(ctx context.Context, name string) (*category.Category, error) {
	return c.saveCategory(ctx, http.MethodPost, "/api/admin/categories", name)
}

// UpdateCategory puts a new name to /api/admin/categories/{id}.
func (c *AdminClient) UpdateCategory(ctx context.Context, id int64, name string) (*category.Category, error) {
	return c.saveCategory(ctx, http.MethodPut, categoryPath(id), name)
}

func (c *AdminClient) saveCategory(ctx context.Context, method, path, name string) (*category.Category, error) {
	var dto catalog.CategoryDTO
	err := c.req.Do(ctx, Call{
		Method: method,
		Path:   path,
		Body:   catalog.CategoryRequestDTO{Name: name},
		Data:   &dto,
	})
	if err != nil {
		return nil, err
	}
	cat := catalog.ToDomainCategory(&dto)
	return &cat, nil
}

// DeleteCategory sends DELETE /api/admin/categories/{id}.
func (c *AdminClient) DeleteCategory(ctx context.Context, id int64) error {
	return c.req.Do(ctx, Call{Method: http.MethodDelete, Path: categoryPath(id)})
}

// --- Reviews ---

// ListReviews fetches GET /api/admin/reviews?page=N[&status=...].
func (c *AdminClient) ListReviews(ctx context.Context, status review.Status, page int) (*listing.Page[review.Review], error) {
	q := pageQuery(page)
	if status != review.StatusAll {
		q.Set("status", status.String())
	}

	var (
		dtos []catalog.ReviewDTO
		meta catalog.MetaDTO
	)
	err := c.req.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   "/api/admin/reviews",
		Query:  q,
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

// ApproveReview sends PATCH /api/admin/reviews/{id}/approve.
func (c *AdminClient) ApproveReview(ctx context.Context, id int64) error {
	return c.req.Do(ctx, Call{Method: http.MethodPatch, Path: reviewPath(id) + "/approve"})
}

// RejectReview sends PATCH /api/admin/reviews/{id}/reject, returning the
// review to the pending queue.
func (c *AdminClient) RejectReview(ctx context.Context, id int64) error {
	return c.req.Do(ctx, Call{Method: http.MethodPatch, Path: reviewPath(id) + "/reject"})
}

// DeleteReview sends DELETE /api/admin/reviews/{id}.
func (c *AdminClient) DeleteReview(ctx context.Context, id int64) error {
	return c.req.Do(ctx, Call{Method: http.MethodDelete, Path: reviewPath(id)})
}

func destinationPath(id int64) string {
	return "/api/admin/destinations/" + strconv.FormatInt(id, 10)
}

func categoryPath(id int64) string {
	return "/api/admin/categories/" + strconv.FormatInt(id, 10)
}

func reviewPath(id int64) string {
	return "/api/admin/reviews/" + strconv.FormatInt(id, 10)
}

func pageQuery(page int) url.Values {
	return url.Values{"page": {strconv.Itoa(max(page, 1))}}
}
