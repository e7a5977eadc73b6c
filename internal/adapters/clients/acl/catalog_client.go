package acl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/explorekerinci/web/internal/adapters/clients/acl/catalog"
	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/platform/httpclient"
	"github.com/explorekerinci/web/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.CatalogClient = (*CatalogClient)(nil)
	_ ports.HealthChecker = (*CatalogClient)(nil)
)

// CatalogClient is the outbound adapter for the public catalog endpoints.
// It implements [ports.CatalogClient] and, through the shared [Requester],
// [ports.HealthChecker] for the API as a whole.
type CatalogClient struct {
	*Requester
}

// NewCatalogClient creates a CatalogClient. The client's BaseURL should
// point to the API host (e.g. "https://api.explorekerinci.id"); paths carry
// the /api prefix.
func NewCatalogClient(client *httpclient.Client, logger *slog.Logger) *CatalogClient {
	return &CatalogClient{Requester: NewRequester(client, logger)}
}

// ListDestinations fetches GET /api/destinations with search, category,
// page and per_page taken from the filter.
func (c *CatalogClient) ListDestinations(ctx context.Context, filter listing.FilterState) (*listing.Page[destination.Destination], error) {
	var (
		dtos []catalog.DestinationDTO
		meta catalog.MetaDTO
	)
	err := c.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   "/api/destinations",
		Query:  filter.Query(),
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

// GetDestination fetches GET /api/destinations/{slug}.
// Returns [domain.ErrNotFound] when the API answers 404.
func (c *CatalogClient) GetDestination(ctx context.Context, slug string) (*destination.Destination, error) {
	var dto catalog.DestinationDTO
	err := c.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   "/api/destinations/" + url.PathEscape(slug),
		Data:   &dto,
	})
	if err != nil {
		return nil, err
	}

	d := catalog.ToDomainDestination(&dto)
	return &d, nil
}

// ListCategories fetches GET /api/categories.
func (c *CatalogClient) ListCategories(ctx context.Context) ([]category.Category, error) {
	var dtos []catalog.CategoryDTO
	if err := c.Do(ctx, Call{Method: http.MethodGet, Path: "/api/categories", Data: &dtos}); err != nil {
		return nil, err
	}
	return catalog.ToDomainCategories(dtos), nil
}
