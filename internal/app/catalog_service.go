package app

import (
	"context"
	"log/slog"

	appctx "github.com/explorekerinci/web/internal/app/context"
	"github.com/explorekerinci/web/internal/app/fanout"
	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/ports"
)

// Compile-time check that CatalogService implements ports.CatalogService.
var _ ports.CatalogService = (*CatalogService)(nil)

// HomeFeatured is how many destinations the landing page shows.
const HomeFeatured = 6

const categoriesKey = "catalog:categories"

// CatalogService implements ports.CatalogService. Listing pages degrade to
// an empty result when the backend fails instead of surfacing an error.
type CatalogService struct {
	client     ports.CatalogClient
	logger     *slog.Logger
	categories *appctx.DataProvider[[]category.Category]
}

// NewCatalogService creates a CatalogService. A nil logger discards output.
func NewCatalogService(client ports.CatalogClient, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &CatalogService{
		client:     client,
		logger:     logger,
		categories: appctx.NewDataProvider(categoriesKey, client.ListCategories),
	}
}

// Browse fetches the destination page and the categories side by side.
func (s *CatalogService) Browse(ctx context.Context, filter listing.FilterState) *ports.Browse {
	s.logger.InfoContext(ctx, "browsing destinations",
		slog.String("search", filter.Search),
		slog.String("category", filter.Category),
		slog.Int("page", filter.Page),
	)

	var (
		page       *listing.Page[destination.Destination]
		categories []category.Category
	)
	errs := fanout.Settle(ctx,
		func(ctx context.Context) error {
			var err error
			page, err = s.client.ListDestinations(ctx, filter)
			return err
		},
		func(ctx context.Context) error {
			var err error
			categories, err = s.Categories(ctx)
			return err
		},
	)

	out := &ports.Browse{Filter: filter}
	if errs[0] != nil || page == nil {
		s.logger.WarnContext(ctx, "destination list unavailable, showing empty result",
			slog.String("operation", "Browse"),
			slog.Any("error", errs[0]),
		)
		page = listing.EmptyPage[destination.Destination](filter.PerPage)
		out.Degraded = true
	}
	if errs[1] != nil {
		s.logger.WarnContext(ctx, "category list unavailable",
			slog.String("operation", "Browse"),
			slog.Any("error", errs[1]),
		)
		categories = []category.Category{}
	}

	out.Destinations = normalizeImages(page.Items)
	out.Meta = page.Meta.Normalize()
	out.Categories = categories
	return out
}

// Home loads the featured destinations and categories.
func (s *CatalogService) Home(ctx context.Context) *ports.Home {
	b := s.Browse(ctx, listing.FilterState{Page: 1, PerPage: HomeFeatured})
	return &ports.Home{Featured: b.Destinations, Categories: b.Categories}
}

// Destination loads one destination by slug.
func (s *CatalogService) Destination(ctx context.Context, slug string) (*destination.Destination, error) {
	s.logger.InfoContext(ctx, "fetching destination", slog.String("slug", slug))

	d, err := s.client.GetDestination(ctx, slug)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch destination",
			slog.String("operation", "Destination"),
			slog.String("slug", slug),
			slog.Any("error", err),
		)
		return nil, err
	}

	d.Images = normalizeImageURLs(d.Images)
	return d, nil
}

// Categories returns the category list, fetched at most once per request.
func (s *CatalogService) Categories(ctx context.Context) ([]category.Category, error) {
	return s.categories.Get(appctx.FromContext(ctx))
}

func normalizeImages(items []destination.Destination) []destination.Destination {
	for i := range items {
		items[i].Images = normalizeImageURLs(items[i].Images)
	}
	return items
}

func normalizeImageURLs(images []destination.Image) []destination.Image {
	for i := range images {
		images[i].URL = destination.NormalizeImageURL(images[i].URL)
	}
	return images
}
