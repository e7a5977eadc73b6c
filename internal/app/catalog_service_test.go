package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	appctx "github.com/explorekerinci/web/internal/app/context"
	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/mocks"
)

func TestNewCatalogService_NilLogger(t *testing.T) {
	t.Parallel()
	svc := NewCatalogService(mocks.NewMockCatalogClient(t), nil)
	if svc.logger == nil {
		t.Fatal("NewCatalogService(nil logger) should create a no-op logger, got nil")
	}
}

func TestCatalogService_Browse(t *testing.T) {
	t.Parallel()

	filter := listing.FilterState{Search: "danau", Category: "danau-sungai", Page: 1, PerPage: 9}

	t.Run("returns destinations and categories", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCatalogClient(t)
		svc := NewCatalogService(client, discardLogger())

		client.EXPECT().ListDestinations(mock.Anything, filter).Return(destinationPage(validDestination()), nil)
		client.EXPECT().ListCategories(mock.Anything).Return(testCategories(), nil)

		got := svc.Browse(context.Background(), filter)

		require.Len(t, got.Destinations, 1)
		assert.False(t, got.Degraded)
		assert.Equal(t, filter, got.Filter)
		assert.Len(t, got.Categories, 2)
		assert.Equal(t, "https://cdn.example.com/gt.jpg", got.Destinations[0].Images[0].URL)
	})

	t.Run("backend failure degrades to empty page", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCatalogClient(t)
		svc := NewCatalogService(client, discardLogger())

		client.EXPECT().ListDestinations(mock.Anything, filter).Return(nil, domain.ErrUnavailable)
		client.EXPECT().ListCategories(mock.Anything).Return(testCategories(), nil)

		got := svc.Browse(context.Background(), filter)

		assert.True(t, got.Degraded)
		assert.Empty(t, got.Destinations)
		assert.Equal(t, listing.Meta{CurrentPage: 1, LastPage: 1, PerPage: 9, Total: 0}, got.Meta)
		assert.Len(t, got.Categories, 2, "categories still render")
	})

	t.Run("category failure yields empty list", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCatalogClient(t)
		svc := NewCatalogService(client, discardLogger())

		client.EXPECT().ListDestinations(mock.Anything, filter).Return(destinationPage(validDestination()), nil)
		client.EXPECT().ListCategories(mock.Anything).Return(nil, errors.New("timeout"))

		got := svc.Browse(context.Background(), filter)

		assert.False(t, got.Degraded)
		assert.NotNil(t, got.Categories)
		assert.Empty(t, got.Categories)
	})

	t.Run("normalizes impossible metadata", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCatalogClient(t)
		svc := NewCatalogService(client, discardLogger())

		page := destinationPage()
		page.Meta = listing.Meta{CurrentPage: 8, LastPage: 0, PerPage: 9}
		client.EXPECT().ListDestinations(mock.Anything, filter).Return(page, nil)
		client.EXPECT().ListCategories(mock.Anything).Return(testCategories(), nil)

		got := svc.Browse(context.Background(), filter)
		assert.Equal(t, 1, got.Meta.CurrentPage)
		assert.Equal(t, 1, got.Meta.LastPage)
	})
}

func TestCatalogService_Home(t *testing.T) {
	t.Parallel()
	client := mocks.NewMockCatalogClient(t)
	svc := NewCatalogService(client, discardLogger())

	client.EXPECT().
		ListDestinations(mock.Anything, listing.FilterState{Page: 1, PerPage: HomeFeatured}).
		Return(destinationPage(validDestination()), nil)
	client.EXPECT().ListCategories(mock.Anything).Return(testCategories(), nil)

	got := svc.Home(context.Background())
	assert.Len(t, got.Featured, 1)
	assert.Len(t, got.Categories, 2)
}

func TestCatalogService_Destination(t *testing.T) {
	t.Parallel()

	t.Run("returns normalized destination", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCatalogClient(t)
		svc := NewCatalogService(client, discardLogger())

		d := validDestination()
		client.EXPECT().GetDestination(mock.Anything, "danau-gunung-tujuh").Return(&d, nil)

		got, err := svc.Destination(context.Background(), "danau-gunung-tujuh")
		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/gt.jpg", got.Images[0].URL)
	})

	t.Run("propagates not found", func(t *testing.T) {
		t.Parallel()
		client := mocks.NewMockCatalogClient(t)
		svc := NewCatalogService(client, discardLogger())

		client.EXPECT().GetDestination(mock.Anything, "hilang").Return(nil, domain.ErrNotFound)

		_, err := svc.Destination(context.Background(), "hilang")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestCatalogService_CategoriesFetchedOncePerRequest(t *testing.T) {
	t.Parallel()
	client := mocks.NewMockCatalogClient(t)
	svc := NewCatalogService(client, discardLogger())

	client.EXPECT().ListCategories(mock.Anything).Return(testCategories(), nil).Once()
	client.EXPECT().ListDestinations(mock.Anything, mock.Anything).Return(destinationPage(), nil)

	ctx := appctx.WithRequestContext(context.Background(), appctx.New(context.Background()))

	_ = svc.Browse(ctx, listing.FilterState{Page: 1, PerPage: 9})
	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, testCategories(), cats)
	assert.Equal(t, "air-terjun", category.BySlug(cats, "air-terjun").Slug)
}
