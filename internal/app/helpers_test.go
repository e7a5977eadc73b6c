package app

import (
	"log/slog"
	"time"

	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/listing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func validDestination() destination.Destination {
	rating := 4.6
	return destination.Destination{
		ID:          1,
		Name:        "Danau Gunung Tujuh",
		Slug:        "danau-gunung-tujuh",
		Description: "Danau vulkanik tertinggi di Asia Tenggara.",
		Location:    "Kayu Aro, Kerinci",
		TicketPrice: 15000,
		Status:      destination.StatusActive,
		RatingAvg:   &rating,
		ReviewCount: 12,
		Images:      []destination.Image{{ID: 1, URL: "http://cdn.example.com/gt.jpg", IsPrimary: true}},
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testCategories() []category.Category {
	return []category.Category{
		{ID: 1, Name: "Air Terjun", Slug: "air-terjun"},
		{ID: 2, Name: "Danau & Sungai", Slug: "danau-sungai"},
	}
}

func destinationPage(items ...destination.Destination) *listing.Page[destination.Destination] {
	return &listing.Page[destination.Destination]{
		Items: items,
		Meta:  listing.Meta{CurrentPage: 1, LastPage: 1, PerPage: 9, Total: len(items)},
	}
}
