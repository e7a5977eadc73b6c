package catalog

import (
	"math"
	"time"

	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/destination"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/domain/review"
)

// ParseTime parses the API's ISO-8601 timestamps ("2026-08-17T03:00:00.000000Z").
// Unparseable or empty values yield the zero time.
func ParseTime(raw string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}

// ToDomainMeta converts the pagination block. A nil or zero block (the
// response had no meta) describes a single page holding all items.
func ToDomainMeta(dto *MetaDTO, items int) listing.Meta {
	if dto == nil || *dto == (MetaDTO{}) {
		return listing.Meta{CurrentPage: 1, LastPage: 1, PerPage: items, Total: items}
	}
	return listing.Meta{
		CurrentPage: dto.CurrentPage,
		LastPage:    dto.LastPage,
		PerPage:     dto.PerPage,
		Total:       dto.Total,
	}
}

// ToDomainCategory converts a CategoryDTO.
func ToDomainCategory(dto *CategoryDTO) category.Category {
	return category.Category{
		ID:                dto.ID,
		Name:              dto.Name,
		Slug:              dto.Slug,
		DestinationsCount: dto.DestinationsCount,
	}
}

// ToDomainCategories converts a category list.
func ToDomainCategories(dtos []CategoryDTO) []category.Category {
	out := make([]category.Category, len(dtos))
	for i := range dtos {
		out[i] = ToDomainCategory(&dtos[i])
	}
	return out
}

// ToDomainImage converts an ImageDTO.
func ToDomainImage(dto *ImageDTO) destination.Image {
	return destination.Image{ID: dto.ID, URL: dto.ImageURL, IsPrimary: dto.IsPrimary}
}

// ToDomainReview converts a ReviewDTO. A missing user (deleted account)
// leaves Author nil.
func ToDomainReview(dto *ReviewDTO) review.Review {
	r := review.Review{
		ID:        dto.ID,
		Rating:    dto.Rating,
		Comment:   dto.Comment,
		CreatedAt: ParseTime(dto.CreatedAt),
	}
	if dto.ApprovedAt != nil {
		if t := ParseTime(*dto.ApprovedAt); !t.IsZero() {
			r.ApprovedAt = &t
		}
	}
	if dto.User != nil {
		r.Author = &review.Author{ID: dto.User.ID, Name: dto.User.Name, AvatarURL: deref(dto.User.AvatarURL)}
	}
	if dto.Destination != nil {
		r.Destination = &review.DestinationRef{
			ID:   dto.Destination.ID,
			Name: dto.Destination.Name,
			Slug: dto.Destination.Slug,
		}
	}
	return r
}

// ToDomainReviews converts a review list.
func ToDomainReviews(dtos []ReviewDTO) []review.Review {
	out := make([]review.Review, len(dtos))
	for i := range dtos {
		out[i] = ToDomainReview(&dtos[i])
	}
	return out
}

// ToDomainDestination converts a DestinationDTO. Ticket prices arrive as
// decimals and are rounded to whole rupiah.
func ToDomainDestination(dto *DestinationDTO) destination.Destination {
	d := destination.Destination{
		ID:          dto.ID,
		Name:        dto.Name,
		Slug:        dto.Slug,
		Description: dto.Description,
		Location:    dto.Location,
		MapURL:      deref(dto.MapURL),
		TicketPrice: int64(math.Round(dto.TicketPrice.Value)),
		OpenHours:   deref(dto.OpenHours),
		Status:      destination.Status(dto.Status),
		ReviewCount: dto.ReviewCount,
		Categories:  ToDomainCategories(dto.Categories),
		Images:      make([]destination.Image, len(dto.Images)),
		CreatedAt:   ParseTime(dto.CreatedAt),
	}
	if dto.RatingAvg.Valid {
		avg := dto.RatingAvg.Value
		d.RatingAvg = &avg
	}
	for i := range dto.Images {
		d.Images[i] = ToDomainImage(&dto.Images[i])
	}
	if len(dto.Reviews) > 0 {
		d.Reviews = ToDomainReviews(dto.Reviews)
	}
	return d
}

// ToDomainDestinations converts a destination list.
func ToDomainDestinations(dtos []DestinationDTO) []destination.Destination {
	out := make([]destination.Destination, len(dtos))
	for i := range dtos {
		out[i] = ToDomainDestination(&dtos[i])
	}
	return out
}

// ToDestinationRequest converts an admin payload to the request body.
func ToDestinationRequest(p *destination.Payload) DestinationRequestDTO {
	ids := p.CategoryIDs
	if ids == nil {
		ids = []int64{}
	}
	return DestinationRequestDTO{
		Name:        p.Name,
		Description: p.Description,
		Location:    p.Location,
		MapURL:      optional(p.MapURL),
		TicketPrice: p.TicketPrice,
		OpenHours:   optional(p.OpenHours),
		Status:      p.Status.String(),
		Categories:  ids,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
