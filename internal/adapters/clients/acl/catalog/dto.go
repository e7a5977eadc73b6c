// Package catalog implements the Anti-Corruption Layer translators for the
// API's destination, category, image and review resources.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Number accepts a JSON number, a numeric string ("4.50", as Laravel
// serializes decimal casts) or null.
type Number struct {
	Value float64
	Valid bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = Number{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if s == "" {
			*n = Number{}
			return nil
		}
		b = []byte(s)
	}
	v, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return fmt.Errorf("catalog: invalid number %q: %w", b, err)
	}
	*n = Number{Value: v, Valid: true}
	return nil
}

// MetaDTO matches the API's pagination block.
type MetaDTO struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// CategoryDTO matches the API's Category schema. DestinationsCount is only
// sent by the admin endpoint.
type CategoryDTO struct {
	ID                int64  `json:"id"`
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	DestinationsCount int    `json:"destinations_count,omitempty"`
}

// ImageDTO matches the API's DestinationImage schema.
type ImageDTO struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
}

// ReviewerDTO is the user embedded in a review.
type ReviewerDTO struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url"`
}

// DestinationRefDTO is the destination embedded in cross-destination review lists.
type DestinationRefDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ReviewDTO matches the API's Review schema.
type ReviewDTO struct {
	ID          int64              `json:"id"`
	Rating      int                `json:"rating"`
	Comment     string             `json:"comment"`
	ApprovedAt  *string            `json:"approved_at"`
	User        *ReviewerDTO       `json:"user"`
	Destination *DestinationRefDTO `json:"destination,omitempty"`
	CreatedAt   string             `json:"created_at"`
}

// DestinationDTO matches the API's Destination schema. Reviews are only sent
// by the detail endpoint.
type DestinationDTO struct {
	ID          int64         `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	MapURL      *string       `json:"map_url"`
	TicketPrice Number        `json:"ticket_price"`
	OpenHours   *string       `json:"open_hours"`
	Status      string        `json:"status"`
	RatingAvg   Number        `json:"rating_avg"`
	ReviewCount int           `json:"review_count"`
	Categories  []CategoryDTO `json:"categories"`
	Images      []ImageDTO    `json:"images"`
	Reviews     []ReviewDTO   `json:"reviews,omitempty"`
	CreatedAt   string        `json:"created_at"`
}

// DestinationRequestDTO matches the admin create/update body. Optional
// strings are sent as null when empty.
type DestinationRequestDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	MapURL      *string `json:"map_url"`
	TicketPrice int64   `json:"ticket_price"`
	OpenHours   *string `json:"open_hours"`
	Status      string  `json:"status"`
	Categories  []int64 `json:"categories"`
}

// CategoryRequestDTO matches the admin category create/update body.
type CategoryRequestDTO struct {
	Name string `json:"name"`
}
