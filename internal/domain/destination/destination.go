// Package destination holds the tourism destination entity and its images.
package destination

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/explorekerinci/web/internal/domain"
	"github.com/explorekerinci/web/internal/domain/category"
	"github.com/explorekerinci/web/internal/domain/review"
)

// Status is the publication state of a destination.
type Status string

const (
	StatusActive   Status = "active"
	StatusDraft    Status = "draft"
	StatusInactive Status = "inactive"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusDraft, StatusInactive:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// Image is a photo attached to a destination.
type Image struct {
	ID        int64
	URL       string
	IsPrimary bool
}

// Destination is a tourism destination as shown in listings and on the
// detail page. Reviews are only populated on the detail view.
type Destination struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Location    string
	MapURL      string
	TicketPrice int64
	OpenHours   string
	Status      Status
	RatingAvg   *float64
	ReviewCount int
	Categories  []category.Category
	Images      []Image
	Reviews     []review.Review
	CreatedAt   time.Time
}

// Cover returns the primary image, falling back to the first image.
// The boolean is false when the destination has no images.
func (d *Destination) Cover() (Image, bool) {
	for _, img := range d.Images {
		if img.IsPrimary {
			return img, true
		}
	}
	if len(d.Images) > 0 {
		return d.Images[0], true
	}
	return Image{}, false
}

// HasRating reports whether at least one approved review contributed to RatingAvg.
func (d *Destination) HasRating() bool {
	return d.RatingAvg != nil
}

// NormalizeImageURL upgrades plain-http image URLs to https. The backend
// sometimes reports storage URLs with the wrong scheme.
func NormalizeImageURL(raw string) string {
	if rest, ok := strings.CutPrefix(raw, "http://"); ok {
		return "https://" + rest
	}
	return raw
}

// Payload is the admin-editable subset of a destination.
type Payload struct {
	Name        string
	Description string
	Location    string
	MapURL      string
	TicketPrice int64
	OpenHours   string
	Status      Status
	CategoryIDs []int64
}

// Validate checks business rules for a create/update payload.
// Returns a *domain.ValidationError with per-field details, or nil.
func (p *Payload) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(p.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Description) == "" {
		fields["description"] = domain.MsgRequired
	}
	if strings.TrimSpace(p.Location) == "" {
		fields["location"] = domain.MsgRequired
	}
	if p.TicketPrice < 0 {
		fields["ticket_price"] = fmt.Sprintf("tidak boleh negatif, diterima %d", p.TicketPrice)
	}
	if !p.Status.IsValid() {
		fields["status"] = fmt.Sprintf("%s: %q", domain.MsgInvalid, p.Status)
	}
	if p.MapURL != "" {
		u, err := url.Parse(p.MapURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			fields["map_url"] = "harus berupa URL http(s)"
		}
	}
	for _, id := range p.CategoryIDs {
		if id <= 0 {
			fields["categories"] = fmt.Sprintf("%s: %d", domain.MsgInvalid, id)
			break
		}
	}

	return domain.NewValidationError(fields)
}

// MaxUploadBytes caps a single photo upload.
const MaxUploadBytes = 5 << 20

// Upload is a photo to attach to a destination.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Validate checks the size and type of the photo.
func (u *Upload) Validate() error {
	fields := make(map[string]string)
	if msg := domain.CheckImage(u.ContentType, len(u.Data), MaxUploadBytes); msg != "" {
		fields["image"] = msg
	}
	return domain.NewValidationError(fields)
}
