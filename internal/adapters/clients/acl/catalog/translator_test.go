package catalog

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/explorekerinci/web/internal/domain/destination"
)

const destinationJSON = `{
	"id": 12,
	"name": "Danau Kaco",
	"slug": "danau-kaco",
	"description": "Danau **biru** jernih",
	"location": "Lempur, Kerinci",
	"map_url": null,
	"ticket_price": "15000.00",
	"open_hours": "08.00 - 17.00",
	"status": "active",
	"rating_avg": "4.50",
	"review_count": 2,
	"categories": [{"id": 3, "name": "Danau & Sungai", "slug": "danau-sungai"}],
	"images": [
		{"id": 1, "image_url": "http://cdn.example.com/a.jpg", "is_primary": false},
		{"id": 2, "image_url": "https://cdn.example.com/b.jpg", "is_primary": true}
	],
	"reviews": [{
		"id": 5,
		"rating": 5,
		"comment": "Airnya sangat jernih!",
		"approved_at": "2026-08-17T03:00:00.000000Z",
		"user": {"id": 9, "name": "Rina", "avatar_url": null},
		"created_at": "2026-08-16T03:00:00.000000Z"
	}],
	"created_at": "2026-01-02T03:04:05.000000Z"
}`

func TestToDomainDestination_FieldMapping(t *testing.T) {
	t.Parallel()

	var dto DestinationDTO
	if err := json.Unmarshal([]byte(destinationJSON), &dto); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	got := ToDomainDestination(&dto)

	if got.ID != 12 || got.Slug != "danau-kaco" || got.Name != "Danau Kaco" {
		t.Errorf("identity = %d %q %q", got.ID, got.Slug, got.Name)
	}
	if got.TicketPrice != 15000 {
		t.Errorf("TicketPrice = %d, want 15000", got.TicketPrice)
	}
	if got.RatingAvg == nil || *got.RatingAvg != 4.5 {
		t.Errorf("RatingAvg = %v, want 4.5", got.RatingAvg)
	}
	if got.MapURL != "" {
		t.Errorf("MapURL = %q, want empty for null", got.MapURL)
	}
	if got.OpenHours != "08.00 - 17.00" {
		t.Errorf("OpenHours = %q", got.OpenHours)
	}
	if got.Status != destination.StatusActive {
		t.Errorf("Status = %q, want active", got.Status)
	}
	if len(got.Categories) != 1 || got.Categories[0].Slug != "danau-sungai" {
		t.Errorf("Categories = %+v", got.Categories)
	}
	if cover, ok := got.Cover(); !ok || cover.ID != 2 {
		t.Errorf("Cover() = %+v, %v; want primary image 2", cover, ok)
	}
	want := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	if !got.CreatedAt.Equal(want) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want)
	}

	if len(got.Reviews) != 1 {
		t.Fatalf("Reviews = %d, want 1", len(got.Reviews))
	}
	r := got.Reviews[0]
	if !r.IsApproved() {
		t.Error("review IsApproved() = false, want true")
	}
	if r.Author == nil || r.Author.Name != "Rina" || r.Author.AvatarURL != "" {
		t.Errorf("Author = %+v", r.Author)
	}
}

func TestToDomainDestination_NullRating(t *testing.T) {
	t.Parallel()

	var dto DestinationDTO
	if err := json.Unmarshal([]byte(`{"id":1,"rating_avg":null,"ticket_price":0,"images":[]}`), &dto); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	got := ToDomainDestination(&dto)

	if got.HasRating() {
		t.Error("HasRating() = true, want false for null rating")
	}
	if got.TicketPrice != 0 {
		t.Errorf("TicketPrice = %d, want 0", got.TicketPrice)
	}
	if _, ok := got.Cover(); ok {
		t.Error("Cover() ok = true, want false without images")
	}
}

func TestNumber_Unmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in        string
		wantValue float64
		wantValid bool
		wantErr   bool
	}{
		{in: `4.5`, wantValue: 4.5, wantValid: true},
		{in: `"4.50"`, wantValue: 4.5, wantValid: true},
		{in: `null`},
		{in: `""`},
		{in: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		var n Number
		err := json.Unmarshal([]byte(tt.in), &n)
		if (err != nil) != tt.wantErr {
			t.Errorf("Unmarshal(%s) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if n.Valid != tt.wantValid || n.Value != tt.wantValue {
			t.Errorf("Unmarshal(%s) = %+v, want {%v %v}", tt.in, n, tt.wantValue, tt.wantValid)
		}
	}
}

func TestToDomainReview_Pending(t *testing.T) {
	t.Parallel()

	got := ToDomainReview(&ReviewDTO{
		ID:          4,
		Rating:      3,
		Comment:     "Lumayan ramai",
		User:        nil,
		Destination: &DestinationRefDTO{ID: 12, Name: "Danau Kaco", Slug: "danau-kaco"},
		CreatedAt:   "2026-08-16T03:00:00Z",
	})

	if got.IsApproved() {
		t.Error("IsApproved() = true, want pending")
	}
	if got.Author != nil {
		t.Errorf("Author = %+v, want nil for deleted account", got.Author)
	}
	if got.Destination == nil || got.Destination.Slug != "danau-kaco" {
		t.Errorf("Destination = %+v", got.Destination)
	}
}

func TestToDomainMeta(t *testing.T) {
	t.Parallel()

	got := ToDomainMeta(&MetaDTO{CurrentPage: 2, LastPage: 5, PerPage: 9, Total: 41}, 9)
	if got.CurrentPage != 2 || got.LastPage != 5 || got.PerPage != 9 || got.Total != 41 {
		t.Errorf("ToDomainMeta() = %+v", got)
	}

	single := ToDomainMeta(nil, 4)
	if single.LastPage != 1 || single.Total != 4 {
		t.Errorf("ToDomainMeta(nil) = %+v, want single page of 4", single)
	}

	absent := ToDomainMeta(&MetaDTO{}, 3)
	if absent.LastPage != 1 || absent.Total != 3 {
		t.Errorf("ToDomainMeta(zero) = %+v, want single page of 3", absent)
	}
}

func TestToDestinationRequest(t *testing.T) {
	t.Parallel()

	got := ToDestinationRequest(&destination.Payload{
		Name:        "Gunung Kerinci",
		Description: "Gunung api tertinggi di Sumatra",
		Location:    "Kayu Aro",
		TicketPrice: 20000,
		Status:      destination.StatusDraft,
	})

	if got.MapURL != nil || got.OpenHours != nil {
		t.Errorf("optional fields = %v %v, want nil for empty", got.MapURL, got.OpenHours)
	}
	if got.Categories == nil {
		t.Error("Categories = nil, want empty slice so the API clears them")
	}
	if got.Status != "draft" {
		t.Errorf("Status = %q, want draft", got.Status)
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if want := `"map_url":null`; !strings.Contains(string(raw), want) {
		t.Errorf("body = %s, want %s", raw, want)
	}

	withURL := ToDestinationRequest(&destination.Payload{MapURL: "https://maps.example.com/x"})
	if withURL.MapURL == nil || *withURL.MapURL != "https://maps.example.com/x" {
		t.Errorf("MapURL = %v", withURL.MapURL)
	}
}
