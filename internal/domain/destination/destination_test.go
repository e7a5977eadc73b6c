package destination

import (
	"errors"
	"testing"

	"github.com/explorekerinci/web/internal/domain"
)

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status Status
		want   bool
	}{
		{StatusActive, true},
		{StatusDraft, true},
		{StatusInactive, true},
		{"", false},
		{"Active", false},
		{"archived", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			t.Parallel()
			if got := tt.status.IsValid(); got != tt.want {
				t.Errorf("Status(%q).IsValid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestNormalizeImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"http://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"/storage/a.jpg", "/storage/a.jpg"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeImageURL(tt.in); got != tt.want {
			t.Errorf("NormalizeImageURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDestination_Cover(t *testing.T) {
	t.Parallel()

	d := Destination{Images: []Image{{ID: 1, URL: "a"}, {ID: 2, URL: "b", IsPrimary: true}}}
	if img, ok := d.Cover(); !ok || img.ID != 2 {
		t.Errorf("Cover() = %+v, %v, want primary image 2", img, ok)
	}

	d = Destination{Images: []Image{{ID: 7, URL: "a"}}}
	if img, ok := d.Cover(); !ok || img.ID != 7 {
		t.Errorf("Cover() = %+v, %v, want first image", img, ok)
	}

	d = Destination{}
	if _, ok := d.Cover(); ok {
		t.Error("Cover() on destination without images reported ok")
	}
}

func TestPayload_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Payload {
		return Payload{
			Name:        "Danau Kerinci",
			Description: "Danau terbesar di Jambi.",
			Location:    "Keliling Danau",
			MapURL:      "https://maps.google.com/?q=danau+kerinci",
			TicketPrice: 10000,
			Status:      StatusActive,
			CategoryIDs: []int64{1, 3},
		}
	}

	tests := []struct {
		name       string
		mutate     func(*Payload)
		wantFields []string
	}{
		{name: "valid", mutate: func(*Payload) {}},
		{name: "free entry", mutate: func(p *Payload) { p.TicketPrice = 0 }},
		{name: "no map", mutate: func(p *Payload) { p.MapURL = "" }},
		{name: "blank name", mutate: func(p *Payload) { p.Name = "   " }, wantFields: []string{"name"}},
		{name: "negative price", mutate: func(p *Payload) { p.TicketPrice = -1 }, wantFields: []string{"ticket_price"}},
		{name: "bad status", mutate: func(p *Payload) { p.Status = "hidden" }, wantFields: []string{"status"}},
		{name: "bad map url", mutate: func(p *Payload) { p.MapURL = "javascript:alert(1)" }, wantFields: []string{"map_url"}},
		{name: "bad category id", mutate: func(p *Payload) { p.CategoryIDs = []int64{0} }, wantFields: []string{"categories"}},
		{
			name: "several",
			mutate: func(p *Payload) {
				p.Description = ""
				p.Location = ""
			},
			wantFields: []string{"description", "location"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid()
			tt.mutate(&p)
			err := p.Validate()

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var ve *domain.ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
			}
			if len(ve.Fields) != len(tt.wantFields) {
				t.Errorf("fields = %v, want %v", ve.Fields, tt.wantFields)
			}
			for _, f := range tt.wantFields {
				if ve.Field(f) == "" {
					t.Errorf("missing error for %q in %v", f, ve.Fields)
				}
			}
		})
	}
}
