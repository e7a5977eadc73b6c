// Package category holds the destination category entity.
package category

import (
	"strings"

	"github.com/explorekerinci/web/internal/domain"
)

// Category groups destinations ("Air Terjun", "Danau & Sungai", ...). The
// slug is the value carried in the listing URL's category parameter.
type Category struct {
	ID                int64
	Name              string
	Slug              string
	DestinationsCount int
}

// Validate checks the fields an admin can edit. Slugs are assigned by the
// backend and are not validated here.
func (c *Category) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	return domain.NewValidationError(fields)
}

// BySlug returns the category with the given slug, or nil.
func BySlug(categories []Category, slug string) *Category {
	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i]
		}
	}
	return nil
}
