package browse

import (
	"github.com/explorekerinci/web/internal/domain/listing"
)

// Link is a rendered page slot with its target URL. Gaps have no URL.
type Link struct {
	listing.PageItem
	URL string
}

// Pagination maps page numbers to the page query parameter. It only ever
// rewrites page, leaving search and category as they are.
type Pagination struct {
	loc  *Location
	meta listing.Meta
}

// NewPagination binds the location to the metadata of the latest response.
func NewPagination(loc *Location, meta listing.Meta) *Pagination {
	return &Pagination{loc: loc, meta: meta.Normalize()}
}

// Current returns the current page.
func (p *Pagination) Current() int {
	return p.meta.CurrentPage
}

// Last returns the last page.
func (p *Pagination) Last() int {
	return p.meta.LastPage
}

// Visible reports whether a pagination control is rendered at all.
func (p *Pagination) Visible() bool {
	return p.meta.HasPages()
}

// CanPrev reports whether the previous arrow is enabled.
func (p *Pagination) CanPrev() bool {
	return p.meta.CurrentPage > 1
}

// CanNext reports whether the next arrow is enabled.
func (p *Pagination) CanNext() bool {
	return p.meta.CurrentPage < p.meta.LastPage
}

// GoTo navigates to page, clamped to [1, last], and returns the target URL.
func (p *Pagination) GoTo(page int) string {
	page = max(1, min(page, p.meta.LastPage))
	target := p.loc.Rewrite(func(q listing.Params) listing.Params {
		return listing.WithPage(q, page)
	})
	p.meta.CurrentPage = page
	return target
}

// Next moves one page forward. At the last page it does nothing and
// returns false.
func (p *Pagination) Next() bool {
	if !p.CanNext() {
		return false
	}
	p.GoTo(p.meta.CurrentPage + 1)
	return true
}

// Prev moves one page back. At the first page it does nothing and returns
// false.
func (p *Pagination) Prev() bool {
	if !p.CanPrev() {
		return false
	}
	p.GoTo(p.meta.CurrentPage - 1)
	return true
}

// PrevURL returns the previous arrow's target, or "" when disabled.
func (p *Pagination) PrevURL() string {
	if !p.CanPrev() {
		return ""
	}
	return p.urlFor(p.meta.CurrentPage - 1)
}

// NextURL returns the next arrow's target, or "" when disabled.
func (p *Pagination) NextURL() string {
	if !p.CanNext() {
		return ""
	}
	return p.urlFor(p.meta.CurrentPage + 1)
}

// Links lists the page slots with their target URLs, without navigating.
func (p *Pagination) Links() []Link {
	items := listing.Pager(p.meta.CurrentPage, p.meta.LastPage)
	links := make([]Link, 0, len(items))
	for _, it := range items {
		l := Link{PageItem: it}
		if !it.Gap {
			l.URL = p.urlFor(it.Number)
		}
		links = append(links, l)
	}
	return links
}

func (p *Pagination) urlFor(page int) string {
	return listing.BuildURL(p.loc.Path(), listing.WithPage(p.loc.Query(), page))
}
