package listing

import "slices"

// Meta is the pagination block of a backend list response.
type Meta struct {
	CurrentPage int
	LastPage    int
	PerPage     int
	Total       int
}

// FallbackMeta describes an empty single page. Used when the backend could
// not be reached so the page still renders its empty state.
func FallbackMeta(perPage int) Meta {
	return Meta{CurrentPage: 1, LastPage: 1, PerPage: perPage, Total: 0}
}

// Normalize repairs impossible values (zero or negative pages, a current
// page past the last) so controllers can rely on 1 <= current <= last.
func (m Meta) Normalize() Meta {
	if m.LastPage < 1 {
		m.LastPage = 1
	}
	m.CurrentPage = clamp(m.CurrentPage, 1, m.LastPage)
	if m.Total < 0 {
		m.Total = 0
	}
	return m
}

// HasPages reports whether a pagination control should be shown.
func (m Meta) HasPages() bool {
	return m.LastPage > 1
}

// PageItem is one slot of a pagination control: either a page link or a gap.
type PageItem struct {
	Number  int
	Current bool
	Gap     bool
}

// Pager lists the page slots to render: the first and last page, the
// current page and its direct neighbours, with a single gap standing in for
// each run of skipped pages. Returns nil when there is only one page.
func Pager(current, last int) []PageItem {
	if last <= 1 {
		return nil
	}
	current = clamp(current, 1, last)

	slots := []int{1, current - 1, current, current + 1, last}
	slices.Sort(slots)

	items := make([]PageItem, 0, 2*len(slots)-1)
	prev := 0
	for _, n := range slots {
		if n < 1 || n > last || n == prev {
			continue
		}
		if prev != 0 && n-prev > 1 {
			items = append(items, PageItem{Gap: true})
		}
		items = append(items, PageItem{Number: n, Current: n == current})
		prev = n
	}
	return items
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}

// Page is one page of a paginated backend list.
type Page[T any] struct {
	Items []T
	Meta  Meta
}

// EmptyPage is the fallback page rendered when the backend is unreachable.
func EmptyPage[T any](perPage int) *Page[T] {
	return &Page[T]{Items: []T{}, Meta: FallbackMeta(perPage)}
}
