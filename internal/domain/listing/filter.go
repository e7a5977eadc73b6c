// Package listing models the destination listing query: the filter state
// carried in the URL, the rule for rewriting that URL, and the pagination
// metadata returned by the backend.
package listing

import (
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Query parameter names shared by the listing page and the backend.
const (
	KeySearch   = "search"
	KeyCategory = "category"
	KeyPage     = "page"
	KeyPerPage  = "per_page"
)

// Defaults applied when the URL omits or mangles a numeric parameter.
const (
	DefaultPage    = 1
	DefaultPerPage = 9
	MaxPerPage     = 100
)

var canonicalOrder = []string{KeySearch, KeyCategory, KeyPage, KeyPerPage}

// FilterState fully determines a listing query. The zero Search and
// Category mean "no filter" on that axis.
type FilterState struct {
	Search   string
	Category string
	Page     int
	PerPage  int
}

// FromQuery reads the filter state from the incoming URL. Page defaults to 1
// and per_page to defaultPerPage (or DefaultPerPage when that is not
// positive); per_page is capped at MaxPerPage.
func FromQuery(q url.Values, defaultPerPage int) FilterState {
	if defaultPerPage <= 0 {
		defaultPerPage = DefaultPerPage
	}

	page := positiveInt(q.Get(KeyPage), DefaultPage)
	perPage := min(positiveInt(q.Get(KeyPerPage), defaultPerPage), MaxPerPage)

	return FilterState{
		Search:   strings.TrimSpace(q.Get(KeySearch)),
		Category: q.Get(KeyCategory),
		Page:     page,
		PerPage:  perPage,
	}
}

// IsFiltered reports whether a search term or a category is active.
func (f FilterState) IsFiltered() bool {
	return f.Search != "" || f.Category != ""
}

// Query renders the state as backend query parameters, omitting empty filters.
func (f FilterState) Query() url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set(KeySearch, f.Search)
	}
	if f.Category != "" {
		q.Set(KeyCategory, f.Category)
	}
	if f.PerPage > 0 {
		q.Set(KeyPerPage, strconv.Itoa(f.PerPage))
	}
	if f.Page > 0 {
		q.Set(KeyPage, strconv.Itoa(f.Page))
	}
	return q
}

func positiveInt(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func sortedKeys(v url.Values) []string {
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
