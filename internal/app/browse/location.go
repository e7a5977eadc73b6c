package browse

import (
	"fmt"
	"net/url"

	appctx "github.com/explorekerinci/web/internal/app/context"
	"github.com/explorekerinci/web/internal/domain/listing"
	"github.com/explorekerinci/web/internal/ports"
)

type place struct {
	path  string
	query listing.Params
}

// Location is a single-writer register holding the current path and query.
type Location struct {
	ref *appctx.SafeRef[place]
	nav ports.Navigator
}

// NewLocation parses rawURL (path plus optional query) as the starting
// location. Scheme and host, if present, are ignored.
func NewLocation(rawURL string, nav ports.Navigator) (*Location, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing location %q: %w", rawURL, err)
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	return &Location{
		ref: appctx.NewRef(place{path: path, query: listing.ParseParams(u.RawQuery)}),
		nav: nav,
	}, nil
}

// Path returns the current path.
func (l *Location) Path() string {
	return l.ref.Get().path
}

// Query returns a copy of the current query.
func (l *Location) Query() listing.Params {
	return l.ref.Get().query.Clone()
}

// URL returns the current path and query.
func (l *Location) URL() string {
	p := l.ref.Get()
	return listing.BuildURL(p.path, p.query)
}

// Push replaces the location and navigates to it.
func (l *Location) Push(path string, query listing.Params) string {
	_, next := l.ref.Swap(func(place) place {
		return place{path: path, query: query.Clone()}
	})
	return l.navigate(next)
}

// Rewrite derives a new query from the current one and navigates to it.
// The read and the write happen under one lock, so concurrent rewrites of
// disjoint keys never lose each other's changes.
func (l *Location) Rewrite(fn func(current listing.Params) listing.Params) string {
	_, next := l.ref.Swap(func(p place) place {
		return place{path: p.path, query: fn(p.query.Clone())}
	})
	return l.navigate(next)
}

func (l *Location) navigate(p place) string {
	target := listing.BuildURL(p.path, p.query)
	if l.nav != nil {
		l.nav.Navigate(target)
	}
	return target
}
