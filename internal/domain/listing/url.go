package listing

import "strconv"

// Change is one requested key rewrite. An empty Value deletes the key.
type Change struct {
	Key   string
	Value string
}

// Search is a Change to the free-text search term.
func Search(term string) Change {
	return Change{Key: KeySearch, Value: term}
}

// Category is a Change to the category slug.
func Category(slug string) Change {
	return Change{Key: KeyCategory, Value: slug}
}

// ApplyChanges returns a new query built from current with changes applied
// in order. Setting a key to "" removes it, so an empty search is the same
// URL as no search. Whenever search or category is part of the change set,
// page is dropped so the result starts from the first page. current is not
// modified.
func ApplyChanges(current Params, changes ...Change) Params {
	next := current.Clone()
	resetPage := false

	for _, c := range changes {
		if c.Value == "" {
			next.Del(c.Key)
		} else {
			next.Set(c.Key, c.Value)
		}
		if c.Key == KeySearch || c.Key == KeyCategory {
			resetPage = true
		}
	}

	if resetPage {
		next.Del(KeyPage)
	}
	return next
}

// WithPage rewrites only the page key, leaving every filter untouched.
func WithPage(current Params, page int) Params {
	next := current.Clone()
	next.Set(KeyPage, strconv.Itoa(page))
	return next
}

// BuildURL joins path and query, omitting the '?' for an empty query.
func BuildURL(path string, q Params) string {
	if q.Len() == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
