// Package browse holds the interaction state of the destination listing: the
// current location, the search/filter controller, and the pagination
// controller.
//
// The URL is the single source of truth for what the listing shows. Both
// controllers read the current query from a shared Location and commit by
// pushing a rewritten query to it; the Location forwards every push to a
// ports.Navigator, which triggers the actual page load. The search
// controller writes search and category, the pagination controller writes
// page only.
package browse
