// Package directory implements the service directory: the immutable catalog,
// the filter engine that computes the visible subset for a FilterState, the
// subcategory grouping used by category landing pages, and the single-owner
// view session that applies user events to a FilterState.
//
// Everything here is pure and in-memory. The only failure is the load-time
// ErrCatalogUnavailable reported by catalog sources.
package directory
