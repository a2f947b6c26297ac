package directory

import (
	"slices"
	"strings"

	"service_directory/internal/models"
)

// FilterCatalog returns the records visible for state, in their original
// relative order. A record is visible when it matches the search text, the
// category filter and the feature filters. The result may be empty.
func FilterCatalog(records []models.ServiceRecord, state models.FilterState) []models.ServiceRecord {
	query := strings.ToLower(state.SearchQuery)
	out := make([]models.ServiceRecord, 0, len(records))
	for _, r := range records {
		if matchesSearch(r, query) &&
			matchesCategory(r, state.CategoryFilter) &&
			matchesFeatures(r, state.ActiveFeatureFilters) {
			out = append(out, r)
		}
	}
	return out
}

// matchesSearch expects query already lower-cased.
func matchesSearch(r models.ServiceRecord, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(r.Description), query)
}

// matchesCategory compares against the subcategory slug verbatim.
func matchesCategory(r models.ServiceRecord, category string) bool {
	return category == "" || r.Subcategory == category
}

// matchesFeatures is an OR across the active filters.
func matchesFeatures(r models.ServiceRecord, active []string) bool {
	if len(active) == 0 {
		return true
	}
	for _, f := range active {
		if slices.Contains(r.Features, f) || slices.Contains(r.Tags, f) {
			return true
		}
	}
	return false
}
