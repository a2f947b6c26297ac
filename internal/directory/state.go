package directory

import (
	"slices"
	"strings"

	"service_directory/internal/models"
)

// NewFilterState builds a state from raw inputs (query string, navigation
// parameter, checked filters). Filters are stored as a sorted set.
func NewFilterState(search, category string, filters []string) models.FilterState {
	return models.FilterState{
		SearchQuery:          search,
		CategoryFilter:       category,
		ActiveFeatureFilters: normalizeFilters(filters),
	}
}

// ToggleFeatureFilter removes value from the active filters when present and
// adds it otherwise. Applying it twice with the same value yields the
// original state.
func ToggleFeatureFilter(state models.FilterState, value string) models.FilterState {
	out := cloneState(state)
	filters := normalizeFilters(out.ActiveFeatureFilters)
	if i, found := slices.BinarySearch(filters, value); found {
		filters = slices.Delete(filters, i, i+1)
	} else {
		filters = slices.Insert(filters, i, value)
	}
	out.ActiveFeatureFilters = normalizeFilters(filters)
	return out
}

// SelectRecord sets the record shown in the detail view, or clears it when
// record is nil. No other field changes.
func SelectRecord(state models.FilterState, record *models.ServiceRecord) models.FilterState {
	out := cloneState(state)
	if record == nil {
		out.SelectedRecord = nil
		return out
	}
	sel := record.Clone()
	out.SelectedRecord = &sel
	return out
}

// WithSearch replaces the search text.
func WithSearch(state models.FilterState, query string) models.FilterState {
	out := cloneState(state)
	out.SearchQuery = query
	return out
}

// Reset returns the fresh state a view starts with after navigating to
// category ("" for the whole directory).
func Reset(category string) models.FilterState {
	return models.FilterState{CategoryFilter: category}
}

func cloneState(s models.FilterState) models.FilterState {
	out := s
	if s.ActiveFeatureFilters != nil {
		out.ActiveFeatureFilters = append([]string(nil), s.ActiveFeatureFilters...)
	}
	if s.SelectedRecord != nil {
		sel := s.SelectedRecord.Clone()
		out.SelectedRecord = &sel
	}
	return out
}

// normalizeFilters sorts, drops blanks and duplicates; nil when empty.
func normalizeFilters(filters []string) []string {
	out := make([]string, 0, len(filters))
	for _, f := range filters {
		if strings.TrimSpace(f) == "" {
			continue
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}
