package models

// FilterState is the transient view state driving what the directory shows.
// An empty CategoryFilter means no category restriction; an empty
// ActiveFeatureFilters means no feature restriction.
type FilterState struct {
	SearchQuery          string         `json:"search_query"`
	CategoryFilter       string         `json:"category_filter,omitempty"`
	ActiveFeatureFilters []string       `json:"active_feature_filters"`
	SelectedRecord       *ServiceRecord `json:"selected_record,omitempty"`
}
