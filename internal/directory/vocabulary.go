package directory

// FilterGroup is one titled block of filter tags in the directory sidebar.
type FilterGroup struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

var filterGroups = []FilterGroup{
	{Name: "Service Type", Tags: []string{"Interior", "Exterior", "Repair", "Installation"}},
	{Name: "Popular Services", Tags: []string{"Featured", "Most Requested", "Seasonal"}},
	{Name: "Price Range", Tags: []string{"Budget-Friendly", "Mid-Range", "Premium"}},
}

var knownTags = func() map[string]struct{} {
	m := make(map[string]struct{})
	for _, g := range filterGroups {
		for _, t := range g.Tags {
			m[t] = struct{}{}
		}
	}
	return m
}()

// FilterGroups returns the enumerated filter-tag vocabulary in display order.
func FilterGroups() []FilterGroup {
	out := make([]FilterGroup, len(filterGroups))
	for i, g := range filterGroups {
		out[i] = FilterGroup{Name: g.Name, Tags: append([]string(nil), g.Tags...)}
	}
	return out
}

// IsFilterTag reports whether s belongs to the filter-tag vocabulary.
func IsFilterTag(s string) bool {
	_, ok := knownTags[s]
	return ok
}
