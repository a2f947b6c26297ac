package directory

import "service_directory/internal/models"

// Group is the records of one subcategory.
type Group struct {
	Subcategory string
	Records     []models.ServiceRecord
}

// Groups is an ordered subcategory → records mapping. Iteration order is the
// order in which each subcategory was first seen in the input.
type Groups []Group

// GroupBySubcategory buckets records by subcategory, keeping input order both
// across groups (first seen) and within each group.
func GroupBySubcategory(records []models.ServiceRecord) Groups {
	var groups Groups
	index := make(map[string]int)
	for _, r := range records {
		i, ok := index[r.Subcategory]
		if !ok {
			i = len(groups)
			index[r.Subcategory] = i
			groups = append(groups, Group{Subcategory: r.Subcategory})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// Keys returns the subcategories in iteration order.
func (g Groups) Keys() []string {
	keys := make([]string, len(g))
	for i, grp := range g {
		keys[i] = grp.Subcategory
	}
	return keys
}

// Get returns the records of one subcategory.
func (g Groups) Get(subcategory string) ([]models.ServiceRecord, bool) {
	for _, grp := range g {
		if grp.Subcategory == subcategory {
			return grp.Records, true
		}
	}
	return nil, false
}
