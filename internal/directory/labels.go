package directory

import "service_directory/internal/models"

// Labels maps a subcategory slug to its card metadata.
type Labels map[string]models.SubcategoryInfo

// Lookup returns the metadata for subcategory. Unknown subcategories still
// get a card, titled from the slug.
func (l Labels) Lookup(subcategory string) models.SubcategoryInfo {
	if info, ok := l[subcategory]; ok {
		if info.Title == "" {
			info.Title = TitleFromSlug(subcategory)
		}
		return info
	}
	return models.SubcategoryInfo{Title: TitleFromSlug(subcategory)}
}

// Missing lists catalog subcategories that have no metadata entry.
func (l Labels) Missing(c *Catalog) []string {
	var out []string
	for _, sub := range c.subcategories {
		if _, ok := l[sub]; !ok {
			out = append(out, sub)
		}
	}
	return out
}
