package models

// SubcategoryInfo is display metadata for a subcategory card.
type SubcategoryInfo struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon,omitempty" yaml:"icon"`
}
