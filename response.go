package service_directory

import "service_directory/internal/models"

// Directory view modes.
const (
	ViewGrid = "grid"
	ViewList = "list"
)

// DirectoryView is one render of the service directory for a FilterState.
type DirectoryView struct {
	Heading      string             `json:"heading"`    // "All Services" | "<category> Services"
	Subheading   string             `json:"subheading"` // hero text
	Count        int                `json:"count"`
	CountLabel   string             `json:"count_label"` // "<n> services available"
	View         string             `json:"view"`        // grid | list
	Services     []ServiceCard      `json:"services"`
	FilterGroups []FilterGroupView  `json:"filter_groups"`
	Selected     *ServiceDetail     `json:"selected,omitempty"`
	State        models.FilterState `json:"state"`
}

// ServiceCard is a record as listed in the directory. Grid cards carry the
// first two features, list rows carry all of them.
type ServiceCard struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Subcategory string   `json:"subcategory"`
	Image       string   `json:"image"`
	Popular     bool     `json:"popular"`
	Features    []string `json:"features"`
}

// ServiceDetail is the full record shown in the detail overlay.
type ServiceDetail struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	Subcategory  string   `json:"subcategory"`
	Image        string   `json:"image"`
	Popular      bool     `json:"popular"`
	Price        string   `json:"price,omitempty"`
	TimeEstimate string   `json:"time_estimate,omitempty"`
	Features     []string `json:"features"`
}

// FilterGroupView is one sidebar group with the checked state of each tag.
type FilterGroupView struct {
	Name    string             `json:"name"`
	Options []FilterOptionView `json:"options"`
}

type FilterOptionView struct {
	Tag     string `json:"tag"`
	Checked bool   `json:"checked"`
}

// CategorySummary describes a top-level catalog category.
type CategorySummary struct {
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Count         int      `json:"count"`
	Subcategories []string `json:"subcategories"`
}

// CategoryOverview is the landing page of one top-level category.
type CategoryOverview struct {
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	Count         int               `json:"count"`
	Subcategories []SubcategoryCard `json:"subcategories"`
}

// SubcategoryCard links a landing page to the directory filtered by Key.
type SubcategoryCard struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon,omitempty"`
	Image       string   `json:"image"`
	Samples     []string `json:"samples"` // up to four service names
	Count       int      `json:"count"`
	CountLabel  string   `json:"count_label"` // "<n> services in this category"
	Link        string   `json:"link"`
}

// Health is the /health payload.
type Health struct {
	Status   string `json:"status"` // ok | degraded
	Services int    `json:"services"`
	Rejected int    `json:"rejected"`
	Error    string `json:"error,omitempty"`
}
