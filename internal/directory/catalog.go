package directory

import (
	"errors"

	"service_directory/internal/models"
)

var (
	// ErrCatalogUnavailable means the backing catalog data could not be read
	// or parsed. The directory view renders an empty state instead.
	ErrCatalogUnavailable = errors.New("service catalog unavailable")

	ErrServiceNotFound  = errors.New("service not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Catalog is the full ordered list of service records. It is built once and
// never mutated; every accessor hands out copies.
type Catalog struct {
	records       []models.ServiceRecord
	byID          map[string]int
	categories    []string
	subcategories []string
}

// NewCatalog validates records and builds a catalog from the valid ones.
// Malformed records and records repeating an earlier id are rejected and
// returned so the caller can report them.
func NewCatalog(records []models.ServiceRecord) (*Catalog, []models.RejectedRecord) {
	c := &Catalog{
		records: make([]models.ServiceRecord, 0, len(records)),
		byID:    make(map[string]int, len(records)),
	}
	var rejected []models.RejectedRecord
	seenCategory := make(map[string]struct{})
	seenSubcategory := make(map[string]struct{})

	for i, r := range records {
		if err := validateRecord(r); err != nil {
			rejected = append(rejected, models.RejectedRecord{
				Stage: models.StageValidate, Index: i, ID: r.ID, Reason: err.Error(),
			})
			continue
		}
		if _, dup := c.byID[r.ID]; dup {
			rejected = append(rejected, models.RejectedRecord{
				Stage: models.StageValidate, Index: i, ID: r.ID, Reason: "duplicate id",
			})
			continue
		}
		c.byID[r.ID] = len(c.records)
		c.records = append(c.records, r.Clone())

		if _, ok := seenCategory[r.Category]; !ok {
			seenCategory[r.Category] = struct{}{}
			c.categories = append(c.categories, r.Category)
		}
		if _, ok := seenSubcategory[r.Subcategory]; !ok {
			seenSubcategory[r.Subcategory] = struct{}{}
			c.subcategories = append(c.subcategories, r.Subcategory)
		}
	}
	return c, rejected
}

// Len returns the number of records.
func (c *Catalog) Len() int { return len(c.records) }

// Records returns a copy of all records in catalog order.
func (c *Catalog) Records() []models.ServiceRecord {
	out := make([]models.ServiceRecord, len(c.records))
	for i, r := range c.records {
		out[i] = r.Clone()
	}
	return out
}

// ByID looks a record up by its id.
func (c *Catalog) ByID(id string) (models.ServiceRecord, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.ServiceRecord{}, false
	}
	return c.records[i].Clone(), true
}

// Categories returns the distinct top-level categories in first-seen order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Subcategories returns the distinct subcategories in first-seen order.
func (c *Catalog) Subcategories() []string {
	return append([]string(nil), c.subcategories...)
}

// CategoryBySlug resolves a landing-page slug ("painting-drywall") to the
// category title used in the catalog ("Painting & Drywall").
func (c *Catalog) CategoryBySlug(slug string) (string, bool) {
	for _, name := range c.categories {
		if Slugify(name) == slug {
			return name, true
		}
	}
	return "", false
}

// InCategory returns the records of one top-level category in catalog order.
func (c *Catalog) InCategory(category string) []models.ServiceRecord {
	var out []models.ServiceRecord
	for _, r := range c.records {
		if r.Category == category {
			out = append(out, r.Clone())
		}
	}
	return out
}
