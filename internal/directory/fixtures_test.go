package directory

import "service_directory/internal/models"

func rec(id, name, sub string, features ...string) models.ServiceRecord {
	if features == nil {
		features = []string{}
	}
	return models.ServiceRecord{
		ID:          id,
		Name:        name,
		Description: name + " by licensed pros",
		Category:    "Painting & Drywall",
		Subcategory: sub,
		Features:    features,
	}
}

func paintingCatalog() []models.ServiceRecord {
	return []models.ServiceRecord{
		rec("1", "Interior Painting", "interior-painting", "Featured"),
		rec("2", "Exterior Painting", "exterior-painting", "Budget-Friendly"),
	}
}

func ids(records []models.ServiceRecord) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.ID
	}
	return out
}
