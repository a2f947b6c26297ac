package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Painting & Drywall":            "painting-drywall",
		"Pre-Purchase Home Inspections": "pre-purchase-home-inspections",
		"Safety & Code Compliance":      "safety-code-compliance",
		"  Pools / Spas  ":              "pools-spas",
		"Windows & Doors":               "windows-doors",
		"":                              "",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestHumanizeAndTitle(t *testing.T) {
	assert.Equal(t, "interior painting", Humanize("interior-painting"))
	assert.Equal(t, "Interior Painting", TitleFromSlug("interior-painting"))
	assert.Equal(t, "Drywall Repair Installation", TitleFromSlug("drywall-repair-installation"))
}

func TestLabels_LookupFallsBackToSlugTitle(t *testing.T) {
	labels := Labels{
		"interior-painting":  {Title: "Interior Painting", Description: "Fresh, new look.", Icon: "paintbrush"},
		"specialty-painting": {Description: "Unique finishes."},
	}

	assert.Equal(t, "paintbrush", labels.Lookup("interior-painting").Icon)
	assert.Equal(t, "Specialty Painting", labels.Lookup("specialty-painting").Title)
	assert.Equal(t, "Unique finishes.", labels.Lookup("specialty-painting").Description)
	assert.Equal(t, "Surface Prep Repairs", labels.Lookup("surface-prep-repairs").Title)

	c, _ := NewCatalog(paintingCatalog())
	assert.Equal(t, []string{"exterior-painting"}, labels.Missing(c))
}

func TestFilterGroups_Vocabulary(t *testing.T) {
	groups := FilterGroups()
	assert.Len(t, groups, 3)
	assert.Equal(t, "Price Range", groups[2].Name)
	assert.True(t, IsFilterTag("Most Requested"))
	assert.False(t, IsFilterTag("most requested"))

	groups[0].Tags[0] = "mutated"
	assert.Equal(t, "Interior", FilterGroups()[0].Tags[0])
}
