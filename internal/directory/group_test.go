package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service_directory/internal/models"
)

func TestGroupBySubcategory_FirstSeenOrder(t *testing.T) {
	records := []models.ServiceRecord{
		rec("1", "Accent Walls", "interior-painting"),
		rec("2", "Siding Touch-Ups", "exterior-painting-touchups"),
		rec("3", "Ceiling Painting", "interior-painting"),
		rec("4", "Hole Patching", "drywall-repair-installation"),
		rec("5", "Trim Painting", "exterior-painting-touchups"),
	}

	groups := GroupBySubcategory(records)

	assert.Equal(t, []string{
		"interior-painting",
		"exterior-painting-touchups",
		"drywall-repair-installation",
	}, groups.Keys())

	interior, ok := groups.Get("interior-painting")
	require.True(t, ok)
	assert.Equal(t, []string{"1", "3"}, ids(interior))

	exterior, ok := groups.Get("exterior-painting-touchups")
	require.True(t, ok)
	assert.Equal(t, []string{"2", "5"}, ids(exterior))

	_, ok = groups.Get("specialty-painting")
	assert.False(t, ok)
}

func TestGroupBySubcategory_Empty(t *testing.T) {
	groups := GroupBySubcategory(nil)
	assert.Empty(t, groups)
	assert.Empty(t, groups.Keys())
}
