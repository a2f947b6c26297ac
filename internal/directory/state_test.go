package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"service_directory/internal/models"
)

func TestToggleFeatureFilter_AddsAndRemoves(t *testing.T) {
	s := NewFilterState("", "", nil)

	s = ToggleFeatureFilter(s, "Premium")
	s = ToggleFeatureFilter(s, "Featured")
	assert.Equal(t, []string{"Featured", "Premium"}, s.ActiveFeatureFilters)

	s = ToggleFeatureFilter(s, "Premium")
	assert.Equal(t, []string{"Featured"}, s.ActiveFeatureFilters)
}

func TestToggleFeatureFilter_IsItsOwnInverse(t *testing.T) {
	sel := rec("9", "Interior Painting", "interior-painting", "Featured")
	states := []models.FilterState{
		{},
		NewFilterState("paint", "interior-painting", nil),
		NewFilterState("", "", []string{"Featured", "Mid-Range"}),
		SelectRecord(NewFilterState("x", "", []string{"Seasonal"}), &sel),
	}
	for _, s := range states {
		for _, f := range []string{"Featured", "Seasonal", "Interior"} {
			got := ToggleFeatureFilter(ToggleFeatureFilter(s, f), f)
			assert.Equal(t, s, got, "toggle %q twice", f)
		}
	}
}

func TestToggleFeatureFilter_DoesNotMutateInput(t *testing.T) {
	s := NewFilterState("", "", []string{"Featured", "Premium"})
	before := append([]string(nil), s.ActiveFeatureFilters...)

	_ = ToggleFeatureFilter(s, "Featured")
	_ = ToggleFeatureFilter(s, "Budget-Friendly")

	assert.Equal(t, before, s.ActiveFeatureFilters)
}

func TestNewFilterState_NormalizesFilters(t *testing.T) {
	s := NewFilterState("q", "c", []string{"Premium", "", "Featured", "Premium"})
	assert.Equal(t, []string{"Featured", "Premium"}, s.ActiveFeatureFilters)
	assert.Nil(t, NewFilterState("", "", []string{" "}).ActiveFeatureFilters)
}

func TestSelectRecord_SetsAndClears(t *testing.T) {
	base := NewFilterState("paint", "interior-painting", []string{"Featured"})
	r := rec("1", "Interior Painting", "interior-painting", "Featured")

	selected := SelectRecord(base, &r)
	require.NotNil(t, selected.SelectedRecord)
	assert.Equal(t, "1", selected.SelectedRecord.ID)
	assert.Equal(t, base.SearchQuery, selected.SearchQuery)
	assert.Equal(t, base.CategoryFilter, selected.CategoryFilter)
	assert.Equal(t, base.ActiveFeatureFilters, selected.ActiveFeatureFilters)
	assert.Nil(t, base.SelectedRecord, "input state must not change")

	// the selection is a copy
	r.Features[0] = "changed"
	assert.Equal(t, "Featured", selected.SelectedRecord.Features[0])

	cleared := SelectRecord(selected, nil)
	assert.Nil(t, cleared.SelectedRecord)
	assert.Equal(t, base, cleared)
}

func TestReset(t *testing.T) {
	assert.Equal(t, models.FilterState{CategoryFilter: "interior-painting"}, Reset("interior-painting"))
	assert.Equal(t, models.FilterState{}, Reset(""))
}
