package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"service_directory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalog = `[
	{"id":"1","name":"Interior Painting","description":"Walls and ceilings","category":"Painting & Drywall","subcategory":"interior-painting","features":["Interior","Featured"]},
	{"id":"2","name":"Ceiling Painting","description":"Flat and textured","category":"Painting & Drywall","subcategory":"interior-painting","features":["Interior","Budget-Friendly"]},
	{"id":"3","name":"Cabinet Painting","description":"Kitchen cabinets","category":"Painting & Drywall","subcategory":"interior-painting","features":["Interior","Premium"],"price":"$1,500+"},
	{"id":"4","name":"Drywall Repair","description":"Holes and cracks","category":"Painting & Drywall","subcategory":"drywall-repair-installation","features":["Repair"]},
	{"id":"5","name":"Home Inspection","description":"Before you buy","category":"Home Inspections","subcategory":"pre-purchase-inspections","features":[]}
]`

const testLabels = `interior-painting:
  title: Interior Painting
  description: Professional interior painting services for a fresh, new look.
  icon: paintbrush
`

func writeTestFiles(t *testing.T, catalog string) (catalogPath, labelsPath string) {
	t.Helper()
	dir := t.TempDir()
	catalogPath = filepath.Join(dir, "services.json")
	labelsPath = filepath.Join(dir, "subcategories.yml")
	require.NoError(t, os.WriteFile(catalogPath, []byte(catalog), 0o600))
	require.NoError(t, os.WriteFile(labelsPath, []byte(testLabels), 0o600))
	return catalogPath, labelsPath
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := NewRootCommand()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"validate", "query", "groups", "export-sqlite", "browse"} {
		assert.Contains(t, names, want)
	}
	for _, flag := range []string{"catalog", "source", "labels", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestValidate(t *testing.T) {
	catalog, labels := writeTestFiles(t, testCatalog)

	out, err := run(t, "validate", "--catalog", catalog, "--labels", labels)
	require.NoError(t, err)
	assert.Contains(t, out, "5 services loaded, 0 rejected")
	assert.Contains(t, out, "drywall-repair-installation")
}

func TestValidate_StrictFailsOnRejections(t *testing.T) {
	catalog, labels := writeTestFiles(t, `[
		{"id":"1","name":"Interior Painting","category":"Painting & Drywall","subcategory":"interior-painting","features":[]},
		{"id":"1","name":"Duplicate","category":"Painting & Drywall","subcategory":"interior-painting","features":[]},
		{"id":"3","category":"Painting & Drywall","subcategory":"interior-painting","features":[]}
	]`)

	out, err := run(t, "validate", "--catalog", catalog, "--labels", labels)
	require.NoError(t, err)
	assert.Contains(t, out, "1 services loaded, 2 rejected")
	assert.Contains(t, out, "duplicate id")

	_, err = run(t, "validate", "--strict", "--catalog", catalog, "--labels", labels)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 catalog records rejected")
}

func TestValidate_UnavailableCatalog(t *testing.T) {
	catalog, labels := writeTestFiles(t, `{"services": []}`)

	_, err := run(t, "validate", "--catalog", catalog, "--labels", labels)
	require.Error(t, err)
}

func TestQuery_Text(t *testing.T) {
	catalog, labels := writeTestFiles(t, testCatalog)

	out, err := run(t, "query", "painting", "--catalog", catalog, "--labels", labels)
	require.NoError(t, err)
	assert.Contains(t, out, "All Services")
	assert.Contains(t, out, "3 services available")
	assert.NotContains(t, out, "Drywall Repair")
}

func TestQuery_JSON(t *testing.T) {
	catalog, labels := writeTestFiles(t, testCatalog)

	out, err := run(t, "query", "--catalog", catalog, "--labels", labels,
		"-c", "interior-painting", "-f", "Premium", "-f", "Featured", "--selected", "3", "--json")
	require.NoError(t, err)

	var view service_directory.DirectoryView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "interior painting Services", view.Heading)
	require.Len(t, view.Services, 2)
	assert.Equal(t, "1", view.Services[0].ID)
	assert.Equal(t, "3", view.Services[1].ID)
	require.NotNil(t, view.Selected)
	assert.Equal(t, "$1,500+", view.Selected.Price)
	assert.Equal(t, []string{"Featured", "Premium"}, view.State.ActiveFeatureFilters)
}

func TestQuery_BadView(t *testing.T) {
	catalog, labels := writeTestFiles(t, testCatalog)

	_, err := run(t, "query", "--catalog", catalog, "--labels", labels, "--view", "table")
	require.Error(t, err)
}

func TestGroups(t *testing.T) {
	catalog, labels := writeTestFiles(t, testCatalog)

	out, err := run(t, "groups", "--catalog", catalog, "--labels", labels)
	require.NoError(t, err)
	assert.Contains(t, out, "Painting & Drywall (painting-drywall): 4 services")
	assert.Contains(t, out, "Home Inspections (home-inspections): 1 services")

	out, err = run(t, "groups", "painting-drywall", "--json", "--catalog", catalog, "--labels", labels)
	require.NoError(t, err)

	var ov service_directory.CategoryOverview
	require.NoError(t, json.Unmarshal([]byte(out), &ov))
	require.Len(t, ov.Subcategories, 2)
	assert.Equal(t, "Interior Painting", ov.Subcategories[0].Title)
	assert.Equal(t, 3, ov.Subcategories[0].Count)
	assert.Equal(t, "/service-directory?category=interior-painting", ov.Subcategories[0].Link)
	assert.Equal(t, "Drywall Repair Installation", ov.Subcategories[1].Title)

	_, err = run(t, "groups", "plumbing", "--catalog", catalog, "--labels", labels)
	require.Error(t, err)
}

func TestExportSQLite_RoundTrip(t *testing.T) {
	catalog, labels := writeTestFiles(t, testCatalog)
	snapshot := filepath.Join(t.TempDir(), "catalog.db")

	out, err := run(t, "export-sqlite", snapshot, "--catalog", catalog, "--labels", labels)
	require.NoError(t, err)
	assert.Contains(t, out, "exported 5 services")

	out, err = run(t, "query", "--catalog", snapshot, "--labels", labels, "--json")
	require.NoError(t, err)

	var view service_directory.DirectoryView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	require.Equal(t, 5, view.Count)
	for i, id := range []string{"1", "2", "3", "4", "5"} {
		assert.Equal(t, id, view.Services[i].ID)
	}
}
