package handlers

import (
	"context"

	"service_directory"
	"service_directory/internal/directory"
	"service_directory/internal/models"
	"service_directory/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockDirectory struct {
	view     service_directory.DirectoryView
	detail   service_directory.ServiceDetail
	cats     []service_directory.CategorySummary
	overview service_directory.CategoryOverview
	health   service_directory.Health
	err      error

	lastQuery service.DirectoryQuery
	lastID    string
	lastSlug  string
}

func (m *mockDirectory) Browse(ctx context.Context, q service.DirectoryQuery) (service_directory.DirectoryView, error) {
	m.lastQuery = q
	return m.view, m.err
}
func (m *mockDirectory) Record(ctx context.Context, id string) (service_directory.ServiceDetail, error) {
	m.lastID = id
	return m.detail, m.err
}
func (m *mockDirectory) Categories(ctx context.Context) ([]service_directory.CategorySummary, error) {
	return m.cats, m.err
}
func (m *mockDirectory) CategoryOverview(ctx context.Context, slug string) (service_directory.CategoryOverview, error) {
	m.lastSlug = slug
	return m.overview, m.err
}
func (m *mockDirectory) FilterGroups() []directory.FilterGroup { return directory.FilterGroups() }
func (m *mockDirectory) Health() service_directory.Health      { return m.health }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service, opts ...Option) *gin.Engine {
	h := NewHandler(s, nil, opts...)
	gin.SetMode(gin.TestMode)
	return h.InitRoutes()
}

// newCatalogServices builds real services over a small in-memory catalog.
func newCatalogServices() *service.Service {
	rec := func(id, name, sub string, features ...string) models.ServiceRecord {
		return models.ServiceRecord{
			ID: id, Name: name, Description: name + " by our crew",
			Category: "Painting & Drywall", Subcategory: sub, Features: features,
		}
	}
	catalog, _ := directory.NewCatalog([]models.ServiceRecord{
		rec("1", "Interior Painting", "interior-painting", "Featured"),
		rec("2", "Exterior Painting", "exterior-painting", "Budget-Friendly"),
		rec("3", "Cabinet Painting", "interior-painting", "Premium"),
	})
	dir := service.NewDirectoryServiceFromCatalog(catalog, nil, nil)
	return &service.Service{
		Directory: dir,
		Sessions:  service.NewSessionService(dir, nil, nil),
	}
}
