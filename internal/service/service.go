package service

import (
	"context"

	"service_directory"
	"service_directory/internal/directory"
	"service_directory/internal/logger"
	"service_directory/internal/metrics"
	"service_directory/internal/repository"
)

// Directory answers read-only queries against the loaded catalog.
type Directory interface {
	Browse(ctx context.Context, q DirectoryQuery) (service_directory.DirectoryView, error)
	Record(ctx context.Context, id string) (service_directory.ServiceDetail, error)
	Categories(ctx context.Context) ([]service_directory.CategorySummary, error)
	CategoryOverview(ctx context.Context, slug string) (service_directory.CategoryOverview, error)
	FilterGroups() []directory.FilterGroup
	Health() service_directory.Health
}

// Sessions tracks the interactive directory views behind the WebSocket channel.
type Sessions interface {
	Open(category, view string) (*ViewSession, error)
	Close(s *ViewSession)
	Count() int
}

// Service aggregates all sub-services.
type Service struct {
	Directory
	Sessions
}

// NewService loads the catalog once and wires the sub-services around it.
// A catalog that fails to load does not fail startup; every directory
// operation reports ErrCatalogUnavailable instead.
func NewService(ctx context.Context, repos *repository.Repository, m *metrics.Collector, log *logger.Logger) *Service {
	dir := NewDirectoryService(ctx, repos, m, log)
	return &Service{
		Directory: dir,
		Sessions:  NewSessionService(dir, m, log),
	}
}
