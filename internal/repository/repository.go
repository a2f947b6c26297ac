package repository

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"service_directory/internal/models"
)

// Snapshot is one read of the backing catalog data: the records that decoded
// and the entries that could not be decoded.
type Snapshot struct {
	Records  []models.ServiceRecord
	Rejected []models.RejectedRecord
}

// CatalogSource loads the full ordered catalog once at startup.
type CatalogSource interface {
	Load(ctx context.Context) (Snapshot, error)
}

// CatalogWriter persists a catalog as a snapshot the server can read later.
type CatalogWriter interface {
	Export(ctx context.Context, records []models.ServiceRecord) error
}

// LabelSource loads subcategory card metadata keyed by subcategory slug.
type LabelSource interface {
	LoadLabels(ctx context.Context) (map[string]models.SubcategoryInfo, error)
}

type Repository struct {
	Catalog CatalogSource
	Labels  LabelSource
}

func NewRepository(catalog CatalogSource, labels LabelSource) *Repository {
	return &Repository{Catalog: catalog, Labels: labels}
}

// Catalog source kinds accepted by OpenCatalog.
const (
	SourceJSON   = "json"
	SourceSQLite = "sqlite"
)

// OpenCatalog picks a catalog source by kind, or by file extension when kind
// is empty. The returned close func releases the underlying handle, if any.
func OpenCatalog(kind, path string, openDB func(string) (*sql.DB, error)) (CatalogSource, func() error, error) {
	noop := func() error { return nil }
	if kind == "" {
		kind = kindFromPath(path)
	}
	switch kind {
	case SourceJSON:
		return NewJSONCatalog(path), noop, nil
	case SourceSQLite:
		db, err := openDB(path)
		if err != nil {
			return nil, noop, err
		}
		return NewCatalogSQLite(db), db.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown catalog source %q", kind)
	}
}

func kindFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return SourceSQLite
	default:
		return SourceJSON
	}
}
