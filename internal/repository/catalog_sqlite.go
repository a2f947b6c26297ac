package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"service_directory/internal/directory"
	"service_directory/internal/models"
)

// CatalogSQLite reads and writes a catalog snapshot in the services table.
type CatalogSQLite struct {
	db *sql.DB
}

func NewCatalogSQLite(db *sql.DB) *CatalogSQLite {
	return &CatalogSQLite{db: db}
}

const (
	selectServicesSQL = `
		SELECT id, name, description, category, subcategory, image, features, tags, popular, price, time_estimate
		FROM services ORDER BY position ASC
	`

	deleteServicesSQL = `DELETE FROM services`

	insertServiceSQL = `
		INSERT INTO services (id, position, name, description, category, subcategory, image, features, tags, popular, price, time_estimate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
)

// marshalList stores a string list as a JSON array; nil stays NULL.
func marshalList(list []string) (*string, error) {
	if list == nil {
		return nil, nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

func unmarshalList(s sql.NullString) ([]string, error) {
	if !s.Valid {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(s.String), &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Load reads all rows in export order. A row whose list columns do not decode
// is rejected; a query failure makes the catalog unavailable.
func (r *CatalogSQLite) Load(ctx context.Context) (Snapshot, error) {
	rows, err := r.db.QueryContext(ctx, selectServicesSQL)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: query services: %v", directory.ErrCatalogUnavailable, err)
	}
	defer rows.Close()

	snap := Snapshot{Records: make([]models.ServiceRecord, 0, 64)}
	for i := 0; rows.Next(); i++ {
		var (
			rec            models.ServiceRecord
			features, tags sql.NullString
		)
		if err := rows.Scan(
			&rec.ID,
			&rec.Name,
			&rec.Description,
			&rec.Category,
			&rec.Subcategory,
			&rec.Image,
			&features,
			&tags,
			&rec.Popular,
			&rec.Price,
			&rec.TimeEstimate,
		); err != nil {
			return Snapshot{}, fmt.Errorf("%w: scan services: %v", directory.ErrCatalogUnavailable, err)
		}

		if rec.Features, err = unmarshalList(features); err != nil {
			snap.Rejected = append(snap.Rejected, models.RejectedRecord{
				Stage: models.StageDecode, Index: i, ID: rec.ID, Reason: "features: " + err.Error(),
			})
			continue
		}
		if rec.Tags, err = unmarshalList(tags); err != nil {
			snap.Rejected = append(snap.Rejected, models.RejectedRecord{
				Stage: models.StageDecode, Index: i, ID: rec.ID, Reason: "tags: " + err.Error(),
			})
			continue
		}
		snap.Records = append(snap.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", directory.ErrCatalogUnavailable, err)
	}
	return snap, nil
}

// Export replaces the stored snapshot with records, keeping their order.
func (r *CatalogSQLite) Export(ctx context.Context, records []models.ServiceRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteServicesSQL); err != nil {
		return fmt.Errorf("clear services: %w", err)
	}
	for i, rec := range records {
		features, err := marshalList(rec.Features)
		if err != nil {
			return err
		}
		tags, err := marshalList(rec.Tags)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, insertServiceSQL,
			rec.ID,
			i,
			rec.Name,
			rec.Description,
			rec.Category,
			rec.Subcategory,
			rec.Image,
			features,
			tags,
			rec.Popular,
			rec.Price,
			rec.TimeEstimate,
		); err != nil {
			return fmt.Errorf("insert service %q: %w", rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit export: %w", err)
	}
	return nil
}
