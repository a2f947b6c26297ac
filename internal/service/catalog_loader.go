package service

import (
	"context"
	"errors"
	"fmt"

	"service_directory/internal/directory"
	"service_directory/internal/logger"
	"service_directory/internal/models"
	"service_directory/internal/repository"
)

// LoadedCatalog is the outcome of reading the catalog at startup.
type LoadedCatalog struct {
	Catalog  *directory.Catalog
	Labels   directory.Labels
	Rejected []models.RejectedRecord
}

// LoadCatalog reads the catalog source, validates every record and loads the
// subcategory labels. Each rejected entry is logged; missing labels only warn.
func LoadCatalog(ctx context.Context, repos *repository.Repository, log *logger.Logger) (LoadedCatalog, error) {
	if log == nil {
		log = logger.Nop()
	}
	snap, err := repos.Catalog.Load(ctx)
	if err != nil {
		return LoadedCatalog{}, err
	}

	catalog, invalid := directory.NewCatalog(snap.Records)
	rejected := append(snap.Rejected, invalid...)
	for _, r := range rejected {
		log.Warnw("catalog_record_rejected", "stage", r.Stage, "index", r.Index, "id", r.ID, "reason", r.Reason)
	}

	var labels directory.Labels
	if repos.Labels != nil {
		table, err := repos.Labels.LoadLabels(ctx)
		if err != nil {
			log.Warnw("subcategory_labels_unavailable", "err", err)
		}
		labels = table
	}
	if missing := labels.Missing(catalog); len(missing) > 0 {
		log.Warnw("subcategory_labels_missing", "subcategories", missing)
	}

	log.Infow("catalog_loaded",
		"services", catalog.Len(),
		"rejected", len(rejected),
		"categories", len(catalog.Categories()),
		"subcategories", len(catalog.Subcategories()),
	)
	return LoadedCatalog{Catalog: catalog, Labels: labels, Rejected: rejected}, nil
}

// unavailable wraps a load error so callers can match ErrCatalogUnavailable
// even when the source failed some other way.
func unavailable(err error) error {
	if err == nil || errors.Is(err, directory.ErrCatalogUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %v", directory.ErrCatalogUnavailable, err)
}
