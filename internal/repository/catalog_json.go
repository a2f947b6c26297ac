package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"service_directory/internal/directory"
	"service_directory/internal/models"
)

// JSONCatalog reads the catalog from a JSON array of service records.
type JSONCatalog struct {
	path string
}

func NewJSONCatalog(path string) *JSONCatalog { return &JSONCatalog{path: path} }

// Load decodes the file element by element, so one bad entry is reported
// instead of failing the whole catalog. Anything that is not a JSON array
// makes the catalog unavailable.
func (r *JSONCatalog) Load(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("%w: read %q: %v", directory.ErrCatalogUnavailable, r.path, err)
	}
	return DecodeCatalog(raw)
}

// DecodeCatalog parses a JSON array of records.
func DecodeCatalog(raw []byte) (Snapshot, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", directory.ErrCatalogUnavailable, err)
	}
	if elems == nil {
		// a literal null is not a sequence of records
		return Snapshot{}, fmt.Errorf("%w: catalog is not an array", directory.ErrCatalogUnavailable)
	}

	snap := Snapshot{Records: make([]models.ServiceRecord, 0, len(elems))}
	for i, elem := range elems {
		var rec models.ServiceRecord
		if err := json.Unmarshal(elem, &rec); err != nil {
			snap.Rejected = append(snap.Rejected, models.RejectedRecord{
				Stage:  models.StageDecode,
				Index:  i,
				ID:     peekID(elem),
				Reason: err.Error(),
			})
			continue
		}
		snap.Records = append(snap.Records, rec)
	}
	return snap, nil
}

// peekID recovers the id of an element that failed to decode, for reporting.
func peekID(elem json.RawMessage) string {
	var probe struct {
		ID json.RawMessage `json:"id"`
	}
	if json.Unmarshal(elem, &probe) != nil || probe.ID == nil {
		return ""
	}
	var id string
	if json.Unmarshal(probe.ID, &id) == nil {
		return id
	}
	return string(probe.ID)
}
