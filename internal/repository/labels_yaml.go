package repository

import (
	"context"
	"fmt"
	"os"

	"service_directory/internal/models"

	"gopkg.in/yaml.v3"
)

// YAMLLabels reads subcategory card metadata from a YAML mapping.
type YAMLLabels struct {
	path string
}

func NewYAMLLabels(path string) *YAMLLabels { return &YAMLLabels{path: path} }

// LoadLabels returns an empty table when no path is configured.
func (r *YAMLLabels) LoadLabels(ctx context.Context) (map[string]models.SubcategoryInfo, error) {
	if r.path == "" {
		return map[string]models.SubcategoryInfo{}, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read labels %q: %w", r.path, err)
	}
	out := map[string]models.SubcategoryInfo{}
	if err := yaml.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse labels %q: %w", r.path, err)
	}
	return out, nil
}
