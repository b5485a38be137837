package catalog

import (
	"context"

	"sentence-analyzer/internal/common/config"
	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/models"
	"sentence-analyzer/pkg/registry"
)

// FileSource reads a YAML or JSON catalog file on every load, so edits take
// effect without a restart. The file is shared by all identities.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string {
	return config.CatalogSourceFile
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Load(ctx context.Context, _ string) ([]models.Endpoint, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := registry.LoadCatalog(s.path)
	observe(s.Name(), resultOf(endpointsOf(doc), err))
	if err != nil {
		return nil, apperrors.NewConfigurationError("", err)
	}
	return doc.Endpoints, nil
}

func endpointsOf(doc *registry.CatalogDocument) []models.Endpoint {
	if doc == nil {
		return nil
	}
	return doc.Endpoints
}
