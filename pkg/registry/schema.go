package registry

import "sentence-analyzer/internal/models"

// CatalogDocument is the on-disk form of an endpoint catalog.
type CatalogDocument struct {
	Version     string            `json:"version,omitempty" yaml:"version,omitempty"`
	LastUpdated string            `json:"lastUpdated,omitempty" yaml:"last_updated,omitempty"`
	Endpoints   []models.Endpoint `json:"endpoints" yaml:"endpoints"`
}
