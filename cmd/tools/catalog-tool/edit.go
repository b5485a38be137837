package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sentence-analyzer/internal/models"
	"sentence-analyzer/pkg/registry"
)

func loadOrCreate(path string) (*registry.CatalogDocument, error) {
	doc, err := registry.LoadCatalog(path)
	if err == nil {
		return doc, nil
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return &registry.CatalogDocument{Version: "1.0.0"}, nil
	}
	return nil, fmt.Errorf("failed to load catalog: %w", err)
}

func save(path string, doc *registry.CatalogDocument) error {
	doc.LastUpdated = time.Now().UTC().Format(time.RFC3339)
	for i := range doc.Endpoints {
		if doc.Endpoints[i].Parameters == nil {
			doc.Endpoints[i].Parameters = []models.Parameter{}
		}
	}
	if err := registry.Validate(doc); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return registry.SaveCatalog(path, doc)
}

func findEndpoint(doc *registry.CatalogDocument, id string) (*models.Endpoint, error) {
	for i := range doc.Endpoints {
		if doc.Endpoints[i].ID == id {
			return &doc.Endpoints[i], nil
		}
	}
	return nil, fmt.Errorf("endpoint with ID %s not found", id)
}

func addEndpoint(path string, ep models.Endpoint) error {
	doc, err := loadOrCreate(path)
	if err != nil {
		return err
	}
	if _, err := findEndpoint(doc, ep.ID); err == nil {
		return fmt.Errorf("endpoint with ID %s already exists", ep.ID)
	}
	doc.Endpoints = append(doc.Endpoints, ep)
	return save(path, doc)
}

func updateEndpoint(path, id, field, value string) error {
	doc, err := registry.LoadCatalog(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	ep, err := findEndpoint(doc, id)
	if err != nil {
		return err
	}

	switch field {
	case "text":
		ep.Text = value
	case "description":
		ep.Description = value
	case "id":
		ep.ID = value
	default:
		return fmt.Errorf("unknown field: %s", field)
	}
	return save(path, doc)
}

func addParameter(path, endpointID string, p models.Parameter) error {
	doc, err := registry.LoadCatalog(path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	ep, err := findEndpoint(doc, endpointID)
	if err != nil {
		return err
	}
	ep.Parameters = append(ep.Parameters, p)
	return save(path, doc)
}

// splitList parses a comma separated flag value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
