// Package registry reads and writes endpoint catalog files (YAML or JSON).
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"sentence-analyzer/internal/common/validation"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatOf picks the encoding from a file extension; YAML is the default.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// LoadCatalog reads, schema-checks and decodes the catalog at path.
func LoadCatalog(path string) (*CatalogDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data, FormatOf(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes a catalog document, checking it against the catalog schema
// and for duplicate identifiers.
func Parse(data []byte, format Format) (*CatalogDocument, error) {
	var raw interface{}
	if err := unmarshal(data, format, &raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validation.ValidateCatalog(raw); err != nil {
		return nil, err
	}

	var doc CatalogDocument
	if err := unmarshal(data, format, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := Validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks constraints the schema cannot express: unique endpoint ids
// and unique parameter names within an endpoint.
func Validate(doc *CatalogDocument) error {
	seen := make(map[string]bool, len(doc.Endpoints))
	for _, ep := range doc.Endpoints {
		if seen[ep.ID] {
			return fmt.Errorf("duplicate endpoint id %q", ep.ID)
		}
		seen[ep.ID] = true

		params := make(map[string]bool, len(ep.Parameters))
		for _, p := range ep.Parameters {
			if params[p.Name] {
				return fmt.Errorf("endpoint %q: duplicate parameter %q", ep.ID, p.Name)
			}
			params[p.Name] = true
		}
	}
	return nil
}

// Encode renders doc in the given format.
func Encode(doc *CatalogDocument, format Format) ([]byte, error) {
	if format == FormatJSON {
		return json.MarshalIndent(doc, "", "  ")
	}
	return yaml.Marshal(doc)
}

// SaveCatalog writes doc to path in the format implied by its extension.
func SaveCatalog(path string, doc *CatalogDocument) error {
	data, err := Encode(doc, FormatOf(path))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func unmarshal(data []byte, format Format, out interface{}) error {
	if format == FormatJSON {
		return json.Unmarshal(data, out)
	}
	return yaml.Unmarshal(data, out)
}
