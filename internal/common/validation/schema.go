package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	apperrors "sentence-analyzer/internal/common/errors"
)

// ExtractionSchema is the shape sentence_to_json output must have: a
// non-empty "endpoints" array whose items carry a "fields" object.
const ExtractionSchema = `{
  "type": "object",
  "required": ["endpoints"],
  "properties": {
    "endpoints": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["fields"],
        "properties": {
          "fields": {"type": "object"}
        }
      }
    }
  }
}`

// CatalogSchema describes an endpoint catalog document.
const CatalogSchema = `{
  "type": "object",
  "required": ["endpoints"],
  "properties": {
    "endpoints": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "text"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "text": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "parameters": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name"],
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "description": {"type": "string"},
                "required": {"type": "boolean"},
                "alternatives": {"type": "array", "items": {"type": "string"}}
              }
            }
          }
        }
      }
    }
  }
}`

var (
	schemaOnce       sync.Once
	extractionSchema *gojsonschema.Schema
	catalogSchema    *gojsonschema.Schema
	schemaErr        error
)

func compiledSchemas() (*gojsonschema.Schema, *gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		extractionSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(ExtractionSchema))
		if schemaErr != nil {
			return
		}
		catalogSchema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(CatalogSchema))
	})
	return extractionSchema, catalogSchema, schemaErr
}

// ValidateExtraction checks decoded model output against ExtractionSchema.
func ValidateExtraction(doc map[string]interface{}) error {
	schema, _, err := compiledSchemas()
	if err != nil {
		return fmt.Errorf("compile extraction schema: %w", err)
	}
	return validate(schema, "Model output", doc)
}

// ValidateCatalog checks a decoded catalog document against CatalogSchema.
func ValidateCatalog(doc interface{}) error {
	_, schema, err := compiledSchemas()
	if err != nil {
		return fmt.Errorf("compile catalog schema: %w", err)
	}
	return validate(schema, "Catalog", doc)
}

func validate(schema *gojsonschema.Schema, subject string, doc interface{}) error {
	result, err := schema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return apperrors.NewSchemaValidationError(subject, err.Error())
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return apperrors.NewSchemaValidationError(subject, strings.Join(errs, "; "))
	}
	return nil
}
