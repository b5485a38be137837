package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sentence-analyzer/internal/models"
	"sentence-analyzer/pkg/registry"
)

func TestEditCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "endpoints.yaml")

	require.NoError(t, addEndpoint(path, models.Endpoint{ID: "schedule_meeting", Text: "schedule meeting"}))
	require.NoError(t, addParameter(path, "schedule_meeting", models.Parameter{
		Name:         "time",
		Required:     true,
		Alternatives: splitList("when, datetime,"),
	}))
	require.NoError(t, updateEndpoint(path, "schedule_meeting", "description", "Schedule a meeting"))

	doc, err := registry.LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, doc.Endpoints, 1)
	ep := doc.Endpoints[0]
	assert.Equal(t, "Schedule a meeting", ep.Description)
	require.Len(t, ep.Parameters, 1)
	assert.Equal(t, []string{"when", "datetime"}, ep.Parameters[0].Alternatives)
	assert.NotEmpty(t, doc.LastUpdated)
}

func TestEditCatalog_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "endpoints.json")
	require.NoError(t, addEndpoint(path, models.Endpoint{ID: "a", Text: "a"}))

	assert.ErrorContains(t, addEndpoint(path, models.Endpoint{ID: "a", Text: "again"}), "already exists")
	assert.ErrorContains(t, updateEndpoint(path, "missing", "text", "x"), "not found")
	assert.ErrorContains(t, updateEndpoint(path, "a", "colour", "x"), "unknown field")

	require.NoError(t, addParameter(path, "a", models.Parameter{Name: "p"}))
	assert.ErrorContains(t, addParameter(path, "a", models.Parameter{Name: "p"}), "duplicate parameter")
}
