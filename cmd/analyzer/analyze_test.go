package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/models"
	"sentence-analyzer/internal/pipeline"
)

type stubRunner struct {
	calls int
}

func (r *stubRunner) Run(_ context.Context, rc *pipeline.RequestContext) (*pipeline.RequestContext, error) {
	r.calls++
	rc.JSONOutput = map[string]interface{}{"endpoints": []interface{}{}}
	rc.SetMatchedEndpoint(&models.Endpoint{ID: "schedule_meeting", Description: "Schedule a meeting"})
	rc.Parameters = []models.Parameter{
		{Name: "time", Required: true, Value: models.StringPtr("2pm")},
		{Name: "room"},
	}
	return rc, nil
}

func TestRunAnalyze_Text(t *testing.T) {
	runner := &stubRunner{}
	var out bytes.Buffer

	err := runAnalyze(context.Background(), runner, "schedule a meeting", &analyzeOptions{email: "john@example.com"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Endpoint:    schedule_meeting")
	assert.Contains(t, out.String(), "  time (required): 2pm")
	assert.Contains(t, out.String(), "  room: <unresolved>")
	assert.Contains(t, out.String(), `JSON:        {"endpoints":[]}`)
}

func TestRunAnalyze_JSON(t *testing.T) {
	var out bytes.Buffer
	err := runAnalyze(context.Background(), &stubRunner{}, "schedule a meeting",
		&analyzeOptions{email: "john@example.com", asJSON: true}, &out)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "schedule_meeting", decoded["endpoint_id"])
	assert.Len(t, decoded["parameters"], 2)
}

func TestRunAnalyze_RejectsInvalidInput(t *testing.T) {
	runner := &stubRunner{}

	err := runAnalyze(context.Background(), runner, "hello", &analyzeOptions{email: "nobody"}, &bytes.Buffer{})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	err = runAnalyze(context.Background(), runner, "", &analyzeOptions{email: "john@example.com"}, &bytes.Buffer{})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	assert.Equal(t, 0, runner.calls)
}
