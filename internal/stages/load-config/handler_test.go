package loadconfig

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/models"
	"sentence-analyzer/internal/pipeline"
)

// ==========================
// Test Helper Functions
// ==========================

type stubSource struct {
	endpoints []models.Endpoint
	err       error
	identity  string
}

func (s *stubSource) Name() string {
	return "stub"
}

func (s *stubSource) Load(_ context.Context, identity string) ([]models.Endpoint, error) {
	s.identity = identity
	return s.endpoints, s.err
}

func createTestConfig() *Config {
	return &Config{
		Models: models.ModelSet{
			SentenceToJSON: models.ModelParams{Name: "llama3"},
			FindEndpoint:   models.ModelParams{Name: "llama3", Temperature: 0.1},
			MatchFields:    models.ModelParams{Name: "llama3"},
		},
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Process_Success(t *testing.T) {
	src := &stubSource{endpoints: []models.Endpoint{{ID: "schedule_meeting", Text: "schedule meeting"}}}
	h := NewHandler(createTestConfig(), src, logger.NewTestLogger(t))
	rc := pipeline.NewRequestContext("schedule a meeting", "john@example.com")

	require.NoError(t, h.Process(context.Background(), rc))

	assert.Equal(t, "john@example.com", src.identity)
	assert.Len(t, rc.Catalog, 1)
	assert.Equal(t, "llama3", rc.Models.FindEndpoint.Name)
	assert.Equal(t, 0.1, rc.Models.FindEndpoint.Temperature)
	assert.Equal(t, StageName, h.Name())
}

func TestHandler_Process_Errors(t *testing.T) {
	typed := apperrors.NewConfigurationError("remote catalog unavailable", nil)

	tests := []struct {
		name      string
		source    *stubSource
		wantCause error
		wantSame  error
	}{
		{
			name:      "empty catalog",
			source:    &stubSource{},
			wantCause: ErrEmptyCatalog,
		},
		{
			name:     "typed source error passes through",
			source:   &stubSource{err: typed},
			wantSame: typed,
		},
		{
			name:   "untyped source error",
			source: &stubSource{err: errors.New("disk on fire")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(createTestConfig(), tt.source, logger.NewTestLogger(t))
			rc := pipeline.NewRequestContext("hello", "john@example.com")

			err := h.Process(context.Background(), rc)
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeConfiguration))
			assert.Contains(t, err.Error(), apperrors.MsgNoConfiguration)
			assert.Empty(t, rc.Catalog)
			if tt.wantCause != nil {
				assert.ErrorIs(t, err, tt.wantCause)
			}
			if tt.wantSame != nil {
				assert.Same(t, tt.wantSame, err)
			}
		})
	}
}
