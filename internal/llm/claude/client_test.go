package claude

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "sentence-analyzer/internal/common/errors"
	httpclient "sentence-analyzer/internal/common/http"
	"sentence-analyzer/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New("test-key",
		WithBaseURL(server.URL),
		WithClient(httpclient.NewClientFrom(server.Client())),
	)
}

func TestGenerate(t *testing.T) {
	var got messagesRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, DefaultVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]interface{}{{"type": "text", "text": `{"endpoints": []}`}},
		})
	})

	text, err := client.Generate(context.Background(), "extract", models.ModelParams{
		Name:   "default",
		Claude: "claude-3-haiku-20240307",
	})
	require.NoError(t, err)
	assert.Equal(t, `{"endpoints": []}`, text)

	assert.Equal(t, "claude-3-haiku-20240307", got.Model)
	assert.Equal(t, defaultMaxTokens, got.MaxTokens)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "extract", got.Messages[0].Content)
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		errContain string
	}{
		{
			name: "no content blocks",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]interface{}{"content": []interface{}{}})
			},
			errContain: "empty response",
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":{"type":"authentication_error"}}`))
			},
			errContain: "status 401",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)

			_, err := client.Generate(context.Background(), "p", models.ModelParams{Name: "m"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContain)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeGeneration))
		})
	}
}
