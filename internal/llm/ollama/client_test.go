package ollama

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
	return New(server.URL, WithClient(httpclient.NewClientFrom(server.Client())))
}

func TestGenerate(t *testing.T) {
	var got map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{"response": "schedule meeting", "done": true})
	})

	text, err := client.Generate(context.Background(), "pick one", models.ModelParams{
		Name:        "default",
		Ollama:      "llama3",
		Temperature: 0.2,
		MaxTokens:   256,
	})
	require.NoError(t, err)
	assert.Equal(t, "schedule meeting", text)

	assert.Equal(t, "llama3", got["model"])
	assert.Equal(t, "pick one", got["prompt"])
	assert.Equal(t, false, got["stream"])
	assert.InDelta(t, 0.2, got["temperature"], 1e-9)
	assert.InDelta(t, 256, got["max_tokens"], 1e-9)
	options := got["options"].(map[string]interface{})
	assert.InDelta(t, 256, options["num_predict"], 1e-9)
}

func TestGenerate_FallsBackToModelName(t *testing.T) {
	var got map[string]interface{}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"response": "ok"})
	})

	_, err := client.Generate(context.Background(), "p", models.ModelParams{Name: "mistral"})
	require.NoError(t, err)
	assert.Equal(t, "mistral", got["model"])
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		errContain string
	}{
		{
			name: "empty response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(map[string]interface{}{"response": "  "})
			},
			errContain: "empty response",
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte("model not loaded"))
			},
			errContain: "model not loaded",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			},
			errContain: "decode response",
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
