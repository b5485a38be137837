// Package ollama calls a local Ollama server's generate API.
package ollama

import (
	"context"
	"strings"
	"time"

	apperrors "sentence-analyzer/internal/common/errors"
	httpclient "sentence-analyzer/internal/common/http"
	"sentence-analyzer/internal/models"
)

const (
	Name        = "ollama"
	DefaultHost = "http://localhost:11434"
)

type Client struct {
	host string
	http *httpclient.Client
}

type Option func(*Client)

func WithClient(c *httpclient.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func New(host string, opts ...Option) *Client {
	if host == "" {
		host = DefaultHost
	}
	c := &Client{
		host: strings.TrimRight(host, "/"),
		http: httpclient.NewClient(2 * time.Minute),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateRequest struct {
	Model       string          `json:"model"`
	Prompt      string          `json:"prompt"`
	Stream      bool            `json:"stream"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
	Options     generateOptions `json:"options"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (c *Client) Name() string {
	return Name
}

// Generate posts a non-streaming request to {host}/api/generate.
func (c *Client) Generate(ctx context.Context, prompt string, params models.ModelParams) (string, error) {
	req := generateRequest{
		Model:       params.ModelFor(Name),
		Prompt:      prompt,
		Stream:      false,
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
		Options: generateOptions{
			Temperature: params.Temperature,
			NumPredict:  params.MaxTokens,
		},
	}

	var resp generateResponse
	if err := c.http.PostJSON(ctx, c.host+"/api/generate", nil, req, &resp); err != nil {
		return "", apperrors.NewGenerationError(Name, err)
	}

	if strings.TrimSpace(resp.Response) == "" {
		return "", apperrors.NewEmptyGenerationError(Name)
	}
	return resp.Response, nil
}
