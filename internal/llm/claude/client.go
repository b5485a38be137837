// Package claude calls the Anthropic Messages API.
package claude

import (
	"context"
	"strings"
	"time"

	apperrors "sentence-analyzer/internal/common/errors"
	httpclient "sentence-analyzer/internal/common/http"
	"sentence-analyzer/internal/models"
)

const (
	Name             = "claude"
	DefaultBaseURL   = "https://api.anthropic.com"
	DefaultVersion   = "2023-06-01"
	defaultMaxTokens = 1024
)

type Client struct {
	apiKey  string
	baseURL string
	version string
	http    *httpclient.Client
}

type Option func(*Client)

func WithBaseURL(url string) Option {
	return func(c *Client) {
		if url != "" {
			c.baseURL = strings.TrimRight(url, "/")
		}
	}
}

func WithVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.version = version
		}
	}
}

func WithClient(h *httpclient.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		version: DefaultVersion,
		http:    httpclient.NewClient(2 * time.Minute),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model       string    `json:"model"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	Messages    []message `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

func (c *Client) Name() string {
	return Name
}

// Generate sends prompt as a single user message and returns the first
// content block's text.
func (c *Client) Generate(ctx context.Context, prompt string, params models.ModelParams) (string, error) {
	maxTokens := params.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	req := messagesRequest{
		Model:       params.ModelFor(Name),
		MaxTokens:   maxTokens,
		Temperature: params.Temperature,
		Messages:    []message{{Role: "user", Content: prompt}},
	}
	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": c.version,
	}

	var resp messagesResponse
	if err := c.http.PostJSON(ctx, c.baseURL+"/v1/messages", headers, req, &resp); err != nil {
		return "", apperrors.NewGenerationError(Name, err)
	}

	if len(resp.Content) == 0 || strings.TrimSpace(resp.Content[0].Text) == "" {
		return "", apperrors.NewEmptyGenerationError(Name)
	}
	return resp.Content[0].Text, nil
}
