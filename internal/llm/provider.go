// Package llm defines the language model capability used by the pipeline
// stages and builds the configured backend.
package llm

import (
	"context"
	"fmt"

	"sentence-analyzer/internal/common/config"
	httpclient "sentence-analyzer/internal/common/http"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/llm/claude"
	"sentence-analyzer/internal/llm/ollama"
	"sentence-analyzer/internal/models"
)

const (
	ProviderOllama = "ollama"
	ProviderClaude = "claude"
)

// Provider generates text for a prompt. Implementations are safe for
// concurrent use and return a GenerationError for failed or empty replies.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string, params models.ModelParams) (string, error)
}

// New builds the provider named by name (or cfg.Default when empty),
// wrapped with logging and metrics.
func New(cfg config.ProvidersConfig, name string, log logger.Logger) (Provider, error) {
	if name == "" {
		name = cfg.Default
	}

	client := httpclient.NewClient(config.GetDuration(cfg.HTTPTimeout))

	var p Provider
	switch name {
	case ProviderOllama:
		p = ollama.New(cfg.Ollama.Host, ollama.WithClient(client))
	case ProviderClaude:
		if cfg.Claude.APIKey == "" {
			return nil, fmt.Errorf("claude provider requires an API key")
		}
		p = claude.New(cfg.Claude.APIKey,
			claude.WithBaseURL(cfg.Claude.BaseURL),
			claude.WithVersion(cfg.Claude.Version),
			claude.WithClient(client),
		)
	default:
		return nil, fmt.Errorf("unknown model provider %q", name)
	}

	return Instrument(p, NewTokenCounter(), log), nil
}
