// internal/stages/resolve-endpoint/config.go
package resolveendpoint

import (
	"sentence-analyzer/internal/common/config"
	"sentence-analyzer/internal/prompts"
)

type Config struct {
	PromptVersion string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		PromptVersion: cfg.Prompts.Version(prompts.FindEndpoint),
	}
}
