// internal/stages/extract-json/config.go
package extractjson

import (
	"sentence-analyzer/internal/common/config"
	"sentence-analyzer/internal/prompts"
)

type Config struct {
	// PromptVersion selects the sentence_to_json template; empty means the
	// template's default version.
	PromptVersion string
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		PromptVersion: cfg.Prompts.Version(prompts.SentenceToJSON),
	}
}
