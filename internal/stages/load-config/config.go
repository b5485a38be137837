// internal/stages/load-config/config.go
package loadconfig

import (
	"sentence-analyzer/internal/common/config"
	"sentence-analyzer/internal/models"
)

type Config struct {
	Models models.ModelSet
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Models: cfg.Models.Set(),
	}
}
