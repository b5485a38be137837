package catalog

import (
	"context"
	"os"
	"time"

	"sentence-analyzer/internal/common/config"
	"sentence-analyzer/internal/common/logger"
)

const verifyTimeout = 5 * time.Second

// Verify checks at startup that some catalog is reachable: the remote service
// when one is configured, then the local file. It logs its findings and never
// fails.
func Verify(ctx context.Context, cfg config.CatalogConfig, log logger.Logger) bool {
	if cfg.RemoteAddress != "" {
		remote := NewRemoteSource(cfg.RemoteAddress, 0)
		defer remote.Close()

		pingCtx, cancel := context.WithTimeout(ctx, verifyTimeout)
		err := remote.Ping(pingCtx)
		cancel()
		if err == nil {
			log.Info("endpoint service is available", map[string]interface{}{
				"address": remote.Address(),
			})
			return true
		}
		log.Warn("endpoint service is not available, checking local catalog file", map[string]interface{}{
			"address": remote.Address(),
			"error":   err.Error(),
		})
	}

	if cfg.File == "" {
		log.Warn("no local catalog file configured", nil)
		return false
	}

	info, err := os.Stat(cfg.File)
	switch {
	case err != nil:
		log.Warn("local catalog file not available", map[string]interface{}{
			"file":  cfg.File,
			"error": err.Error(),
		})
		return false
	case info.IsDir():
		log.Warn("local catalog path is a directory", map[string]interface{}{"file": cfg.File})
		return false
	}

	log.Info("local catalog file exists", map[string]interface{}{"file": cfg.File})
	return true
}
