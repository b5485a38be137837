// Package catalog loads the endpoint catalog a caller's sentences are matched
// against. Sources are safe for concurrent use and never mutate the endpoints
// they return.
package catalog

import (
	"context"
	"fmt"
	"io"
	"time"

	"sentence-analyzer/internal/common/config"
	"sentence-analyzer/internal/common/database"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/common/metrics"
	"sentence-analyzer/internal/models"
)

// Source loads the ordered endpoint list for a caller identity.
type Source interface {
	Name() string
	Load(ctx context.Context, identity string) ([]models.Endpoint, error)
}

// Dependencies carries the shared clients a source may need. Nil clients are
// allowed when the configured source does not use them.
type Dependencies struct {
	Postgres *database.PostgresClient
	Redis    *database.RedisClient
}

// New builds the configured source: the primary backend, optionally backed by
// the local file and fronted by the Redis cache.
func New(cfg config.CatalogConfig, deps Dependencies, log logger.Logger) (Source, error) {
	log = log.WithFields(map[string]interface{}{"component": "catalog"})

	var src Source
	switch cfg.Source {
	case config.CatalogSourceFile:
		src = NewFileSource(cfg.File)
	case config.CatalogSourceRemote:
		src = NewRemoteSource(cfg.RemoteAddress, config.GetDuration(cfg.RemoteTimeout))
	case config.CatalogSourcePostgres:
		if deps.Postgres == nil {
			return nil, fmt.Errorf("catalog source postgres requires a database connection")
		}
		src = NewPostgresSource(deps.Postgres, cfg.Table)
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Source)
	}

	if cfg.Fallback && cfg.Source != config.CatalogSourceFile && cfg.File != "" {
		src = NewFallbackSource(src, NewFileSource(cfg.File), log)
	}

	if cfg.CacheTTL > 0 {
		if deps.Redis == nil {
			return nil, fmt.Errorf("catalog cache requires a redis connection")
		}
		src = NewCachedSource(src, deps.Redis, time.Duration(cfg.CacheTTL)*time.Second, log)
	}

	return src, nil
}

// Close releases the connections held by src and every source it wraps.
// Sources without connections are left alone.
func Close(src Source) error {
	if c, ok := src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func observe(source, result string) {
	metrics.CatalogLookups.WithLabelValues(source, result).Inc()
}

func resultOf(endpoints []models.Endpoint, err error) string {
	switch {
	case err != nil:
		return "error"
	case len(endpoints) == 0:
		return "empty"
	default:
		return "ok"
	}
}
