package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"sentence-analyzer/internal/catalog"
	"sentence-analyzer/internal/common/config"
	"sentence-analyzer/internal/common/database"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/llm"
	"sentence-analyzer/internal/pipeline"
	"sentence-analyzer/internal/prompts"
	"sentence-analyzer/internal/service"
)

// app holds the collaborators shared by every request.
type app struct {
	cfg      *config.Config
	zap      *zap.Logger
	log      logger.Logger
	provider llm.Provider
	source   catalog.Source
	prompts  *prompts.Store
	engine   *pipeline.Engine

	postgres *database.PostgresClient
	redis    *database.RedisClient
}

func newApp(ctx context.Context, cfg *config.Config, providerName string, opts ...pipeline.Option) (*app, error) {
	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	a := &app{
		cfg: cfg,
		zap: zapLog,
		log: logger.NewZapAdapter(zapLog),
	}

	if err := a.connect(ctx); err != nil {
		a.close()
		return nil, err
	}

	var err error
	a.source, err = catalog.New(cfg.Catalog, catalog.Dependencies{
		Postgres: a.postgres,
		Redis:    a.redis,
	}, a.log)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("catalog: %w", err)
	}

	if cfg.Prompts.File != "" {
		a.prompts, err = prompts.Load(cfg.Prompts.File, a.log)
		if err != nil {
			a.close()
			return nil, fmt.Errorf("prompts: %w", err)
		}
	} else {
		a.prompts = prompts.Default(a.log)
	}

	a.provider, err = llm.New(cfg.Providers, providerName, a.log)
	if err != nil {
		a.close()
		return nil, fmt.Errorf("provider: %w", err)
	}

	a.engine = service.BuildEngine(cfg, a.provider, a.source, a.prompts, a.log, opts...)
	return a, nil
}

// connect opens the databases the catalog configuration needs.
func (a *app) connect(ctx context.Context) error {
	if a.cfg.Catalog.Source == config.CatalogSourcePostgres {
		err := retryWithBackoff(func() error {
			pg, err := database.NewPostgres(a.cfg.Database.Postgres)
			if err != nil {
				return err
			}
			if err := pg.Ping(ctx); err != nil {
				_ = pg.Close()
				return err
			}
			a.postgres = pg
			return nil
		}, 5, 2*time.Second, a.log, "PostgreSQL connection")
		if err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	}

	if a.cfg.Catalog.CacheTTL > 0 {
		a.redis = database.NewRedis(a.cfg.Database.Redis)
		err := retryWithBackoff(func() error {
			return a.redis.Ping(ctx)
		}, 5, 2*time.Second, a.log, "Redis connection")
		if err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	return nil
}

func (a *app) close() {
	if a.source != nil {
		if err := catalog.Close(a.source); err != nil {
			a.log.Warn("catalog close failed", map[string]interface{}{"error": err.Error()})
		}
	}
	if a.postgres != nil {
		_ = a.postgres.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	_ = a.zap.Sync()
}

func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log logger.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			if i > 0 {
				log.Info(operationName+" succeeded", map[string]interface{}{"attempt": i + 1})
			}
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(operationName+" failed, retrying", map[string]interface{}{
				"attempt":    i + 1,
				"maxRetries": maxRetries,
				"retryIn":    delay.String(),
				"error":      err.Error(),
			})
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}
