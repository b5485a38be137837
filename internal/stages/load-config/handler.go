package loadconfig

import (
	"context"
	"errors"
	"fmt"

	"sentence-analyzer/internal/catalog"
	"sentence-analyzer/internal/common/config"
	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/pipeline"
)

const (
	StageName = config.StageLoadConfig
)

var (
	ErrEmptyCatalog = errors.New("EMPTY_CATALOG")
)

// Handler puts the model parameters and the caller's catalog into the
// request context.
type Handler struct {
	config *Config
	source catalog.Source
	logger logger.Logger
}

func NewHandler(config *Config, source catalog.Source, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		source: source,
		logger: log.WithFields(map[string]interface{}{
			"stage": StageName,
		}),
	}
}

func (h *Handler) Name() string {
	return StageName
}

func (h *Handler) Process(ctx context.Context, rc *pipeline.RequestContext) error {
	rc.Models = h.config.Models

	endpoints, err := h.source.Load(ctx, rc.Identity)
	if err != nil {
		if _, ok := apperrors.AsStandard(err); !ok {
			err = apperrors.NewConfigurationError("", err)
		}
		return err
	}
	if len(endpoints) == 0 {
		return apperrors.NewConfigurationError(
			fmt.Sprintf("catalog source %s returned no endpoints", h.source.Name()),
			ErrEmptyCatalog,
		)
	}

	rc.Catalog = endpoints

	h.logger.Info("catalog loaded", map[string]interface{}{
		"requestId": rc.RequestID,
		"source":    h.source.Name(),
		"endpoints": len(endpoints),
	})
	return nil
}
