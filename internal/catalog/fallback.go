package catalog

import (
	"context"
	"errors"

	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/models"
)

// FallbackSource loads from primary and turns to secondary when primary fails
// or returns no endpoints. The secondary's outcome is final.
type FallbackSource struct {
	primary   Source
	secondary Source
	logger    logger.Logger
}

func NewFallbackSource(primary, secondary Source, log logger.Logger) *FallbackSource {
	return &FallbackSource{
		primary:   primary,
		secondary: secondary,
		logger:    log,
	}
}

func (s *FallbackSource) Name() string {
	return s.primary.Name() + "+" + s.secondary.Name()
}

func (s *FallbackSource) Close() error {
	return errors.Join(Close(s.primary), Close(s.secondary))
}

func (s *FallbackSource) Load(ctx context.Context, identity string) ([]models.Endpoint, error) {
	endpoints, err := s.primary.Load(ctx, identity)
	if err == nil && len(endpoints) > 0 {
		return endpoints, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fields := map[string]interface{}{
		"primary":   s.primary.Name(),
		"secondary": s.secondary.Name(),
	}
	if err != nil {
		fields["error"] = err.Error()
		s.logger.Warn("primary catalog failed, using fallback", fields)
	} else {
		s.logger.Warn("primary catalog is empty, using fallback", fields)
	}

	return s.secondary.Load(ctx, identity)
}
