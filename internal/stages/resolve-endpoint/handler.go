package resolveendpoint

import (
	"context"
	"errors"

	"sentence-analyzer/internal/common/config"
	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/llm"
	"sentence-analyzer/internal/pipeline"
	"sentence-analyzer/internal/prompts"
)

const (
	StageName = config.StageResolveEndpoint
)

var (
	ErrEmptyAnswer = errors.New("EMPTY_ANSWER")
)

// Handler asks the model which catalog action the sentence means and maps
// the answer onto a catalog endpoint.
type Handler struct {
	config   *Config
	provider llm.Provider
	prompts  *prompts.Store
	logger   logger.Logger
}

func NewHandler(config *Config, provider llm.Provider, store *prompts.Store, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		provider: provider,
		prompts:  store,
		logger: log.WithFields(map[string]interface{}{
			"stage": StageName,
		}),
	}
}

func (h *Handler) Name() string {
	return StageName
}

func (h *Handler) Process(ctx context.Context, rc *pipeline.RequestContext) error {
	if err := rc.RequireCatalog(StageName); err != nil {
		return err
	}

	prompt, err := h.prompts.Render(prompts.FindEndpoint, h.config.PromptVersion, map[string]string{
		"input_sentence": rc.Sentence,
		"actions_list":   ActionsList(rc.Catalog),
	})
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	raw, err := llm.GenerateText(ctx, h.provider, prompt, rc.Models.FindEndpoint)
	if err != nil {
		return err
	}

	answer := CleanAnswer(raw)
	if answer == "" {
		return apperrors.NewExtractionError("model answer is empty after cleanup", raw, ErrEmptyAnswer)
	}

	endpoint, ok := Match(rc.Catalog, answer)
	if !ok {
		h.logger.Warn("no endpoint matched the answer", map[string]interface{}{
			"requestId": rc.RequestID,
			"answer":    answer,
			"endpoints": len(rc.Catalog),
		})
		return apperrors.NewNoMatchError(answer)
	}

	rc.SetMatchedEndpoint(endpoint)

	h.logger.Info("endpoint resolved", map[string]interface{}{
		"requestId":  rc.RequestID,
		"answer":     answer,
		"endpointId": endpoint.ID,
	})
	return nil
}
