package extractjson

import (
	"context"

	"sentence-analyzer/internal/common/config"
	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/common/jsonutil"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/common/validation"
	"sentence-analyzer/internal/llm"
	"sentence-analyzer/internal/pipeline"
	"sentence-analyzer/internal/prompts"
)

const (
	StageName = config.StageExtractJSON
)

// Handler asks the model for the actions and fields in the sentence.
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
	if err := validation.ValidateSentence(rc.Sentence); err != nil {
		return err
	}

	prompt, err := h.prompts.Render(prompts.SentenceToJSON, h.config.PromptVersion, map[string]string{
		"sentence": rc.Sentence,
	})
	if err != nil {
		return apperrors.NewInternalError(err)
	}

	text, err := llm.GenerateText(ctx, h.provider, prompt, rc.Models.SentenceToJSON)
	if err != nil {
		return err
	}

	doc, err := jsonutil.Extract(text)
	if err != nil {
		h.logger.Debug("model output holds no usable JSON", map[string]interface{}{
			"requestId": rc.RequestID,
			"raw":       text,
		})
		return err
	}
	if err := validation.ValidateExtraction(doc); err != nil {
		return err
	}

	rc.JSONOutput = doc

	actions, _ := doc["endpoints"].([]interface{})
	h.logger.Info("sentence converted to JSON", map[string]interface{}{
		"requestId": rc.RequestID,
		"actions":   len(actions),
	})
	return nil
}
