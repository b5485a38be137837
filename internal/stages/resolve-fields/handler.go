package resolvefields

import (
	"context"

	"sentence-analyzer/internal/common/config"
	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/common/jsonutil"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/llm"
	"sentence-analyzer/internal/pipeline"
	"sentence-analyzer/internal/prompts"
)

const (
	StageName = config.StageResolveFields
)

// Handler maps the extracted fields onto the matched endpoint's parameters:
// exact name, then declared alternatives, then at most one semantic model
// call for whatever is left.
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
	if err := rc.RequireJSON(StageName); err != nil {
		return err
	}
	if err := rc.RequireEndpoint(StageName); err != nil {
		return err
	}

	fields := FieldsOf(rc.JSONOutput)
	params, tiers, unresolved := Resolve(fields, rc.MatchedEndpoint.Parameters)

	if unresolved {
		mapping, err := h.semanticMapping(ctx, rc, fields)
		if err != nil {
			return err
		}
		ApplySemantic(params, mapping, tiers)
	}

	rc.Parameters = params

	missing := make([]string, 0)
	for _, p := range params {
		if p.Value == nil && p.Required {
			missing = append(missing, p.Name)
		}
	}
	h.logger.Info("fields resolved", map[string]interface{}{
		"requestId":        rc.RequestID,
		"endpointId":       rc.EndpointID,
		"tiers":            tiers,
		"semanticFallback": unresolved,
		"missingRequired":  missing,
	})
	return nil
}

func (h *Handler) semanticMapping(ctx context.Context, rc *pipeline.RequestContext, fields map[string]interface{}) (map[string]interface{}, error) {
	prompt, err := h.prompts.Render(prompts.MatchFields, h.config.PromptVersion, map[string]string{
		"input_fields": FormatInputFields(fields),
		"parameters":   FormatParameters(rc.MatchedEndpoint.Parameters),
	})
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	text, err := llm.GenerateText(ctx, h.provider, prompt, rc.Models.MatchFields)
	if err != nil {
		return nil, err
	}
	return jsonutil.Extract(text)
}
