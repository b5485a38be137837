package llm

import (
	"context"
	"errors"
	"strings"

	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/models"
)

// ErrEmptyResponse is the cause of a GenerationError for a blank reply.
var ErrEmptyResponse = errors.New("EMPTY_MODEL_RESPONSE")

// GenerateText calls p and normalizes its failures: untyped errors become
// GenerationErrors and a blank reply is a GenerationError caused by
// ErrEmptyResponse.
func GenerateText(ctx context.Context, p Provider, prompt string, params models.ModelParams) (string, error) {
	text, err := p.Generate(ctx, prompt, params)
	if err != nil {
		if _, ok := apperrors.AsStandard(err); ok {
			return "", err
		}
		return "", apperrors.NewGenerationError(p.Name(), err)
	}
	if strings.TrimSpace(text) == "" {
		return "", apperrors.NewGenerationError(p.Name(), ErrEmptyResponse)
	}
	return text, nil
}
