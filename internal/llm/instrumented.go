package llm

import (
	"context"
	"time"

	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/common/metrics"
	"sentence-analyzer/internal/models"
)

type instrumented struct {
	next    Provider
	counter *TokenCounter
	logger  logger.Logger
}

// Instrument wraps p so every call is logged, counted and has its prompt
// size estimated.
func Instrument(p Provider, counter *TokenCounter, log logger.Logger) Provider {
	return &instrumented{
		next:    p,
		counter: counter,
		logger:  log.WithFields(map[string]interface{}{"provider": p.Name()}),
	}
}

func (i *instrumented) Name() string {
	return i.next.Name()
}

func (i *instrumented) Generate(ctx context.Context, prompt string, params models.ModelParams) (string, error) {
	model := params.ModelFor(i.next.Name())
	tokens := i.counter.Count(prompt)
	metrics.ModelPromptTokens.WithLabelValues(i.next.Name(), model).Observe(float64(tokens))

	i.logger.Debug("Calling model", map[string]interface{}{
		"model":        model,
		"promptTokens": tokens,
	})

	start := time.Now()
	text, err := i.next.Generate(ctx, prompt, params)
	duration := time.Since(start)

	if err != nil {
		metrics.ModelCalls.WithLabelValues(i.next.Name(), model, "error").Inc()
		i.logger.Warn("Model call failed", map[string]interface{}{
			"model":      model,
			"durationMs": duration.Milliseconds(),
			"error":      err.Error(),
		})
		return "", err
	}

	metrics.ModelCalls.WithLabelValues(i.next.Name(), model, "success").Inc()
	i.logger.Debug("Model call completed", map[string]interface{}{
		"model":        model,
		"durationMs":   duration.Milliseconds(),
		"responseSize": len(text),
	})
	return text, nil
}
