package pipeline

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/common/metrics"
)

// SleepFunc waits d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Engine executes a fixed list of steps. It holds no per-request state and is
// safe for concurrent use.
type Engine struct {
	steps        []Step
	timeoutScope TimeoutScope
	sleep        SleepFunc
	tracer       trace.Tracer
	logger       logger.Logger
}

type Option func(*Engine)

func WithTimeoutScope(scope TimeoutScope) Option {
	return func(e *Engine) {
		if scope != "" {
			e.timeoutScope = scope
		}
	}
}

// WithSleep replaces the wait between attempts.
func WithSleep(fn SleepFunc) Option {
	return func(e *Engine) {
		e.sleep = fn
	}
}

func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) {
		e.tracer = t
	}
}

func NewEngine(steps []Step, log logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		steps:        append([]Step(nil), steps...),
		timeoutScope: TimeoutNone,
		sleep:        sleepContext,
		tracer:       otel.Tracer("sentence-analyzer/pipeline"),
		logger:       log.Named("pipeline"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Steps() []Step {
	return append([]Step(nil), e.steps...)
}

// Execute runs the pipeline for sentence on behalf of identity.
func (e *Engine) Execute(ctx context.Context, sentence, identity string) (*RequestContext, error) {
	return e.Run(ctx, NewRequestContext(sentence, identity))
}

// Run executes every enabled step against rc in order. The first step that
// still fails after its retries aborts the run; its last error is returned
// unchanged and rc is not returned.
func (e *Engine) Run(ctx context.Context, rc *RequestContext) (*RequestContext, error) {
	ctx, span := e.tracer.Start(ctx, "pipeline.run", trace.WithAttributes(
		attribute.String("request.id", rc.RequestID),
		attribute.String("client.id", rc.ClientID),
	))
	defer span.End()

	log := e.logger.WithFields(rc.LogFields())

	for _, step := range e.steps {
		name := step.Config.Name
		if name == "" {
			name = step.Stage.Name()
		}

		if !step.Config.Enabled {
			metrics.StageSkipped.WithLabelValues(name).Inc()
			log.Debug("Skipping disabled stage", map[string]interface{}{"stage": name})
			continue
		}

		start := time.Now()
		err := e.runStage(ctx, name, step, rc, log)
		metrics.StageDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, name+" failed")
			log.Error("Pipeline aborted", map[string]interface{}{
				"stage":      name,
				"durationMs": time.Since(start).Milliseconds(),
				"error":      err.Error(),
			})
			return nil, err
		}
	}

	return rc, nil
}

func (e *Engine) runStage(ctx context.Context, name string, step Step, rc *RequestContext, log logger.Logger) error {
	ctx, span := e.tracer.Start(ctx, "stage."+name)
	defer span.End()

	attempts := 1
	var delay time.Duration
	if step.Config.Retry != nil && step.Config.Retry.MaxAttempts > 1 {
		attempts = step.Config.Retry.MaxAttempts
		delay = step.Config.Retry.Delay
	}

	stageCtx := ctx
	if e.timeoutScope == TimeoutPerStage && step.Config.Timeout > 0 {
		var cancel context.CancelFunc
		stageCtx, cancel = context.WithTimeout(ctx, step.Config.Timeout)
		defer cancel()
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := e.sleep(stageCtx, delay); err != nil {
				break
			}
		}

		err := e.attempt(stageCtx, name, step, rc)
		span.SetAttributes(attribute.Int("stage.attempts", attempt))
		if err == nil {
			metrics.StageAttempts.WithLabelValues(name, "success").Inc()
			log.Debug("Stage completed", map[string]interface{}{
				"stage":   name,
				"attempt": attempt,
			})
			return nil
		}

		metrics.StageAttempts.WithLabelValues(name, "error").Inc()
		lastErr = err

		retryable := apperrors.IsRetryable(err)
		log.Warn("Stage attempt failed", map[string]interface{}{
			"stage":       name,
			"attempt":     attempt,
			"maxAttempts": attempts,
			"retryable":   retryable,
			"error":       err.Error(),
		})
		if !retryable || stageCtx.Err() != nil {
			break
		}
	}

	span.RecordError(lastErr)
	span.SetStatus(codes.Error, lastErr.Error())
	return lastErr
}

func (e *Engine) attempt(ctx context.Context, name string, step Step, rc *RequestContext) error {
	attemptCtx := ctx
	if e.timeoutScope == TimeoutPerAttempt && step.Config.Timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, step.Config.Timeout)
		defer cancel()
	}

	err := step.Stage.Process(attemptCtx, rc)
	if err != nil && e.timeoutScope != TimeoutNone &&
		errors.Is(attemptCtx.Err(), context.DeadlineExceeded) &&
		!apperrors.Is(err, apperrors.ErrCodeTimeout) {
		return apperrors.NewTimeoutError(name, err)
	}
	return err
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
