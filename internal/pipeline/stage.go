// Package pipeline runs the analysis stages of one request in order, with a
// per-stage enable flag and retry policy.
package pipeline

import (
	"context"
	"time"

	"sentence-analyzer/internal/common/config"
)

// Stage is one unit of pipeline work. Process reads the fields earlier stages
// produced and writes its own; it may be invoked several times per request
// when retried, so it must overwrite rather than append.
type Stage interface {
	Name() string
	Process(ctx context.Context, rc *RequestContext) error
}

// RetryPolicy retries a failed stage up to MaxAttempts invocations in total,
// sleeping Delay between them.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

type StageConfig struct {
	Name    string
	Enabled bool
	Retry   *RetryPolicy
	// Timeout applies according to the engine's TimeoutScope.
	Timeout time.Duration
}

// Step pairs a stage with its configuration.
type Step struct {
	Config StageConfig
	Stage  Stage
}

// TimeoutScope selects how StageConfig.Timeout is enforced.
type TimeoutScope string

const (
	// TimeoutNone leaves timeouts unenforced.
	TimeoutNone TimeoutScope = config.TimeoutScopeNone
	// TimeoutPerAttempt gives every attempt its own deadline.
	TimeoutPerAttempt TimeoutScope = config.TimeoutScopeAttempt
	// TimeoutPerStage puts one deadline over all attempts and sleeps.
	TimeoutPerStage TimeoutScope = config.TimeoutScopeStage
)

// ConfigFor builds the StageConfig of name from application configuration.
func ConfigFor(cfg *config.Config, name string) StageConfig {
	sc := config.GetStageConfig(cfg, name)
	out := StageConfig{
		Name:    name,
		Enabled: sc.Enabled,
		Timeout: config.GetDuration(sc.TimeoutMs),
	}
	if sc.MaxAttempts > 0 {
		out.Retry = &RetryPolicy{
			MaxAttempts: sc.MaxAttempts,
			Delay:       config.GetDuration(sc.DelayMs),
		}
	}
	return out
}

// StepsFromConfig pairs each stage with its configuration, keeping the order
// the stages are given in.
func StepsFromConfig(cfg *config.Config, stages ...Stage) []Step {
	steps := make([]Step, 0, len(stages))
	for _, s := range stages {
		steps = append(steps, Step{Config: ConfigFor(cfg, s.Name()), Stage: s})
	}
	return steps
}
