package service

import (
	"sentence-analyzer/internal/catalog"
	"sentence-analyzer/internal/common/config"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/llm"
	"sentence-analyzer/internal/pipeline"
	"sentence-analyzer/internal/prompts"
	extractjson "sentence-analyzer/internal/stages/extract-json"
	loadconfig "sentence-analyzer/internal/stages/load-config"
	resolveendpoint "sentence-analyzer/internal/stages/resolve-endpoint"
	resolvefields "sentence-analyzer/internal/stages/resolve-fields"
)

// BuildEngine assembles the four analysis stages in order with the retry,
// enable and timeout settings of cfg.
func BuildEngine(cfg *config.Config, provider llm.Provider, source catalog.Source, store *prompts.Store, log logger.Logger, opts ...pipeline.Option) *pipeline.Engine {
	steps := pipeline.StepsFromConfig(cfg,
		loadconfig.NewHandler(loadconfig.LoadConfig(cfg), source, log),
		extractjson.NewHandler(extractjson.LoadConfig(cfg), provider, store, log),
		resolveendpoint.NewHandler(resolveendpoint.LoadConfig(cfg), provider, store, log),
		resolvefields.NewHandler(resolvefields.LoadConfig(cfg), provider, store, log),
	)

	opts = append([]pipeline.Option{
		pipeline.WithTimeoutScope(pipeline.TimeoutScope(cfg.Pipeline.TimeoutScope)),
	}, opts...)
	return pipeline.NewEngine(steps, log, opts...)
}
