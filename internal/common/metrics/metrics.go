package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	StageAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_stage_attempts_total",
			Help: "Stage invocations by outcome (success, error)",
		},
		[]string{"stage", "outcome"},
	)

	StageSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_stage_skipped_total",
			Help: "Stages skipped because they are disabled",
		},
		[]string{"stage"},
	)

	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipeline_stage_duration_seconds",
			Help:    "Duration of a stage including retries",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
		[]string{"stage"},
	)

	ModelCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "model_calls_total",
			Help: "Language model calls by provider, model and outcome",
		},
		[]string{"provider", "model", "outcome"},
	)

	ModelPromptTokens = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "model_prompt_tokens",
			Help:    "Estimated prompt size in tokens",
			Buckets: prometheus.ExponentialBuckets(16, 2, 10),
		},
		[]string{"provider", "model"},
	)

	CatalogLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_lookups_total",
			Help: "Catalog loads by source and result (hit, miss, error)",
		},
		[]string{"source", "result"},
	)

	RequestsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "analyze_requests_active",
			Help: "AnalyzeSentence calls currently running a pipeline",
		},
	)
)
