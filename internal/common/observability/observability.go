package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"sentence-analyzer/internal/common/config"
)

// Observability owns the OpenTelemetry meter and tracer providers.
type Observability struct {
	meterProvider   *metric.MeterProvider
	tracerProvider  *sdktrace.TracerProvider
	tracer          trace.Tracer
	requestCounter  otelmetric.Int64Counter
	requestDuration otelmetric.Float64Histogram
}

// New installs the global providers. Metrics go through the Prometheus
// exporter into the default registry; traces go to stdout when enabled.
func New(cfg config.ObservabilityConfig) (*Observability, error) {
	o := &Observability{}

	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))

	if cfg.MetricsEnabled {
		exporter, err := prometheus.New()
		if err != nil {
			return nil, fmt.Errorf("create prometheus exporter: %w", err)
		}
		o.meterProvider = metric.NewMeterProvider(metric.WithReader(exporter), metric.WithResource(res))
		otel.SetMeterProvider(o.meterProvider)
	}

	if cfg.TracingEnabled {
		exporter, err := stdouttrace.New(stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("create trace exporter: %w", err)
		}
		o.tracerProvider = sdktrace.NewTracerProvider(
			sdktrace.WithBatcher(exporter),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(o.tracerProvider)
	}

	meter := otel.Meter(cfg.ServiceName)
	o.tracer = otel.Tracer(cfg.ServiceName)

	var err error
	o.requestCounter, err = meter.Int64Counter(
		"analyze.requests",
		otelmetric.WithDescription("AnalyzeSentence calls by status"),
	)
	if err != nil {
		return nil, err
	}
	o.requestDuration, err = meter.Float64Histogram(
		"analyze.duration",
		otelmetric.WithDescription("AnalyzeSentence latency"),
		otelmetric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return o, nil
}

// NewNoop returns an instance backed by the global no-op providers.
func NewNoop() *Observability {
	o, _ := New(config.ObservabilityConfig{ServiceName: "noop"})
	return o
}

func (o *Observability) Tracer() trace.Tracer {
	return o.tracer
}

// RecordRequest records one finished call with its gRPC status code name.
func (o *Observability) RecordRequest(ctx context.Context, duration time.Duration, status string) {
	attrs := otelmetric.WithAttributes(attribute.String("status", status))
	o.requestCounter.Add(ctx, 1, attrs)
	o.requestDuration.Record(ctx, float64(duration.Milliseconds()), attrs)
}

func (o *Observability) Shutdown(ctx context.Context) error {
	var firstErr error
	if o.tracerProvider != nil {
		if err := o.tracerProvider.Shutdown(ctx); err != nil {
			firstErr = err
		}
	}
	if o.meterProvider != nil {
		if err := o.meterProvider.Shutdown(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
