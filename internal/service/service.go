// Package service implements the AnalyzeSentence RPC: it validates the
// caller, runs one pipeline per call and streams back a single result or
// a single categorized error.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"sentence-analyzer/internal/common/config"
	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/common/metrics"
	"sentence-analyzer/internal/common/observability"
	"sentence-analyzer/internal/common/validation"
	"sentence-analyzer/internal/pipeline"
	"sentence-analyzer/internal/rpc/sentencepb"
)

// Metadata keys read from incoming calls.
const (
	MetadataEmail    = "email"
	MetadataClientID = "client-id"

	DefaultClientID = "unknown-client"
)

// Runner executes one pipeline run. *pipeline.Engine satisfies it.
type Runner interface {
	Run(ctx context.Context, rc *pipeline.RequestContext) (*pipeline.RequestContext, error)
}

type Service struct {
	sentencepb.UnimplementedSentenceServiceServer

	runner   Runner
	identity config.IdentityConfig
	obs      *observability.Observability
	errors   *apperrors.ErrorHandler
	logger   logger.Logger
	newID    func() string
}

type Option func(*Service)

func WithObservability(obs *observability.Observability) Option {
	return func(s *Service) {
		if obs != nil {
			s.obs = obs
		}
	}
}

// WithRequestIDs replaces the request ID generator.
func WithRequestIDs(fn func() string) Option {
	return func(s *Service) {
		s.newID = fn
	}
}

func New(runner Runner, identity config.IdentityConfig, log logger.Logger, opts ...Option) *Service {
	log = log.Named("service")
	s := &Service{
		runner:   runner,
		identity: identity,
		errors:   apperrors.NewErrorHandler(log),
		logger:   log,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.obs == nil {
		s.obs = observability.NewNoop()
	}
	return s
}

type outcome struct {
	rc  *pipeline.RequestContext
	err error
}

func (s *Service) AnalyzeSentence(req *sentencepb.SentenceRequest, stream sentencepb.SentenceService_AnalyzeSentenceServer) error {
	start := time.Now()
	ctx := stream.Context()

	email, clientID := s.callerOf(ctx)
	rc := pipeline.NewRequestContext(req.Sentence, email)
	rc.RequestID = s.newID()
	rc.ClientID = clientID

	ctx, span := s.obs.Tracer().Start(ctx, "AnalyzeSentence", trace.WithAttributes(
		attribute.String("request.id", rc.RequestID),
		attribute.String("client.id", clientID),
	))
	defer span.End()

	log := s.logger.WithFields(rc.LogFields())
	log.Info("Request received", map[string]interface{}{
		"sentenceLength": len(req.Sentence),
	})

	err := s.analyze(ctx, rc, stream)
	code := codes.OK
	if err != nil {
		err = s.errors.HandleRequestError(err, rc.LogFields())
		code = status.Code(err)
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, code.String())
	}

	s.obs.RecordRequest(ctx, time.Since(start), code.String())
	log.Info("Request finished", map[string]interface{}{
		"status":     code.String(),
		"durationMs": time.Since(start).Milliseconds(),
	})
	return err
}

func (s *Service) analyze(ctx context.Context, rc *pipeline.RequestContext, stream sentencepb.SentenceService_AnalyzeSentenceServer) error {
	if err := validation.ValidateIdentity(rc.Identity); err != nil {
		return err
	}
	if err := validation.ValidateSentence(rc.Sentence); err != nil {
		return err
	}

	// The run outlives a cancelled caller; the buffered channel lets it finish
	// without a receiver.
	done := make(chan outcome, 1)
	metrics.RequestsActive.Inc()
	go func() {
		defer metrics.RequestsActive.Dec()
		out, err := s.runner.Run(context.WithoutCancel(ctx), rc)
		done <- outcome{rc: out, err: err}
	}()

	var res outcome
	select {
	case res = <-done:
	case <-ctx.Done():
		return status.FromContextError(ctx.Err()).Err()
	}
	if res.err != nil {
		return res.err
	}

	result, err := res.rc.Result()
	if err != nil {
		return err
	}
	return stream.Send(ToResponse(result))
}

// callerOf reads the caller identity and client ID from call metadata.
func (s *Service) callerOf(ctx context.Context) (string, string) {
	email := s.identity.DefaultEmail
	clientID := DefaultClientID

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return email, clientID
	}
	if v := md.Get(MetadataEmail); len(v) > 0 && v[0] != "" {
		email = v[0]
	}
	if v := md.Get(MetadataClientID); len(v) > 0 && v[0] != "" {
		clientID = v[0]
	}
	return email, clientID
}
