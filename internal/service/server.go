package service

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"sentence-analyzer/internal/common/config"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/rpc/sentencepb"
)

// NewGRPCServer registers svc and the standard health service on a new
// server. The health status of the sentence service starts as SERVING.
func NewGRPCServer(cfg config.ServerConfig, svc sentencepb.SentenceServiceServer, log logger.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	if cfg.MaxConcurrentStreams > 0 {
		opts = append(opts, grpc.MaxConcurrentStreams(cfg.MaxConcurrentStreams))
	}
	opts = append(opts, grpc.ChainStreamInterceptor(streamLogging(log)))

	srv := grpc.NewServer(opts...)
	sentencepb.RegisterSentenceServiceServer(srv, svc)

	hs := health.NewServer()
	hs.SetServingStatus(sentencepb.SentenceService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

func streamLogging(log logger.Logger) grpc.StreamServerInterceptor {
	log = log.Named("grpc")
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		start := time.Now()
		err := handler(srv, ss)
		log.Debug("stream closed", map[string]interface{}{
			"method":     info.FullMethod,
			"code":       status.Code(err).String(),
			"durationMs": time.Since(start).Milliseconds(),
		})
		return err
	}
}

// Shutdown marks every service NOT_SERVING and stops the server gracefully,
// forcing a stop when ctx ends first.
func Shutdown(ctx context.Context, srv *grpc.Server, hs *health.Server) {
	hs.Shutdown()

	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		srv.Stop()
	}
}
