package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sentence-analyzer/internal/admin"
	"sentence-analyzer/internal/catalog"
	"sentence-analyzer/internal/common/config"
	"sentence-analyzer/internal/common/observability"
	"sentence-analyzer/internal/pipeline"
	"sentence-analyzer/internal/service"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var provider string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the gRPC analysis service and the admin HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), cfg, provider)
		},
	}
	cmd.Flags().StringVar(&provider, "provider", "", "model provider (ollama, claude); default providers.default")
	return cmd
}

func runServe(parent context.Context, cfg *config.Config, provider string) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	obs, err := observability.New(cfg.Observability)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
		defer cancel()
		_ = obs.Shutdown(shutdownCtx)
	}()

	a, err := newApp(ctx, cfg, provider, pipeline.WithTracer(obs.Tracer()))
	if err != nil {
		return err
	}
	defer a.close()
	log := a.log

	stages := make([]string, 0, len(a.engine.Steps()))
	for _, step := range a.engine.Steps() {
		if step.Config.Enabled {
			stages = append(stages, step.Config.Name)
		}
	}

	catalog.Verify(ctx, cfg.Catalog, log)

	svc := service.New(a.engine, cfg.Identity, log, service.WithObservability(obs))
	grpcServer, health := service.NewGRPCServer(cfg.Server, svc, log)

	adminServer := admin.New(log)
	if a.postgres != nil {
		adminServer.AddCheck("postgres", a.postgres.Ping)
	}
	if a.redis != nil {
		adminServer.AddCheck("redis", a.redis.Ping)
	}
	httpServer := adminServer.NewHTTPServer(cfg.Server.AdminAddress())

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddress())
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("gRPC server listening", map[string]interface{}{
			"address":  lis.Addr().String(),
			"provider": a.provider.Name(),
			"catalog":  a.source.Name(),
			"stages":   stages,
		})
		return grpcServer.Serve(lis)
	})
	g.Go(func() error {
		log.Info("Admin server listening", map[string]interface{}{"address": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutdown signal received, draining requests", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
		defer cancel()

		service.Shutdown(shutdownCtx, grpcServer, health)
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("Analyzer stopped gracefully", nil)
	return nil
}
