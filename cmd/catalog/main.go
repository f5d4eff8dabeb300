package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/narwhalmedia/catalog/internal/container"
	"github.com/narwhalmedia/catalog/internal/infrastructure/grpc/interceptors"
	"github.com/narwhalmedia/catalog/pkg/config"
	"github.com/narwhalmedia/catalog/pkg/interfaces"
)

const (
	serviceName     = "catalog"
	shutdownTimeout = 30 * time.Second
)

func main() {
	cfg := config.MustLoadServiceConfig(serviceName, config.GetDefaultCatalogConfig())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c, cleanup, err := container.InitializeCatalog(ctx, cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize service: %v", err))
	}
	defer cleanup()

	log := c.Logger
	log.Info("Starting service",
		interfaces.String("version", config.GetServiceVersion(&cfg.Service)),
		interfaces.String("environment", cfg.Service.Environment),
		interfaces.String("database", cfg.Database.Driver),
		interfaces.String("publisher", cfg.Catalog.Events.Publisher),
		interfaces.String("pictures", cfg.Catalog.Pictures.Storage),
	)

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			interceptors.UnaryRecoveryInterceptor(log),
			interceptors.UnaryLoggingInterceptor(log),
			interceptors.UnaryErrorInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			interceptors.StreamRecoveryInterceptor(log),
			interceptors.StreamLoggingInterceptor(log),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_SERVING)
	if !config.IsProduction(&cfg.Service) {
		reflection.Register(grpcServer)
	}

	grpcLis, err := net.Listen("tcp", config.GetGRPCListenAddress(&cfg.Service))
	if err != nil {
		log.Fatal("Failed to listen on gRPC port", interfaces.Error(err))
	}

	go func() {
		log.Info("Starting gRPC server", interfaces.Int("port", cfg.Service.GRPCPort))
		if err := grpcServer.Serve(grpcLis); err != nil {
			log.Fatal("Failed to serve gRPC", interfaces.Error(err))
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	mux.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		if err := c.Ready(r.Context()); err != nil {
			log.Warn("Readiness check failed", interfaces.Error(err))
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	httpServer := &http.Server{
		Addr:              config.GetListenAddress(&cfg.Service),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Starting HTTP server", interfaces.Int("port", cfg.Service.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to serve HTTP", interfaces.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down service")
	healthServer.SetServingStatus(serviceName, grpc_health_v1.HealthCheckResponse_NOT_SERVING)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shutdown HTTP server", interfaces.Error(err))
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		log.Info("gRPC server stopped gracefully")
	}

	log.Info("Service shutdown complete")
}
