package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/digit/internal/config"
	httpAdapter "github.com/aretw0/digit/pkg/adapters/http"
	mcpAdapter "github.com/aretw0/digit/pkg/adapters/mcp"
	"github.com/aretw0/digit/pkg/host"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

// Serve runs the HTTP API until ctx is done, then shuts down gracefully.
func Serve(ctx context.Context, cfg config.HTTPConfig, logger *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	streams := httpAdapter.NewStreamManager(logger)
	h, _, err := NewHost(ctx, HostOptions{Logger: logger, Registerer: reg, Hooks: []host.LifecycleHooks{streams.Hooks()}})
	if err != nil {
		return err
	}
	defer h.Close(context.Background())

	opts := []httpAdapter.Option{
		httpAdapter.WithLogger(logger),
		httpAdapter.WithStreams(streams),
		httpAdapter.WithRateLimit(cfg.RateLimit, cfg.RateBurst),
	}
	if len(cfg.CORSOrigins) > 0 {
		opts = append(opts, httpAdapter.WithCORS(cfg.CORSOrigins...))
	}
	if cfg.Metrics {
		opts = append(opts, httpAdapter.WithMetrics(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           httpAdapter.NewHandler(h, opts...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting Digit Server", "address", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", shutdownTimeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		logger.Info("Digit Server stopped gracefully")
		return nil
	}
}

// ServeMCP runs the MCP server on the configured transport.
func ServeMCP(ctx context.Context, cfg config.MCPConfig, logger *slog.Logger) error {
	h, _, err := NewHost(ctx, HostOptions{Logger: logger})
	if err != nil {
		return err
	}
	defer h.Close(context.Background())

	srv, err := mcpAdapter.NewServer(h, logger)
	if err != nil {
		return fmt.Errorf("error initializing MCP server: %w", err)
	}

	switch cfg.Transport {
	case config.TransportStdio:
		logger.Info("Starting Digit MCP Server (Stdio)")
		return srv.ServeStdio()
	case config.TransportSSE:
		logger.Info("Starting Digit MCP Server (SSE)", "port", cfg.Port)
		return srv.ServeSSE(ctx, cfg.Port)
	default:
		return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", cfg.Transport)
	}
}
