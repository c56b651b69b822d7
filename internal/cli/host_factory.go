package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/digit"
	"github.com/aretw0/digit/internal/logging"
	"github.com/aretw0/digit/pkg/host"
	"github.com/aretw0/digit/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// HostOptions configures NewHost.
type HostOptions struct {
	Logger *slog.Logger
	// PluginLogger is handed to the Digit plugin. Nil discards its own
	// attach/detach lines; the host's logging hooks already report them.
	PluginLogger *slog.Logger
	// Registerer receives the invocation metrics. Nil leaves them unregistered.
	Registerer prometheus.Registerer
	// Hooks are chained after the logging and metrics hooks.
	Hooks []host.LifecycleHooks
}

// NewHost builds the host every command runs against, with the Digit plugin
// registered under digit.ID.
func NewHost(ctx context.Context, opts HostOptions) (*host.Host, *observability.Metrics, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics := observability.NewMetrics(opts.Registerer)
	hooks := append([]host.LifecycleHooks{
		observability.LoggingHooks(logger),
		metrics.Hooks(),
	}, opts.Hooks...)

	pluginLogger := opts.PluginLogger
	if pluginLogger == nil {
		pluginLogger = logging.NewNop()
	}

	h := host.New(host.WithLifecycleHooks(host.ChainHooks(hooks...)))
	if err := h.Register(ctx, digit.ID, digit.New(digit.WithLogger(pluginLogger))); err != nil {
		return nil, nil, fmt.Errorf("error registering %s plugin: %w", digit.ID, err)
	}
	return h, metrics, nil
}
