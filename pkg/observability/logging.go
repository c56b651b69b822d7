package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/digit/pkg/host"
)

// LoggingHooks logs every host event on logger.
func LoggingHooks(logger *slog.Logger) host.LifecycleHooks {
	return host.LifecycleHooks{
		OnAttach: func(ctx context.Context, e *host.PluginEvent) {
			logger.InfoContext(ctx, "plugin_attach",
				"plugin_id", e.PluginID,
				"name", e.Metadata.Name,
				"version", e.Metadata.Version,
			)
		},
		OnDetach: func(ctx context.Context, e *host.PluginEvent) {
			logger.InfoContext(ctx, "plugin_detach", "plugin_id", e.PluginID)
		},
		OnInvoke: func(ctx context.Context, e *host.InvocationEvent) {
			logger.DebugContext(ctx, "invoke",
				"plugin_id", e.PluginID,
				"operation", e.Operation,
				"invocation_id", e.ID,
			)
		},
		OnInvokeReturn: func(ctx context.Context, e *host.InvocationEvent) {
			if e.IsError {
				logger.WarnContext(ctx, "invoke_return",
					"plugin_id", e.PluginID,
					"operation", e.Operation,
					"invocation_id", e.ID,
					"error", e.Err,
				)
				return
			}
			logger.DebugContext(ctx, "invoke_return",
				"plugin_id", e.PluginID,
				"operation", e.Operation,
				"invocation_id", e.ID,
				"duration", e.Duration,
			)
		},
	}
}
