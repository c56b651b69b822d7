package host

import (
	"context"
	"time"

	"github.com/aretw0/digit/pkg/plugin"
)

// EventType defines the category of the event.
type EventType string

const (
	EventAttach       EventType = "plugin_attach"
	EventDetach       EventType = "plugin_detach"
	EventInvoke       EventType = "invoke"
	EventInvokeReturn EventType = "invoke_return"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	PluginID  string    `json:"plugin_id"`
}

// PluginEvent represents a plugin being attached or detached.
type PluginEvent struct {
	EventBase
	Metadata plugin.Metadata `json:"metadata"`
}

// InvocationEvent represents a call routed to a plugin operation.
// Result, Err and Duration are only set on EventInvokeReturn.
type InvocationEvent struct {
	EventBase
	ID        string         `json:"id"`
	Operation string         `json:"operation"`
	Args      map[string]any `json:"args,omitempty"`
	Result    any            `json:"result,omitempty"`
	Err       error          `json:"-"`
	IsError   bool           `json:"is_error,omitempty"`
	Duration  time.Duration  `json:"duration,omitempty"`
}

// LifecycleHooks defines callbacks for host observability.
type LifecycleHooks struct {
	OnAttach       func(context.Context, *PluginEvent)
	OnDetach       func(context.Context, *PluginEvent)
	OnInvoke       func(context.Context, *InvocationEvent)
	OnInvokeReturn func(context.Context, *InvocationEvent)
}

// ChainHooks returns hooks that call each of hooks in order.
func ChainHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnAttach: func(ctx context.Context, e *PluginEvent) {
			for _, h := range hooks {
				if h.OnAttach != nil {
					h.OnAttach(ctx, e)
				}
			}
		},
		OnDetach: func(ctx context.Context, e *PluginEvent) {
			for _, h := range hooks {
				if h.OnDetach != nil {
					h.OnDetach(ctx, e)
				}
			}
		},
		OnInvoke: func(ctx context.Context, e *InvocationEvent) {
			for _, h := range hooks {
				if h.OnInvoke != nil {
					h.OnInvoke(ctx, e)
				}
			}
		},
		OnInvokeReturn: func(ctx context.Context, e *InvocationEvent) {
			for _, h := range hooks {
				if h.OnInvokeReturn != nil {
					h.OnInvokeReturn(ctx, e)
				}
			}
		},
	}
}
