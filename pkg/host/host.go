package host

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/aretw0/digit/pkg/plugin"
	"github.com/aretw0/digit/pkg/registry"
	"github.com/google/uuid"
)

// Entry is a registered plugin as seen from outside the host.
type Entry struct {
	ID       string          `json:"id"`
	Metadata plugin.Metadata `json:"metadata"`
}

// Host keeps registered plugins and routes invocations to them.
// It is safe for concurrent use.
type Host struct {
	mu      sync.RWMutex
	plugins map[string]plugin.Plugin
	order   []string
	routes  *registry.Registry
	hooks   LifecycleHooks
	logger  *slog.Logger
	now     func() time.Time
}

// Option defines a functional option for configuring the Host.
type Option func(*Host)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks LifecycleHooks) Option {
	return func(h *Host) {
		h.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the host.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Host) {
		h.logger = logger
	}
}

// New creates an empty host.
func New(opts ...Option) *Host {
	h := &Host{
		plugins: make(map[string]plugin.Plugin),
		routes:  registry.NewRegistry(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return h
}

// Register adds p under id and then calls its OnAttach.
// Returns plugin.ErrAlreadyRegistered if id is taken.
func (h *Host) Register(ctx context.Context, id string, p plugin.Plugin) error {
	h.mu.Lock()
	if _, exists := h.plugins[id]; exists {
		h.mu.Unlock()
		return fmt.Errorf("%w: %s", plugin.ErrAlreadyRegistered, id)
	}
	h.plugins[id] = p
	h.order = append(h.order, id)
	if inv, ok := p.(plugin.Invokable); ok {
		h.routes.Register(id, inv.Operations())
	}
	h.mu.Unlock()

	p.OnAttach(ctx)

	meta := p.Metadata()
	h.logger.Debug("plugin registered", "plugin", id, "name", meta.Name, "version", meta.Version)
	if h.hooks.OnAttach != nil {
		h.hooks.OnAttach(ctx, &PluginEvent{
			EventBase: EventBase{Timestamp: h.now(), Type: EventAttach, PluginID: id},
			Metadata:  meta,
		})
	}
	return nil
}

// Unregister removes the plugin under id and calls its OnDetach.
// Returns plugin.ErrPluginNotFound if nothing is registered there.
func (h *Host) Unregister(ctx context.Context, id string) error {
	h.mu.Lock()
	p, ok := h.plugins[id]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("%w: %s", plugin.ErrPluginNotFound, id)
	}
	delete(h.plugins, id)
	h.order = slices.DeleteFunc(h.order, func(s string) bool { return s == id })
	h.routes.Unregister(id)
	h.mu.Unlock()

	p.OnDetach(ctx)

	h.logger.Debug("plugin unregistered", "plugin", id)
	if h.hooks.OnDetach != nil {
		h.hooks.OnDetach(ctx, &PluginEvent{
			EventBase: EventBase{Timestamp: h.now(), Type: EventDetach, PluginID: id},
			Metadata:  p.Metadata(),
		})
	}
	return nil
}

// Close detaches every plugin, most recently registered first.
func (h *Host) Close(ctx context.Context) error {
	h.mu.RLock()
	ids := slices.Clone(h.order)
	h.mu.RUnlock()

	for i := len(ids) - 1; i >= 0; i-- {
		if err := h.Unregister(ctx, ids[i]); err != nil {
			return err
		}
	}
	return nil
}

// Plugin returns the plugin registered under id.
func (h *Host) Plugin(id string) (plugin.Plugin, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	p, ok := h.plugins[id]
	return p, ok
}

// List returns the registered plugins sorted by ID.
func (h *Host) List() []Entry {
	h.mu.RLock()
	entries := make([]Entry, 0, len(h.plugins))
	for id, p := range h.plugins {
		entries = append(entries, Entry{ID: id, Metadata: p.Metadata()})
	}
	h.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// Operations returns the catalog of the plugin under id, in the order the
// plugin publishes it. Plugins that are not Invokable have an empty catalog.
func (h *Host) Operations(id string) ([]plugin.Operation, error) {
	p, ok := h.Plugin(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", plugin.ErrPluginNotFound, id)
	}
	inv, ok := p.(plugin.Invokable)
	if !ok {
		return nil, nil
	}
	return inv.Operations(), nil
}

// Invoke calls operation op of the plugin under id with args.
func (h *Host) Invoke(ctx context.Context, id, op string, args map[string]any) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := h.Plugin(id); !ok {
		return nil, fmt.Errorf("%w: %s", plugin.ErrPluginNotFound, id)
	}

	event := &InvocationEvent{
		EventBase: EventBase{Timestamp: h.now(), Type: EventInvoke, PluginID: id},
		ID:        uuid.NewString(),
		Operation: op,
		Args:      args,
	}
	if h.hooks.OnInvoke != nil {
		h.hooks.OnInvoke(ctx, event)
	}

	start := h.now()
	result, err := h.routes.Execute(ctx, id, op, args)

	done := *event
	done.Type = EventInvokeReturn
	done.Timestamp = h.now()
	done.Duration = done.Timestamp.Sub(start)
	done.Result = result
	done.Err = err
	done.IsError = err != nil

	if err != nil {
		h.logger.Warn("invocation failed", "plugin", id, "operation", op, "invocation_id", done.ID, "error", err)
	} else {
		h.logger.Debug("invocation", "plugin", id, "operation", op, "invocation_id", done.ID, "duration", done.Duration)
	}
	if h.hooks.OnInvokeReturn != nil {
		h.hooks.OnInvokeReturn(ctx, &done)
	}
	return result, err
}
