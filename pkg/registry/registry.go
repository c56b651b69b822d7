package registry

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/digit/pkg/plugin"
)

// Separator joins a plugin ID and an operation name into a route key.
const Separator = "."

// Key returns the display key for an operation of a plugin.
func Key(pluginID, operation string) string {
	return pluginID + Separator + operation
}

// Registry routes operations to their implementations, per plugin.
type Registry struct {
	mu     sync.RWMutex
	routes map[string]map[string]plugin.Operation // PluginID -> Operation name -> Operation
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		routes: make(map[string]map[string]plugin.Operation),
	}
}

// Register adds the operations of a plugin under pluginID.
// Operations already routed under the same key are overwritten.
func (r *Registry) Register(pluginID string, ops []plugin.Operation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	table, ok := r.routes[pluginID]
	if !ok {
		table = make(map[string]plugin.Operation, len(ops))
		r.routes[pluginID] = table
	}
	for _, op := range ops {
		table[op.Name] = op
	}
}

// Unregister drops every route owned by pluginID.
func (r *Registry) Unregister(pluginID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.routes, pluginID)
}

// Lookup returns the operation routed under pluginID and name.
func (r *Registry) Lookup(pluginID, name string) (plugin.Operation, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.routes[pluginID][name]
	return op, ok
}

// Keys returns every route key in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	var keys []string
	for pluginID, table := range r.routes {
		for name := range table {
			keys = append(keys, Key(pluginID, name))
		}
	}
	r.mu.RUnlock()

	sort.Strings(keys)
	return keys
}

// Execute looks up an operation by plugin and name and executes it.
// Returns plugin.ErrOperationNotFound if nothing is routed there.
func (r *Registry) Execute(ctx context.Context, pluginID, name string, args map[string]any) (any, error) {
	op, ok := r.Lookup(pluginID, name)
	if !ok || op.Invoke == nil {
		return nil, fmt.Errorf("%w: %s", plugin.ErrOperationNotFound, Key(pluginID, name))
	}

	return op.Invoke(ctx, args)
}
