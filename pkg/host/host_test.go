package host_test

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/digit"
	"github.com/aretw0/digit/pkg/geom"
	"github.com/aretw0/digit/pkg/host"
	"github.com/aretw0/digit/pkg/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPlugin counts lifecycle callbacks and exposes no operations.
type recordingPlugin struct {
	mu       sync.Mutex
	name     string
	attached int
	detached int
	log      *[]string
}

func (p *recordingPlugin) Metadata() plugin.Metadata {
	return plugin.Metadata{Name: p.name, Version: "1.0.0"}
}

func (p *recordingPlugin) OnAttach(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.attached++
	if p.log != nil {
		*p.log = append(*p.log, "attach:"+p.name)
	}
}

func (p *recordingPlugin) OnDetach(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.detached++
	if p.log != nil {
		*p.log = append(*p.log, "detach:"+p.name)
	}
}

func TestHost_RegisterUnregister(t *testing.T) {
	ctx := context.Background()
	h := host.New()
	p := &recordingPlugin{name: "rec"}

	require.NoError(t, h.Register(ctx, "Rec", p))
	assert.Equal(t, 1, p.attached)

	err := h.Register(ctx, "Rec", p)
	assert.ErrorIs(t, err, plugin.ErrAlreadyRegistered)
	assert.Equal(t, 1, p.attached, "a rejected registration must not attach again")

	got, ok := h.Plugin("Rec")
	require.True(t, ok)
	assert.Same(t, p, got)

	require.NoError(t, h.Unregister(ctx, "Rec"))
	assert.Equal(t, 1, p.detached)

	assert.ErrorIs(t, h.Unregister(ctx, "Rec"), plugin.ErrPluginNotFound)
	_, ok = h.Plugin("Rec")
	assert.False(t, ok)
}

func TestHost_ListAndClose(t *testing.T) {
	ctx := context.Background()
	var log []string
	h := host.New()

	require.NoError(t, h.Register(ctx, "b", &recordingPlugin{name: "b", log: &log}))
	require.NoError(t, h.Register(ctx, "a", &recordingPlugin{name: "a", log: &log}))

	entries := h.List()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)

	require.NoError(t, h.Close(ctx))
	assert.Equal(t, []string{"attach:b", "attach:a", "detach:a", "detach:b"}, log)
	assert.Empty(t, h.List())
}

// echoPlugin publishes operations that return their own name.
type echoPlugin struct {
	recordingPlugin
	ops []string
}

func (p *echoPlugin) Operations() []plugin.Operation {
	ops := make([]plugin.Operation, 0, len(p.ops))
	for _, name := range p.ops {
		ops = append(ops, plugin.Operation{
			Name: name,
			Invoke: func(ctx context.Context, args map[string]any) (any, error) {
				return p.name + ":" + name, nil
			},
		})
	}
	return ops
}

func TestHost_DottedPluginIDs(t *testing.T) {
	ctx := context.Background()
	h := host.New()
	require.NoError(t, h.Register(ctx, "A.b", &echoPlugin{recordingPlugin: recordingPlugin{name: "A.b"}, ops: []string{"c"}}))
	require.NoError(t, h.Register(ctx, "A", &echoPlugin{recordingPlugin: recordingPlugin{name: "A"}, ops: []string{"x", "b.c"}}))
	require.NoError(t, h.Register(ctx, "A.B", &echoPlugin{recordingPlugin: recordingPlugin{name: "A.B"}, ops: []string{"y"}}))

	res, err := h.Invoke(ctx, "A.b", "c", nil)
	require.NoError(t, err)
	assert.Equal(t, "A.b:c", res)

	res, err = h.Invoke(ctx, "A", "b.c", nil)
	require.NoError(t, err)
	assert.Equal(t, "A:b.c", res)

	require.NoError(t, h.Unregister(ctx, "A"))

	_, ok := h.Plugin("A.B")
	assert.True(t, ok)
	res, err = h.Invoke(ctx, "A.B", "y", nil)
	require.NoError(t, err)
	assert.Equal(t, "A.B:y", res)

	_, err = h.Invoke(ctx, "A", "x", nil)
	assert.ErrorIs(t, err, plugin.ErrPluginNotFound)
}

func TestHost_NonInvokablePlugin(t *testing.T) {
	ctx := context.Background()
	h := host.New()
	require.NoError(t, h.Register(ctx, "Rec", &recordingPlugin{name: "rec"}))

	ops, err := h.Operations("Rec")
	require.NoError(t, err)
	assert.Empty(t, ops)

	_, err = h.Invoke(ctx, "Rec", "anything", nil)
	assert.ErrorIs(t, err, plugin.ErrOperationNotFound)
}

func TestHost_InvokeDigit(t *testing.T) {
	ctx := context.Background()
	h := host.New()
	require.NoError(t, h.Register(ctx, digit.ID, digit.New()))

	res, err := h.Invoke(ctx, digit.ID, "clamp", map[string]any{"digit": 15.0, "min": 0.0, "max": 10.0})
	require.NoError(t, err)
	assert.Equal(t, 10.0, res)

	res, err = h.Invoke(ctx, digit.ID, "quadraticBezier", map[string]any{
		"t":  1.0,
		"p1": map[string]any{"x": 0.0, "y": 0.0},
		"c1": "1,2",
		"p2": map[string]any{"x": 2.0, "y": 0.0},
	})
	require.NoError(t, err)
	assert.Equal(t, geom.Point2D{X: 2, Y: 0}, res)

	_, err = h.Invoke(ctx, "Missing", "clamp", nil)
	assert.ErrorIs(t, err, plugin.ErrPluginNotFound)

	_, err = h.Invoke(ctx, digit.ID, "missing", nil)
	assert.ErrorIs(t, err, plugin.ErrOperationNotFound)

	_, err = h.Invoke(ctx, digit.ID, "clamp", map[string]any{"bogus": 1})
	assert.ErrorIs(t, err, plugin.ErrInvalidArguments)
}

func TestHost_InvokeCanceledContext(t *testing.T) {
	h := host.New()
	require.NoError(t, h.Register(context.Background(), digit.ID, digit.New()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.Invoke(ctx, digit.ID, "abs", map[string]any{"digit": -1})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHost_LifecycleHooks(t *testing.T) {
	ctx := context.Background()

	var attached, detached []string
	var calls []*host.InvocationEvent
	var returns []*host.InvocationEvent

	hooks := host.LifecycleHooks{
		OnAttach: func(ctx context.Context, e *host.PluginEvent) {
			attached = append(attached, e.PluginID+"="+e.Metadata.Name)
		},
		OnDetach: func(ctx context.Context, e *host.PluginEvent) {
			detached = append(detached, e.PluginID)
		},
		OnInvoke: func(ctx context.Context, e *host.InvocationEvent) {
			calls = append(calls, e)
		},
		OnInvokeReturn: func(ctx context.Context, e *host.InvocationEvent) {
			returns = append(returns, e)
		},
	}

	var chained int
	counter := host.LifecycleHooks{
		OnInvokeReturn: func(ctx context.Context, e *host.InvocationEvent) { chained++ },
	}

	h := host.New(host.WithLifecycleHooks(host.ChainHooks(hooks, counter)))
	require.NoError(t, h.Register(ctx, digit.ID, digit.New()))

	_, err := h.Invoke(ctx, digit.ID, "sum", map[string]any{"digits": []any{1.0, 2.0, 3.0}})
	require.NoError(t, err)
	_, err = h.Invoke(ctx, digit.ID, "nope", nil)
	require.Error(t, err)

	require.NoError(t, h.Close(ctx))

	assert.Equal(t, []string{"Digit=Koi.Plugin.Digit"}, attached)
	assert.Equal(t, []string{"Digit"}, detached)

	require.Len(t, calls, 2)
	require.Len(t, returns, 2)
	assert.Equal(t, host.EventInvoke, calls[0].Type)
	assert.Equal(t, host.EventInvokeReturn, returns[0].Type)
	assert.Equal(t, calls[0].ID, returns[0].ID)
	assert.NotEmpty(t, returns[0].ID)
	assert.NotEqual(t, returns[0].ID, returns[1].ID)

	assert.Equal(t, 6.0, returns[0].Result)
	assert.False(t, returns[0].IsError)
	assert.True(t, returns[1].IsError)
	assert.ErrorIs(t, returns[1].Err, plugin.ErrOperationNotFound)

	assert.Equal(t, 2, chained)
}
