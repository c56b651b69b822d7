package observability

import (
	"context"

	"github.com/aretw0/digit/pkg/host"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values for digit_invocations_total.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the Prometheus collectors fed by host events.
type Metrics struct {
	Invocations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	Attached    prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "digit_invocations_total",
				Help: "Total number of plugin operation invocations",
			},
			[]string{"plugin", "operation", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "digit_invocation_duration_seconds",
				Help:    "Duration of plugin operation invocations",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
			},
			[]string{"plugin", "operation"},
		),
		Attached: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "digit_plugins_attached",
			Help: "Number of plugins currently attached to the host",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Invocations, m.Duration, m.Attached)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() host.LifecycleHooks {
	return host.LifecycleHooks{
		OnAttach: func(ctx context.Context, e *host.PluginEvent) {
			m.Attached.Inc()
		},
		OnDetach: func(ctx context.Context, e *host.PluginEvent) {
			m.Attached.Dec()
		},
		OnInvokeReturn: func(ctx context.Context, e *host.InvocationEvent) {
			outcome := OutcomeOK
			if e.IsError {
				outcome = OutcomeError
			}
			m.Invocations.WithLabelValues(e.PluginID, e.Operation, outcome).Inc()
			m.Duration.WithLabelValues(e.PluginID, e.Operation).Observe(e.Duration.Seconds())
		},
	}
}
