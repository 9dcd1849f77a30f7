// Package metric provides Prometheus metrics for uacore.
package metric

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	// ConfigLoads counts configuration snapshots loaded from disk.
	ConfigLoads prometheus.Counter

	// ConfigReloads counts reloads triggered by file change events.
	ConfigReloads prometheus.Counter

	// ValidationFailures counts loaded snapshots that failed validation.
	ValidationFailures prometheus.Counter

	// Violations counts individual invariant violations reported.
	Violations prometheus.Counter
}

// NewRegistry creates a metrics registry with all metrics registered.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		ConfigLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uacore",
			Subsystem: "config",
			Name:      "loads_total",
			Help:      "Configuration snapshots loaded from disk.",
		}),
		ConfigReloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uacore",
			Subsystem: "config",
			Name:      "reloads_total",
			Help:      "Configuration reloads triggered by file changes.",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uacore",
			Subsystem: "config",
			Name:      "validation_failures_total",
			Help:      "Loaded configuration snapshots that failed validation.",
		}),
		Violations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "uacore",
			Subsystem: "config",
			Name:      "violations_total",
			Help:      "Individual configuration invariant violations reported.",
		}),
	}
	r.reg.MustRegister(r.ConfigLoads, r.ConfigReloads, r.ValidationFailures, r.Violations)
	return r
}

// Handler returns an HTTP handler exposing the registry in Prometheus
// format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests and embedders.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}
