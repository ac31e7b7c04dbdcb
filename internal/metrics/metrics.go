// Package metrics owns the Prometheus registry for one server instance.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace prefixes every metric exported by the dashboard.
const Namespace = "asidash"

// Metrics groups the application counters. Each instance has its own
// registry so several servers (or tests) can coexist in one process.
type Metrics struct {
	Registry *prometheus.Registry

	PageRenders    *prometheus.CounterVec
	TabSelections  *prometheus.CounterVec
	ContentReloads *prometheus.CounterVec
}

// New creates the registry and registers the application counters together
// with the Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		PageRenders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "page_renders_total",
			Help:      "Total rendered pages and fragments by page",
		}, []string{"page"}),
		TabSelections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "tab_selections_total",
			Help:      "Total tab trigger requests by selected tab",
		}, []string{"tab"}),
		ContentReloads: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "content_reloads_total",
			Help:      "Content file reload attempts by result",
		}, []string{"result"}),
	}
}

// ObserveReload records the outcome of a content reload.
func (m *Metrics) ObserveReload(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.ContentReloads.WithLabelValues(result).Inc()
}
