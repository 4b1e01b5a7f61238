// Package metrics exposes Prometheus collectors for the HTTP layer and the
// confirmation ledger reconciliation.
package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stpnv0/EventHub/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const unmatchedRoute = "unmatched"

type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	reconcileRuns   prometheus.Counter
	reconcileErrors prometheus.Counter
	ledgerDrifts    prometheus.Counter
}

func New(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reconcileRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "reconcile_runs_total",
			Help:      "Completed ledger reconciliation passes.",
		}),
		reconcileErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "reconcile_errors_total",
			Help:      "Ledger reconciliation passes that failed.",
		}),
		ledgerDrifts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "drifts_total",
			Help:      "Events whose confirmed count disagreed with persisted requests.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpLatency,
		m.reconcileRuns,
		m.reconcileErrors,
		m.ledgerDrifts,
	)

	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() ginext.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *ginext.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// HTTP labels by route template, so path ids do not explode cardinality.
func (m *Metrics) HTTP() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method

		m.httpRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.httpLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

type reconciler interface {
	Reconcile(ctx context.Context) ([]domain.LedgerDrift, error)
}

// ReconcileObserver counts reconciliation outcomes of the wrapped reconciler.
type ReconcileObserver struct {
	next    reconciler
	metrics *Metrics
}

func (m *Metrics) ObserveReconcile(next reconciler) *ReconcileObserver {
	return &ReconcileObserver{next: next, metrics: m}
}

func (o *ReconcileObserver) Reconcile(ctx context.Context) ([]domain.LedgerDrift, error) {
	drifts, err := o.next.Reconcile(ctx)
	if err != nil {
		o.metrics.reconcileErrors.Inc()
	} else {
		o.metrics.reconcileRuns.Inc()
	}
	o.metrics.ledgerDrifts.Add(float64(len(drifts)))
	return drifts, err
}

