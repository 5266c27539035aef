// Package metrics exposes dispatcher and storage counters in the Prometheus format.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"github.com/fastygo/dashboard/domain"
)

const namespace = "dashboard"

type Metrics struct {
	registry *prometheus.Registry

	executions *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	storageUp  prometheus.Gauge
	snapshots  *prometheus.CounterVec
}

// New builds a registry with Go runtime collectors and the dashboard metrics.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		executions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_total",
			Help:      "Commands and queries executed, by outcome code.",
		}, []string{"kind", "name", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent inside command and query handlers.",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"kind", "name"}),
		storageUp: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "storage_up",
			Help:      "1 when the local key-value store answered the last health check.",
		}),
		snapshots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workspace_snapshots_total",
			Help:      "Workspace snapshot attempts, by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.executions,
		m.latency,
		m.storageUp,
		m.snapshots,
	)
	return m
}

// ObserveDispatch matches usecase.Observer.
func (m *Metrics) ObserveDispatch(kind, name string, elapsed time.Duration, err error) {
	m.executions.WithLabelValues(kind, name, outcome(err)).Inc()
	m.latency.WithLabelValues(kind, name).Observe(elapsed.Seconds())
}

func (m *Metrics) SetStorageUp(up bool) {
	if up {
		m.storageUp.Set(1)
		return
	}
	m.storageUp.Set(0)
}

func (m *Metrics) ObserveSnapshot(err error) {
	if err != nil {
		m.snapshots.WithLabelValues("error").Inc()
		return
	}
	m.snapshots.WithLabelValues("ok").Inc()
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry on fasthttp.
func (m *Metrics) Handler() fasthttp.RequestHandler {
	return fasthttpadaptor.NewFastHTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	var dErr *domain.Error
	if errors.As(err, &dErr) {
		return string(dErr.Code)
	}
	if domain.IsDomainError(err, domain.ErrCodeInvalid) {
		return string(domain.ErrCodeInvalid)
	}
	return string(domain.ErrCodeInternal)
}
