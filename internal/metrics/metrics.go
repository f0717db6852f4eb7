// Package metrics holds the Prometheus collectors for the server.
//
// Collectors live on a private registry so tests can build as many
// instances as they like. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "splitkaro"

// Metrics groups the server's collectors.
type Metrics struct {
	registry *prometheus.Registry

	rpcRequests   *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
	expenses      prometheus.Counter
	settlements   prometheus.Counter
	memberChanges *prometheus.CounterVec
}

// New builds the collectors and registers them, along with the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC calls handled, by procedure and result code.",
		}, []string{"procedure", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		expenses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "expenses_recorded_total",
			Help:      "Expenses recorded.",
		}),
		settlements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlements_recorded_total",
			Help:      "Settlements recorded.",
		}),
		memberChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trip_members_total",
			Help:      "Trip membership changes, by resulting status.",
		}, []string{"status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.rpcRequests,
		m.rpcDuration,
		m.expenses,
		m.settlements,
		m.memberChanges,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRPC records one finished call. code is "ok" on success.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.rpcRequests.WithLabelValues(procedure, code).Inc()
	m.rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}

func (m *Metrics) ExpenseRecorded() {
	if m == nil {
		return
	}
	m.expenses.Inc()
}

func (m *Metrics) SettlementRecorded() {
	if m == nil {
		return
	}
	m.settlements.Inc()
}

// MemberStatusChanged counts a membership reaching status. "removed" is used
// for rejected requests.
func (m *Metrics) MemberStatusChanged(status string) {
	if m == nil {
		return
	}
	m.memberChanges.WithLabelValues(status).Inc()
}
