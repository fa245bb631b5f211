package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds every Prometheus series this service exports.
type Metrics struct {
	registry prometheus.Registerer

	solveRunsTotal       prometheus.CounterVec
	solveStatusTotal     prometheus.CounterVec
	solveDurationSeconds prometheus.HistogramVec
	solveObjectiveValue  prometheus.GaugeVec
}

// NewMetrics registers every solve metric against the global default
// registry. It panics if a metric fails to register.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry registers against a caller-supplied registry,
// mainly for tests.
func NewMetricsWithRegistry(registerer prometheus.Registerer) *Metrics {
	m := &Metrics{registry: registerer}

	m.solveRunsTotal = *prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "solve_runs_total", Help: "Total planning runs solved"},
		nil,
	)
	m.registry.MustRegister(&m.solveRunsTotal)

	m.solveStatusTotal = *prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "solve_status_total", Help: "Solve outcomes by status"},
		[]string{"status"},
	)
	m.registry.MustRegister(&m.solveStatusTotal)

	m.solveDurationSeconds = *prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "solve_duration_seconds", Help: "Wall-clock solve duration", Buckets: prometheus.DefBuckets},
		nil,
	)
	m.registry.MustRegister(&m.solveDurationSeconds)

	m.solveObjectiveValue = *prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Name: "solve_objective_value", Help: "Objective value of the most recent solve"},
		nil,
	)
	m.registry.MustRegister(&m.solveObjectiveValue)

	return m
}

// RecordSolve records one completed solve's status, duration, and
// objective value.
func (m *Metrics) RecordSolve(status string, durationSeconds float64, objectiveValue int64) {
	m.solveRunsTotal.WithLabelValues().Inc()
	m.solveStatusTotal.WithLabelValues(status).Inc()
	m.solveDurationSeconds.WithLabelValues().Observe(durationSeconds)
	m.solveObjectiveValue.WithLabelValues().Set(float64(objectiveValue))
}

// Handler returns the HTTP handler serving this registry in Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry.(prometheus.Gatherer), promhttp.HandlerOpts{})
}
