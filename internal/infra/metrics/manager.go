// Package metrics exposes Prometheus instruments for reminder runs and HTTP traffic.
package metrics

import (
	"strconv"
	"time"

	"ignite/config"
	"ignite/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	defaultNamespace  = "ignite"
	reminderSubsystem = "reminder"
	httpSubsystem     = "http"
)

type Manager struct {
	// counters
	CounterDispatch *prometheus.CounterVec
	CounterRuns     *prometheus.CounterVec
	CounterRequests *prometheus.CounterVec

	// histograms
	HistRunDuration          prometheus.Histogram
	HistogramRequestDuration *prometheus.HistogramVec
}

func NewTestManager() *Manager {
	return NewManager(defaultNamespace, prometheus.NewRegistry())
}

// NewFromConfig builds the manager on reg using the configured namespace.
func NewFromConfig(cfg *config.Config, reg *prometheus.Registry) *Manager {
	namespace := defaultNamespace
	if cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	return NewManager(namespace, reg)
}

func NewManager(namespace string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterDispatch := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: reminderSubsystem,
		Name:      "dispatch_total",
		Help:      "Reminder dispatch attempts by outcome",
	}, []string{"outcome"})
	counterRuns := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: reminderSubsystem,
		Name:      "runs_total",
		Help:      "Completed reminder runs by result",
	}, []string{"success"})
	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: httpSubsystem,
		Name:      "requests_total",
		Help:      "The total number of incoming requests",
	}, []string{"method", "route", "status"})

	histRunDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: reminderSubsystem,
		Name:      "run_duration_seconds",
		Help:      "Wall time of a reminder run",
		Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	})
	histRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: httpSubsystem,
		Name:      "request_duration_seconds",
		Help:      "Request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	return &Manager{
		CounterDispatch:          counterDispatch,
		CounterRuns:              counterRuns,
		CounterRequests:          counterRequests,
		HistRunDuration:          histRunDuration,
		HistogramRequestDuration: histRequestDuration,
	}
}

// ObserveDispatch counts one reminder attempt.
func (m *Manager) ObserveDispatch(outcome entity.DispatchOutcome) {
	m.CounterDispatch.WithLabelValues(string(outcome)).Inc()
}

// ObserveRun records a finished reminder run.
func (m *Manager) ObserveRun(duration time.Duration, success bool) {
	m.HistRunDuration.Observe(duration.Seconds())
	m.CounterRuns.WithLabelValues(strconv.FormatBool(success)).Inc()
}

// ObserveRequest records one HTTP request.
func (m *Manager) ObserveRequest(method, route string, status int, duration time.Duration) {
	m.CounterRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HistogramRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
