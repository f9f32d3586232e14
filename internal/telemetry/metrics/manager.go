package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterRecordsCreated      *prometheus.CounterVec
	CounterDetections          *prometheus.CounterVec
	CounterRecalculations      *prometheus.CounterVec
	CounterScopesRepaired      prometheus.Counter

	// gauges
	GaugeRequests      prometheus.Gauge
	GaugeLifeSignal    prometheus.Gauge
	GaugePendingScopes prometheus.Gauge

	// histograms
	HistogramRequestDuration       *prometheus.HistogramVec
	HistogramRecalculationDuration prometheus.Histogram
	HistogramLockWait              prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("gymprs", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("gymprs", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterRecordsCreated := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "personal_records_created",
		Help:      "The total number of personal records set by new lift logs",
	}, []string{"type"})
	counterDetections := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "pr_detections",
		Help:      "The total number of incremental PR detections",
	}, []string{"outcome"})
	counterRecalculations := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "pr_recalculations",
		Help:      "The total number of full ledger recalculations",
	}, []string{"reason", "outcome"})
	counterScopesRepaired := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "pending_scopes_repaired",
		Help:      "The total number of pending scopes recalculated by the repair job",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})
	gaugePendingScopes := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "pending_scopes",
		Help:      "Number of scopes waiting for a ledger repair",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histogramRecalculationDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "pr_recalculation_duration_seconds",
		Help:      "Duration of a single scope ledger recalculation in seconds",
		Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
	})
	histogramLockWait := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "scope_lock_wait_seconds",
		Help:      "Time spent waiting for a scope lock in seconds",
		Buckets:   []float64{.0001, .001, .005, .01, .05, .1, .5, 1, 5},
	})

	return &Manager{
		CounterRequests:                counterRequests,
		CounterHandleRequestPanic:      counterHandleRequestPanic,
		CounterRateLimitedRequests:     counterRateLimitedRequests,
		CounterRecordsCreated:          counterRecordsCreated,
		CounterDetections:              counterDetections,
		CounterRecalculations:          counterRecalculations,
		CounterScopesRepaired:          counterScopesRepaired,
		GaugeRequests:                  gaugeRequests,
		GaugeLifeSignal:                gaugeLifeSignal,
		GaugePendingScopes:             gaugePendingScopes,
		HistogramRequestDuration:       histogramRequestDuration,
		HistogramRecalculationDuration: histogramRecalculationDuration,
		HistogramLockWait:              histogramLockWait,
	}
}
