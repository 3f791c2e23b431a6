package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

type Outcome string

const (
	Success                  Outcome       = "success"
	Error                    Outcome       = "error"
	MetricRequestTimeout     time.Duration = 5 * time.Second
	MetricRequestIdleTimeout time.Duration = 10 * time.Second
)

func (O Outcome) String() string {
	return string(O)
}

func outcome(failure bool) Outcome {
	if failure {
		return Error
	}
	return Success
}

var (
	once                           sync.Once
	metricsRouter                  *chi.Mux
	custodyLatency                 *prometheus.HistogramVec
	queueSendErrorCounter          prometheus.Counter
	clientRequestDurationHistogram *prometheus.HistogramVec
	httpRequestDurationHistogram   *prometheus.HistogramVec
	pollerDurationHistogram        *prometheus.HistogramVec
	ledgerOperationDuration        *prometheus.HistogramVec
	compensationFailureCounter     prometheus.Counter
	totalStakedGauge               prometheus.Gauge
	participantsGauge              prometheus.Gauge
	pendingRewardsGauge            prometheus.Gauge
	dbLatency                      *prometheus.HistogramVec
)

// Init initializes the metrics package.
func Init(addr string) {
	once.Do(func() {
		registerMetrics()
		if addr != "" {
			initMetricsRouter(addr)
		}
	})
}

// initMetricsRouter initializes the metrics router.
func initMetricsRouter(metricsAddr string) {
	metricsRouter = chi.NewRouter()
	metricsRouter.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})
	// Create a custom server with timeout settings
	server := &http.Server{
		Addr:         metricsAddr,
		Handler:      metricsRouter,
		ReadTimeout:  MetricRequestTimeout,
		WriteTimeout: MetricRequestTimeout,
		IdleTimeout:  MetricRequestIdleTimeout,
	}

	// Start the server in a separate goroutine
	go func() {
		log.Info().Msgf("Starting metrics server on %s", metricsAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msgf("Error starting metrics server on %s", metricsAddr)
		}
	}()
}

// registerMetrics initializes and register the Prometheus metrics.
func registerMetrics() {
	defaultHistogramBucketsSeconds := []float64{0.1, 0.5, 1, 2.5, 5, 10, 30}

	// client requests are the ones sending to other service
	clientRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "client_request_duration_seconds",
			Help:    "Histogram of outgoing client request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"baseurl", "method", "path", "status"},
	)

	httpRequestDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of incoming http request durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"route", "method", "status"},
	)

	custodyLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "custody_latency_seconds",
			Help:    "Histogram of custody transfer durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"method", "status"},
	)

	// add a counter for the number of errors from the fail to push message into queue
	queueSendErrorCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "queue_send_error_count",
			Help: "The total number of errors when sending messages to the queue",
		},
	)

	pollerDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "poller_duration_seconds",
			Help:    "Histogram of poller durations in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"type", "status"},
	)

	ledgerOperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ledger_operation_duration_seconds",
			Help:    "Ledger operation duration in seconds.",
			Buckets: defaultHistogramBucketsSeconds,
		},
		[]string{"operation", "status"},
	)

	compensationFailureCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "custody_compensation_failure_count",
			Help: "Number of transfers that could not be reversed after a failed journal write",
		},
	)

	totalStakedGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_total_staked",
			Help: "Current total staked amount",
		},
	)

	participantsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_active_participants",
			Help: "Number of participants with a non zero stake",
		},
	)

	pendingRewardsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "ledger_pending_rewards",
			Help: "Sum of rewards accrued but not yet claimed",
		},
	)

	dbLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "db_latency_seconds",
			Help: "DB latency in seconds splitted by method and execution status",
		},
		[]string{"method", "status"},
	)

	prometheus.MustRegister(
		custodyLatency,
		queueSendErrorCounter,
		clientRequestDurationHistogram,
		httpRequestDurationHistogram,
		pollerDurationHistogram,
		ledgerOperationDuration,
		compensationFailureCounter,
		totalStakedGauge,
		participantsGauge,
		pendingRewardsGauge,
		dbLatency,
	)
}

func RecordCustodyLatency(d time.Duration, method string, failure bool) {
	custodyLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordDbLatency(d time.Duration, method string, failure bool) {
	dbLatency.WithLabelValues(method, outcome(failure).String()).Observe(d.Seconds())
}

func RecordLedgerOperationDuration(d time.Duration, operation string, failure bool) {
	ledgerOperationDuration.WithLabelValues(operation, outcome(failure).String()).Observe(d.Seconds())
}

func RecordHttpRequestDuration(d time.Duration, route, method string, statusCode int) {
	httpRequestDurationHistogram.WithLabelValues(route, method, fmt.Sprintf("%d", statusCode)).Observe(d.Seconds())
}

// RecordLedgerStats publishes the latest computed aggregate. Float conversion
// may lose precision for very large amounts which is acceptable for gauges.
func RecordLedgerStats(totalStaked, pendingRewards float64, activeParticipants uint64) {
	totalStakedGauge.Set(totalStaked)
	pendingRewardsGauge.Set(pendingRewards)
	participantsGauge.Set(float64(activeParticipants))
}

func IncCompensationFailures() {
	compensationFailureCounter.Inc()
}

// StartClientRequestDurationTimer starts a timer to measure outgoing client request duration.
func StartClientRequestDurationTimer(baseUrl, method, path string) func(statusCode int) {
	startTime := time.Now()
	return func(statusCode int) {
		duration := time.Since(startTime).Seconds()
		clientRequestDurationHistogram.WithLabelValues(
			baseUrl,
			method,
			path,
			fmt.Sprintf("%d", statusCode),
		).Observe(duration)
	}
}

func RecordQueueSendError() {
	queueSendErrorCounter.Inc()
}
