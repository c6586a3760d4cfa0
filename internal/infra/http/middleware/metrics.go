package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	spinsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "spins_recorded_total",
			Help: "Total number of spins recorded",
		},
		[]string{"outcome"},
	)

	prizesWon = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prizes_won_total",
			Help: "Total number of winning spins recorded",
		},
	)

	eligibilityChecks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eligibility_checks_total",
			Help: "Total number of eligibility checks by verdict",
		},
		[]string{"verdict"},
	)

	emailsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_emails_total",
			Help: "Total number of notification email attempts",
		},
		[]string{"kind", "status"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordSpin(winning bool) {
	outcome := "lost"
	if winning {
		outcome = "won"
		prizesWon.Inc()
	}
	spinsRecorded.WithLabelValues(outcome).Inc()
}

func RecordEligibilityCheck(eligible bool) {
	verdict := "ineligible"
	if eligible {
		verdict = "eligible"
	}
	eligibilityChecks.WithLabelValues(verdict).Inc()
}

func RecordEmailSent(kind, status string) {
	emailsSent.WithLabelValues(kind, status).Inc()
}
