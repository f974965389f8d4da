package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "levelup"

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	xpGrants = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "leveling",
			Name:      "xp_grants_total",
			Help:      "Committed XP grants by ledger source.",
		},
		[]string{"source"},
	)

	xpGranted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "leveling",
			Name:      "xp_granted_total",
			Help:      "XP points granted by ledger source.",
		},
		[]string{"source"},
	)

	levelUps = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "leveling",
			Name:      "level_ups_total",
			Help:      "Number of level advances.",
		},
	)

	grantFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "leveling",
			Name:      "grant_failures_total",
			Help:      "Rolled back XP grants by error kind.",
		},
		[]string{"reason"},
	)

	nutritionAccumulations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "nutrition",
			Name:      "accumulations_total",
			Help:      "Number of committed nutrition merges.",
		},
	)

	feedEntries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "feed",
			Name:      "entries_total",
			Help:      "Feed entries written by type.",
		},
		[]string{"type"},
	)

	xpAudits = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "leveling",
			Name:      "xp_audits_total",
			Help:      "XP ledger audits by result.",
		},
		[]string{"result"},
	)

	weeklyRuns = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "weekly_summary",
			Name:      "runs_total",
			Help:      "Weekly summary runs by outcome.",
		},
		[]string{"outcome"},
	)

	weeklyDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "weekly_summary",
			Name:      "run_duration_seconds",
			Help:      "Duration of weekly summary runs.",
			Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		xpGrants,
		xpGranted,
		levelUps,
		grantFailures,
		nutritionAccumulations,
		feedEntries,
		xpAudits,
		weeklyRuns,
		weeklyDuration,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the provided handler with HTTP metrics collection.
// Paths are labelled with the matched chi route pattern to keep cardinality bounded.
func InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		httpInFlight.Inc()
		defer httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		path := routePattern(r)
		method := strings.ToUpper(r.Method)

		httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

// RecordGrant records a committed XP grant.
func RecordGrant(source string, amount int64, leveledUp bool) {
	if source == "" {
		source = "unknown"
	}
	xpGrants.WithLabelValues(source).Inc()
	xpGranted.WithLabelValues(source).Add(float64(amount))
	if leveledUp {
		levelUps.Inc()
	}
}

// RecordGrantFailure records a rolled back XP grant.
func RecordGrantFailure(reason string) {
	grantFailures.WithLabelValues(reason).Inc()
}

// RecordNutrition records a committed nutrition merge.
func RecordNutrition() {
	nutritionAccumulations.Inc()
}

// RecordFeedEntry records a feed entry written outside the leveling transaction.
func RecordFeedEntry(feedType string) {
	feedEntries.WithLabelValues(feedType).Inc()
}

// RecordXPAudit records whether a profile matched its ledger.
func RecordXPAudit(consistent bool) {
	result := "drift"
	if consistent {
		result = "consistent"
	}
	xpAudits.WithLabelValues(result).Inc()
}

// RecordWeeklyRun records the outcome of one weekly summary run.
func RecordWeeklyRun(outcome string, duration time.Duration) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	weeklyRuns.WithLabelValues(outcome).Inc()
	weeklyDuration.Observe(duration.Seconds())
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}
