package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	Queries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "twminer_queries_total",
		Help: "Total queries issued per flow",
	}, []string{"op"})
	QueryErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "twminer_query_errors_total",
		Help: "Total failed queries per flow and failure kind",
	}, []string{"op", "kind"})
	QueryDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "twminer_query_duration_seconds",
		Help:    "Query duration seconds, including rate-limit waits",
		Buckets: prometheus.DefBuckets,
	}, []string{"op"})
	RateLimitWaits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "twminer_rate_limit_waits_total",
		Help: "Total rate-limit windows waited out",
	})
)

func init() {
	prometheus.MustRegister(Queries, QueryErrors, QueryDuration, RateLimitWaits)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
// An empty addr disables it.
func StartServer(addr string) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, mux) }()
}

// ObserveQuery records one finished query.
func ObserveQuery(op string, start time.Time) {
	Queries.WithLabelValues(op).Inc()
	QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// IncQueryError counts a failed query.
func IncQueryError(op, kind string) { QueryErrors.WithLabelValues(op, kind).Inc() }

// IncRateLimitWait counts a rate-limit window the transport sat out.
func IncRateLimitWait() { RateLimitWaits.Inc() }
