// Package metrics exposes the Prometheus registry behind /metrics.
// Besides the usual HTTP metrics it tracks the CRM-specific counters:
// mutations by outcome, restocked products, queued reminder mails and
// background job results.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registry holds everything this package defines plus the Go runtime
// and process collectors.
var registry = prometheus.NewRegistry()

var (
	httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "crm",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	httpTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests served.",
	}, []string{"method", "path", "status"})

	httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "crm",
		Subsystem: "http",
		Name:      "requests_in_flight",
		Help:      "Requests currently being served.",
	})

	httpResponseSize = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "crm",
		Subsystem: "http",
		Name:      "response_size_bytes",
		Help:      "Response body sizes in bytes.",
		Buckets:   []float64{100, 1_000, 10_000, 100_000, 1_000_000},
	}, []string{"method", "path"})

	queueProcessed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "queue",
		Name:      "jobs_processed_total",
		Help:      "Queue jobs finished, by outcome.",
	}, []string{"status"})

	queueDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "crm",
		Subsystem: "queue",
		Name:      "job_duration_seconds",
		Help:      "Queue job processing time in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"job_type"})

	mutationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "mutations",
		Name:      "total",
		Help:      "GraphQL mutations, by operation and outcome.",
	}, []string{"operation", "status"})

	productsRestocked = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "restock",
		Name:      "products_total",
		Help:      "Products topped up by the low-stock job.",
	})

	remindersEnqueued = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "crm",
		Subsystem: "reminders",
		Name:      "enqueued_total",
		Help:      "Order reminder mails enqueued.",
	})
)

func init() {
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		httpDuration, httpTotal, httpInFlight, httpResponseSize,
		queueProcessed, queueDuration,
		mutationsTotal, productsRestocked, remindersEnqueued,
	)
}

// MustRegister adds collectors defined outside this package to the
// scraped registry.
func MustRegister(cs ...prometheus.Collector) {
	registry.MustRegister(cs...)
}

// RecordMutation counts one mutation with status "success" or "error".
func RecordMutation(operation, status string) {
	mutationsTotal.WithLabelValues(operation, status).Inc()
}

// AddProductsRestocked adds n to the restock counter.
func AddProductsRestocked(n int) {
	productsRestocked.Add(float64(n))
}

// AddRemindersEnqueued adds n to the reminder counter.
func AddRemindersEnqueued(n int) {
	remindersEnqueued.Add(float64(n))
}

// RecordQueueJob counts one finished queue job and observes its
// duration since start.
func RecordQueueJob(jobType, status string, start time.Time) {
	queueProcessed.WithLabelValues(status).Inc()
	queueDuration.WithLabelValues(jobType).Observe(time.Since(start).Seconds())
}

type recorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// Middleware observes every request: latency, count, in-flight and
// response size. The path label is the raw URL path, which is fine for
// this API's tiny route surface.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			httpInFlight.Inc()
			defer httpInFlight.Dec()

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			status := strconv.Itoa(rec.status)
			httpDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
			httpTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
			httpResponseSize.WithLabelValues(r.Method, r.URL.Path).Observe(float64(rec.size))
		})
	}
}

// Handler serves the scrape endpoint. Mount on /metrics.
func Handler() http.HandlerFunc {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}).ServeHTTP
}
