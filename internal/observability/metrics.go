package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nibblekit",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"node", "method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "nibblekit",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"node", "method", "path", "status"},
	)
	codecOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nibblekit",
			Subsystem: "codec",
			Name:      "operations_total",
			Help:      "Nibble codec operations by kind.",
		},
		[]string{"op"},
	)
	codecNibbles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nibblekit",
			Subsystem: "codec",
			Name:      "nibbles_total",
			Help:      "Nibbles packed or unpacked.",
		},
		[]string{"op"},
	)
	arithOverflows = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "nibblekit",
			Subsystem: "arith",
			Name:      "overflow_total",
			Help:      "Arithmetic results that reported overflow.",
		},
		[]string{"op"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, codecOperations, codecNibbles, arithOverflows)
	})
}

func RecordHTTPRequest(node, method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(node, method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(node, method, path, statusLabel).Observe(duration.Seconds())
}

// RecordCodec counts one codec call that moved nibbles nibbles.
func RecordCodec(op string, nibbles int) {
	RegisterMetrics()
	codecOperations.WithLabelValues(op).Inc()
	codecNibbles.WithLabelValues(op).Add(float64(nibbles))
}

func RecordArith(op string, overflow bool) {
	RegisterMetrics()
	codecOperations.WithLabelValues("arith_" + op).Inc()
	if overflow {
		arithOverflows.WithLabelValues(op).Inc()
	}
}
