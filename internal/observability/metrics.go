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
			Namespace: "flagwire",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "flagwire",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	typeDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flagwire",
			Subsystem: "wire",
			Name:      "type_decodes_total",
			Help:      "Compact type references decoded, by resolution outcome.",
		},
		[]string{"outcome"},
	)
	instanceRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flagwire",
			Subsystem: "wire",
			Name:      "instance_records_total",
			Help:      "Flag instance records transcoded.",
		},
		[]string{"direction"},
	)
	customTypes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "flagwire",
			Subsystem: "registry",
			Name:      "custom_types",
			Help:      "Custom flag types currently registered.",
		},
	)
	rejectedTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "flagwire",
			Subsystem: "state",
			Name:      "rejected_transitions_total",
			Help:      "Flag status transitions rejected, by reason.",
		},
		[]string{"reason"},
	)
)

// Type decode outcomes.
const (
	OutcomeKnown   = "known"
	OutcomeUnknown = "unknown"
	OutcomeNull    = "null"
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			httpRequests,
			httpDuration,
			typeDecodes,
			instanceRecords,
			customTypes,
			rejectedTransitions,
		)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordTypeDecode(outcome string) {
	RegisterMetrics()
	typeDecodes.WithLabelValues(outcome).Inc()
}

func RecordInstancePack() {
	RegisterMetrics()
	instanceRecords.WithLabelValues("pack").Inc()
}

func RecordInstanceUnpack() {
	RegisterMetrics()
	instanceRecords.WithLabelValues("unpack").Inc()
}

func SetCustomTypeCount(n int) {
	RegisterMetrics()
	customTypes.Set(float64(n))
}

func RecordRejectedTransition(reason string) {
	RegisterMetrics()
	rejectedTransitions.WithLabelValues(reason).Inc()
}
