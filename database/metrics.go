package database

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.opentelemetry.io/otel/trace"
)

var tracer trace.Tracer

func init() {
	tracer = otel.Tracer("github.com/quay/pkgaudit/database",
		trace.WithSchemaURL(semconv.SchemaURL),
	)
}

var (
	loadLabels = []string{"success"}
	loadTimer  = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "pkgaudit",
		Subsystem: "database",
		Name:      "load_duration_seconds",
		Help:      "Duration of Load calls walking an advisory directory tree.",
	}, loadLabels)
	loadCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pkgaudit",
		Subsystem: "database",
		Name:      "load_total",
		Help:      "Total number of Load calls, labeled by success.",
	}, loadLabels)
	advisoriesLoaded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pkgaudit",
		Subsystem: "database",
		Name:      "advisories_loaded_total",
		Help:      "Total number of advisories successfully indexed across all Load calls.",
	})
)

// loadTiming starts a timer that records load duration and count on
// completion, keyed by whether *err is non-nil when the returned func
// runs.
func loadTiming(err *error) func() {
	start := time.Now()
	return func() {
		success := "true"
		if *err != nil {
			success = "false"
		}
		loadTimer.WithLabelValues(success).Observe(time.Since(start).Seconds())
		loadCounter.WithLabelValues(success).Inc()
	}
}
