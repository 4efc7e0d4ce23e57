package report

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
	tracer = otel.Tracer("github.com/quay/pkgaudit/report",
		trace.WithSchemaURL(semconv.SchemaURL),
	)
}

var (
	generateTimer = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "pkgaudit",
		Subsystem: "report",
		Name:      "generate_duration_seconds",
		Help:      "Duration of Generate calls joining a database against a lockfile.",
	})
	vulnerabilitiesFound = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "pkgaudit",
		Subsystem: "report",
		Name:      "vulnerabilities_found_total",
		Help:      "Total number of vulnerabilities surfaced across all Generate calls.",
	})
	warningsFound = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pkgaudit",
		Subsystem: "report",
		Name:      "warnings_found_total",
		Help:      "Total number of warnings surfaced across all Generate calls, by kind.",
	}, []string{"kind"})
)

func generateTiming() func() {
	start := time.Now()
	return func() {
		generateTimer.Observe(time.Since(start).Seconds())
	}
}
