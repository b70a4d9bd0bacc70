package util

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

var (
	RowsGeneratedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "novagen_rows_generated_total",
		Help: "Total number of rows generated per dataset",
	}, []string{"dataset"})

	StagesFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "novagen_stages_failed_total",
		Help: "Total number of failed generation stages",
	}, []string{"stage"})

	StageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "novagen_stage_duration_seconds",
		Help:    "Duration of each generation stage",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})

	RunsCompletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "novagen_runs_completed_total",
		Help: "Total number of completed generation runs",
	})

	SinkRowsLoadedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "novagen_sink_rows_loaded_total",
		Help: "Total number of rows delivered to an external sink",
	}, []string{"sink", "dataset"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "novagen_http_requests_total",
		Help: "Total number of HTTP requests served by the preview server",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "novagen_http_request_duration_seconds",
		Help:    "Duration of HTTP requests served by the preview server",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// WriteMetricsFile exports the default registry in the Prometheus text
// format, for the node_exporter textfile collector or ad-hoc inspection.
func WriteMetricsFile(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	path := filepath.Join(dir, "novagen_metrics.prom")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}
	defer f.Close()

	enc := expfmt.NewEncoder(f, expfmt.FmtText)
	for _, fam := range families {
		if err := enc.Encode(fam); err != nil {
			return fmt.Errorf("encode metric family %s: %w", fam.GetName(), err)
		}
	}
	return nil
}
