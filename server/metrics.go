package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	frontendDashboard = "dashboard"
	frontendAPI       = "api"
	frontendChart     = "chart"
)

var (
	recomputations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "glucose_insights_recomputations_total",
		Help: "Filter and summary recomputations, by front-end",
	}, []string{"frontend"})

	renderDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "glucose_insights_render_duration_seconds",
		Help:    "Time spent rendering one view",
		Buckets: prometheus.DefBuckets,
	}, []string{"frontend"})

	datasetRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "glucose_insights_dataset_rows",
		Help: "Readings in the loaded dataset",
	})

	loadFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "glucose_insights_load_failures_total",
		Help: "Dataset loads that fell back to an empty dataset",
	})
)

// observe records one recomputation for frontend, call the returned func when done.
func observe(frontend string) func() {
	start := time.Now()
	recomputations.WithLabelValues(frontend).Inc()
	return func() {
		renderDuration.WithLabelValues(frontend).Observe(time.Since(start).Seconds())
	}
}
