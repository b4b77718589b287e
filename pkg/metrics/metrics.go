// Package metrics instruments one batch run with Prometheus
// collectors. Because the tools are one-shot processes there is no
// scrape endpoint; a run can instead dump its registry in the text
// exposition format for a node-exporter textfile collector to pick up.
package metrics

import (
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Registry holds all metrics for one invocation.
type Registry struct {
	// Graph build
	BuildDuration prometheus.Histogram
	GraphActors   prometheus.Gauge
	GraphMovies   prometheus.Gauge
	GraphEdges    prometheus.Gauge

	// Query execution
	QueriesTotal  *prometheus.CounterVec   // {engine, status}
	QueryDuration *prometheus.HistogramVec // {engine}

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all collectors initialized.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	r := &Registry{registry: reg}

	r.BuildDuration = promauto.With(reg).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "costar_graph_build_duration_seconds",
			Help:    "Time spent reading the dataset and building the graph",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
	)
	r.GraphActors = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "costar_graph_actors",
			Help: "Number of distinct actors in the built graph",
		},
	)
	r.GraphMovies = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "costar_graph_movies",
			Help: "Number of distinct movies in the built graph",
		},
	)
	r.GraphEdges = promauto.With(reg).NewGauge(
		prometheus.GaugeOpts{
			Name: "costar_graph_edges",
			Help: "Number of projected actor-actor edges",
		},
	)

	r.QueriesTotal = promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Name: "costar_queries_total",
			Help: "Total number of queries executed",
		},
		[]string{"engine", "status"},
	)
	r.QueryDuration = promauto.With(reg).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "costar_query_duration_seconds",
			Help:    "Query execution duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"engine"},
	)

	return r
}

// RecordBuild records a finished graph build.
func (r *Registry) RecordBuild(actors int, duration time.Duration) {
	r.GraphActors.Set(float64(actors))
	r.BuildDuration.Observe(duration.Seconds())
}

// RecordQuery records one query execution.
func (r *Registry) RecordQuery(engine, status string, duration time.Duration) {
	r.QueriesTotal.WithLabelValues(engine, status).Inc()
	r.QueryDuration.WithLabelValues(engine).Observe(duration.Seconds())
}

// WriteTextfile dumps the registry in the text exposition format,
// written atomically so a collector never reads a half-finished file.
func (r *Registry) WriteTextfile(path string) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}

	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create metrics file: %w", err)
	}

	enc := expfmt.NewEncoder(f, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			f.Close()
			os.Remove(tmp)
			return fmt.Errorf("encode metric family %s: %w", mf.GetName(), err)
		}
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
