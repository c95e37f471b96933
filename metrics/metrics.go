// SPDX-License-Identifier: MIT

// Package metrics exposes enumeration and clustering figures as prometheus
// collectors. A Recorder is passed to clique.WithObserver and owns its own
// registry, so several recorders never collide.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/cliquer/clique"
)

const namespace = "cliquer"

// Recorder implements clique.Observer. All methods are safe for concurrent use.
type Recorder struct {
	registry *prometheus.Registry

	calls      *prometheus.CounterVec
	cliques    *prometheus.CounterVec
	cliqueSize *prometheus.HistogramVec
	depth      *prometheus.GaugeVec
	duration   *prometheus.HistogramVec
	clustering prometheus.Gauge
	triangles  prometheus.Gauge
}

var _ clique.Observer = (*Recorder)(nil)

// NewRecorder registers every collector on a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bron_kerbosch",
			Name:      "calls_total",
			Help:      "Recursive Bron–Kerbosch invocations, root included",
		}, []string{"variant"}),
		cliques: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "bron_kerbosch",
			Name:      "cliques_total",
			Help:      "Maximal cliques reported",
		}, []string{"variant"}),
		cliqueSize: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "bron_kerbosch",
			Name:      "clique_size",
			Help:      "Size distribution of reported maximal cliques",
			Buckets:   []float64{1, 2, 3, 4, 5, 6, 8, 10, 15, 20},
		}, []string{"variant"}),
		depth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "bron_kerbosch",
			Name:      "max_depth",
			Help:      "Deepest recursion reached by the last run",
		}, []string{"variant"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "bron_kerbosch",
			Name:      "run_duration_seconds",
			Help:      "Wall time of a full enumeration",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"variant"}),
		clustering: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "clustering",
			Name:      "average_coefficient",
			Help:      "Average local clustering coefficient of the input graph",
		}),
		triangles: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "clustering",
			Name:      "triangles",
			Help:      "Triangle count of the input graph",
		}),
	}
	r.registry.MustRegister(r.calls, r.cliques, r.cliqueSize, r.depth, r.duration, r.clustering, r.triangles)

	return r
}

// OnCall counts one recursive invocation.
func (r *Recorder) OnCall(v clique.Variant, _ int) {
	r.calls.WithLabelValues(v.String()).Inc()
}

// OnClique counts one reported clique and records its size.
func (r *Recorder) OnClique(v clique.Variant, size int) {
	r.cliques.WithLabelValues(v.String()).Inc()
	r.cliqueSize.WithLabelValues(v.String()).Observe(float64(size))
}

// ObserveRun records the outcome of a finished Run.
func (r *Recorder) ObserveRun(res *clique.Result, elapsed time.Duration) {
	r.depth.WithLabelValues(res.Variant.String()).Set(float64(res.MaxDepth))
	r.duration.WithLabelValues(res.Variant.String()).Observe(elapsed.Seconds())
}

// SetClustering records the graph-level clustering figures.
func (r *Recorder) SetClustering(average float64, triangles int) {
	r.clustering.Set(average)
	r.triangles.Set(float64(triangles))
}

// Registry exposes the underlying registry, e.g. for promhttp.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// WriteText writes every gathered family in the prometheus text format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("metrics: write %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
