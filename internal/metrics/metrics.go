// Package metrics exports solve statistics in the Prometheus format.
package metrics

import (
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/gowtham152/optimization-galaxy/engine"
)

const namespace = "optgalaxy"

var labels = []string{"problem", "algorithm"}

// Recorder is an engine.Observer that counts and times solves.
type Recorder struct {
	duration  *prometheus.HistogramVec
	solves    *prometheus.CounterVec
	fallbacks *prometheus.CounterVec
	redirects *prometheus.CounterVec
}

var _ engine.Observer = (*Recorder)(nil)

// NewRecorder creates the collectors and registers them on reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Solver wall time, instance loading excluded.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 8),
		}, labels),
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Completed solves.",
		}, labels),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fallback_instances_total",
			Help:      "Solves that ran on the fallback instance because the source was unusable.",
		}, labels),
		redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "size_guard_redirects_total",
			Help:      "Solves where a size guard replaced the requested strategy with greedy.",
		}, labels),
	}
	for _, c := range []prometheus.Collector{r.duration, r.solves, r.fallbacks, r.redirects} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// ObserveSolve implements engine.Observer.
func (r *Recorder) ObserveSolve(env engine.Envelope) {
	lv := []string{string(env.ProblemType), string(env.Algorithm)}
	r.solves.WithLabelValues(lv...).Inc()
	r.duration.WithLabelValues(lv...).Observe(env.ExecutionTime)
	if env.UsedFallback {
		r.fallbacks.WithLabelValues(lv...).Inc()
	}
	if env.Solution.Redirected() {
		r.redirects.WithLabelValues(lv...).Inc()
	}
}

// WriteText dumps every family gathered from g in the text exposition
// format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		if _, err = expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
