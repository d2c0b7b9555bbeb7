// Package metrics exports memetic search progress as Prometheus metrics.
package metrics

import (
	"fmt"

	"github.com/katalvlaran/memetic/genetic"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "memetic"
	subsystem = "genetic"
)

// Observer is a genetic.Observer that records every generation into
// Prometheus collectors. Gauges hold the latest generation; counters
// accumulate over every run observed.
type Observer struct {
	generations      prometheus.Counter
	localSearchSteps prometheus.Counter
	phases           *prometheus.CounterVec
	cost             *prometheus.GaugeVec
	costStdDev       prometheus.Gauge
	duration         prometheus.Histogram
}

var _ genetic.Observer = (*Observer)(nil)

// NewObserver creates the collectors and registers them with reg.
// constLabels are attached to every series (e.g. the instance name).
func NewObserver(reg prometheus.Registerer, constLabels prometheus.Labels) (*Observer, error) {
	o := &Observer{
		generations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "generations_total",
			Help:        "Completed generations.",
			ConstLabels: constLabels,
		}),
		localSearchSteps: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "local_search_steps_total",
			Help:        "Accepted local-search moves.",
			ConstLabels: constLabels,
		}),
		phases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "phase_transitions_total",
			Help:        "Entries into each engine phase.",
			ConstLabels: constLabels,
		}, []string{"phase"}),
		cost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "tour_cost",
			Help:        "Tour cost of the latest generation after local search.",
			ConstLabels: constLabels,
		}, []string{"stat"}),
		costStdDev: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "tour_cost_stddev",
			Help:        "Standard deviation of tour costs in the latest generation.",
			ConstLabels: constLabels,
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Subsystem:   subsystem,
			Name:        "generation_duration_seconds",
			Help:        "Wall-clock time per generation.",
			Buckets:     prometheus.ExponentialBuckets(0.0005, 4, 10),
			ConstLabels: constLabels,
		}),
	}

	for _, c := range []prometheus.Collector{
		o.generations, o.localSearchSteps, o.phases, o.cost, o.costStdDev, o.duration,
	} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return o, nil
}

// OnPhase implements genetic.Observer.
func (o *Observer) OnPhase(_ int, phase genetic.Phase) {
	o.phases.WithLabelValues(phase.String()).Inc()
}

// OnGeneration implements genetic.Observer.
func (o *Observer) OnGeneration(r genetic.GenerationReport) {
	o.generations.Inc()
	o.localSearchSteps.Add(float64(r.LocalSearchSteps))
	o.cost.WithLabelValues("best").Set(r.Stats.Best)
	o.cost.WithLabelValues("mean").Set(r.Stats.Mean)
	o.cost.WithLabelValues("worst").Set(r.Stats.Worst)
	o.costStdDev.Set(r.Stats.StdDev)
	o.duration.Observe(r.Duration.Seconds())
}
