package game

import "github.com/prometheus/client_golang/prometheus"

// Metrics exports simulation events as Prometheus series. Counters are
// totals over every run feeding the registry; the live gauge is labelled
// per run.
type Metrics struct {
	spawned   prometheus.Counter
	destroyed prometheus.Counter
	escaped   prometheus.Counter
	hits      prometheus.Counter
	live      *prometheus.GaugeVec
}

// NewMetrics creates the dragonfire_* series and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		spawned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dragonfire_drones_spawned_total",
			Help: "Drones added to the playfield.",
		}),
		destroyed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dragonfire_drones_destroyed_total",
			Help: "Drones culled after their health ran out.",
		}),
		escaped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dragonfire_drones_escaped_total",
			Help: "Drones culled after leaving the playfield.",
		}),
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dragonfire_beam_hits_total",
			Help: "Drone-ticks spent under the beam.",
		}),
		live: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dragonfire_drones_live",
			Help: "Drones on the playfield of one run.",
		}, []string{"run"}),
	}
	reg.MustRegister(m.spawned, m.destroyed, m.escaped, m.hits, m.live)
	return m
}

// Run returns the event sink for one simulation, labelled run.
func (m *Metrics) Run(run string) *RunMetrics {
	return &RunMetrics{m: m, live: m.live.WithLabelValues(run)}
}

// RunMetrics feeds the shared counters and one run's live gauge.
type RunMetrics struct {
	m    *Metrics
	live prometheus.Gauge
}

// Observe updates the series for one event.
func (r *RunMetrics) Observe(e Event) {
	switch e.Kind {
	case EventSpawn:
		r.m.spawned.Inc()
		r.live.Inc()
	case EventHit:
		r.m.hits.Inc()
	case EventDestroyed:
		r.m.destroyed.Inc()
		r.live.Dec()
	case EventEscaped:
		r.m.escaped.Inc()
		r.live.Dec()
	}
}
