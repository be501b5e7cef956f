package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	saved   prometheus.Counter
	evicted prometheus.Counter
	expired prometheus.Counter
	lookups *prometheus.CounterVec
	entries prometheus.Gauge
}

// NewMetrics registers the snapshot cache collectors on reg. A nil reg
// creates unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		saved: f.NewCounter(prometheus.CounterOpts{
			Namespace: "usage_insights",
			Subsystem: "snapshot_cache",
			Name:      "saved_total",
			Help:      "Snapshots stored.",
		}),
		evicted: f.NewCounter(prometheus.CounterOpts{
			Namespace: "usage_insights",
			Subsystem: "snapshot_cache",
			Name:      "evicted_total",
			Help:      "Snapshots dropped because the cache was full.",
		}),
		expired: f.NewCounter(prometheus.CounterOpts{
			Namespace: "usage_insights",
			Subsystem: "snapshot_cache",
			Name:      "expired_total",
			Help:      "Snapshots dropped on read after their TTL.",
		}),
		lookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "usage_insights",
			Subsystem: "snapshot_cache",
			Name:      "lookups_total",
			Help:      "Snapshot lookups by result.",
		}, []string{"result"}),
		entries: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "usage_insights",
			Subsystem: "snapshot_cache",
			Name:      "entries",
			Help:      "Snapshots currently held.",
		}),
	}
}
