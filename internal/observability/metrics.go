package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	computeDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "attention_service",
		Subsystem: "engine",
		Name:      "compute_duration_seconds",
		Help:      "Wall time spent computing one engine component.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"component"})
	recordsLoaded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "attention_service",
		Subsystem: "persistence",
		Name:      "records_loaded_total",
		Help:      "Raw records loaded from Postgres for analytics snapshots.",
	}, []string{"kind"})
	lastPersistedGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "attention_service",
		Subsystem: "persistence",
		Name:      "last_record_persisted_timestamp_seconds",
		Help:      "Unix timestamp of the most recent record persisted to Postgres.",
	}, []string{"kind"})
)

func init() {
	prometheus.MustRegister(computeDuration, recordsLoaded, lastPersistedGauge)
}

// ObserveCompute records the wall time of one engine computation.
func ObserveCompute(component string, elapsed time.Duration) {
	computeDuration.WithLabelValues(component).Observe(elapsed.Seconds())
}

// RecordsLoaded counts records fetched for a snapshot.
func RecordsLoaded(kind string, n int) {
	recordsLoaded.WithLabelValues(kind).Add(float64(n))
}

// RecordPersisted updates the persistence watermark gauge.
func RecordPersisted(kind string, ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastPersistedGauge.WithLabelValues(kind).Set(float64(ts.Unix()))
}
