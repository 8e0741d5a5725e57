package ingest

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"fdrates/internal/domain/entity"
)

//nolint:gochecknoglobals
var (
	refreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fdrates_refresh_total",
		Help: "Feed refresh attempts by source and status.",
	}, []string{"source", "status"})

	recordsUpdated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fdrates_records_updated_total",
		Help: "Rate quote rows written per source.",
	}, []string{"source"})

	refreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fdrates_refresh_duration_seconds",
		Help:    "Wall time of a single source refresh.",
		Buckets: prometheus.DefBuckets,
	})
)

func observeRefresh(source string, status entity.RunStatus, count int, elapsed time.Duration) {
	refreshTotal.WithLabelValues(source, string(status)).Inc()
	recordsUpdated.WithLabelValues(source).Add(float64(count))
	refreshDuration.Observe(elapsed.Seconds())
}
