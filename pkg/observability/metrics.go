package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schedulesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduler_schedules_generated_total",
		Help: "Schedule generation attempts by engine and outcome.",
	}, []string{"engine", "status"})

	generationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scheduler_generation_duration_seconds",
		Help:    "Wall time of matching engine runs.",
		Buckets: prometheus.DefBuckets,
	}, []string{"engine"})

	emailsDrafted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scheduler_emails_drafted_total",
		Help: "Generated email drafts by type.",
	}, []string{"type"})
)

// ObserveGeneration records one engine run.
func ObserveGeneration(engine string, started time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	schedulesGenerated.WithLabelValues(engine, status).Inc()
	generationDuration.WithLabelValues(engine).Observe(time.Since(started).Seconds())
}

// CountEmailDraft records one generated email draft.
func CountEmailDraft(emailType string) {
	emailsDrafted.WithLabelValues(emailType).Inc()
}
