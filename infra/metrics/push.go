package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	coremetrics "github.com/mossyhq/binminder/core/metrics"
)

// PushSink records run events in Prometheus metrics and pushes them to a
// Pushgateway. A one-shot cron process has no scrape window, so push is the
// only way these counters survive the run.
type PushSink struct {
	pusher   *push.Pusher
	runs     *prometheus.CounterVec
	duration prometheus.Gauge
}

// NewPushSink builds a sink targeting the given gateway under the given job name.
func NewPushSink(cfg coremetrics.PushConfig) *PushSink {
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "binminder_runs_total",
		Help: "Number of pipeline runs by outcome",
	}, []string{"outcome", "bin", "error_kind"})
	duration := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "binminder_run_duration_seconds",
		Help: "Duration of the last pipeline run",
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(runs, duration)
	return &PushSink{
		pusher:   push.New(cfg.Gateway, cfg.Job).Gatherer(reg),
		runs:     runs,
		duration: duration,
	}
}

// RecordRun pushes the run outcome to the gateway.
func (s *PushSink) RecordRun(ev coremetrics.RunEvent) error {
	s.runs.WithLabelValues(string(ev.Outcome), ev.BinKind, ev.ErrKind).Inc()
	s.duration.Set(ev.Duration.Seconds())
	return s.pusher.Push()
}
