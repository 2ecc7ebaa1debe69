package metrics

import "time"

// Outcome classifies one pipeline run.
type Outcome string

const (
	OutcomeMatch   Outcome = "match"
	OutcomeNoMatch Outcome = "no_match"
	OutcomeError   Outcome = "error"
)

// RunEvent captures the result of one invocation for observability purposes.
type RunEvent struct {
	RunID    string
	Outcome  Outcome
	BinKind  string
	ErrKind  string
	Duration time.Duration
	Time     time.Time
}

// MetricsSink records run events.
type MetricsSink interface {
	RecordRun(ev RunEvent) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunEvent) error { return nil }
