package metrics

import (
	"errors"
	"testing"
	"time"

	coremetrics "github.com/mossyhq/binminder/core/metrics"
)

type recordingSink struct {
	events []coremetrics.RunEvent
	err    error
}

func (r *recordingSink) RecordRun(ev coremetrics.RunEvent) error {
	r.events = append(r.events, ev)
	return r.err
}

func TestMultiSinkForwards(t *testing.T) {
	a := &recordingSink{}
	b := &recordingSink{}
	m := NewMultiSink(a, b)
	ev := coremetrics.RunEvent{RunID: "r1", Outcome: coremetrics.OutcomeMatch, BinKind: "black", Time: time.Now()}
	if err := m.RecordRun(ev); err != nil {
		t.Fatalf("record: %v", err)
	}
	if len(a.events) != 1 || len(b.events) != 1 {
		t.Fatalf("expected all sinks to record, got %d/%d", len(a.events), len(b.events))
	}
}

func TestMultiSinkFirstError(t *testing.T) {
	want := errors.New("sink down")
	m := NewMultiSink(&recordingSink{err: want}, &recordingSink{})
	if err := m.RecordRun(coremetrics.RunEvent{}); !errors.Is(err, want) {
		t.Fatalf("expected sink error, got %v", err)
	}
}

func TestFactoryDefaultsToNop(t *testing.T) {
	s := New(coremetrics.Config{})
	if _, ok := s.(coremetrics.NopSink); !ok {
		t.Fatalf("expected NopSink, got %T", s)
	}
}

func TestFactoryPushOnly(t *testing.T) {
	cfg := coremetrics.Config{Push: coremetrics.PushConfig{Enabled: true, Gateway: "http://localhost:9091", Job: "binminder"}}
	s := New(cfg)
	if _, ok := s.(*PushSink); !ok {
		t.Fatalf("expected PushSink, got %T", s)
	}
}
