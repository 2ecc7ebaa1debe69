package app

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/mossyhq/binminder/config"
	coremetrics "github.com/mossyhq/binminder/core/metrics"
	"github.com/mossyhq/binminder/core/model"
	corenotify "github.com/mossyhq/binminder/core/notify"
	"github.com/mossyhq/binminder/core/waste"
	"github.com/mossyhq/binminder/infra/logger"
	"github.com/mossyhq/binminder/infra/metrics"
	"github.com/mossyhq/binminder/infra/notify"
	"github.com/mossyhq/binminder/infra/source"
)

// Service runs the fetch-decode-notify pipeline once per invocation.
type Service struct {
	source      waste.Source
	notifier    corenotify.Notifier
	sink        coremetrics.MetricsSink
	log         logger.Logger
	addressCode string
	runID       string
	now         func() time.Time
}

// New creates a Service from the configuration. A notifier that cannot be
// constructed is a hard failure: it is the only error-reporting channel.
func New(cfg *config.Config) (*Service, error) {
	notifier, err := notify.New(cfg.Notify)
	if err != nil {
		return nil, err
	}
	return &Service{
		source:      source.NewClient(cfg.Source),
		notifier:    notifier,
		sink:        metrics.New(cfg.Metrics),
		log:         logger.New("service"),
		addressCode: cfg.Source.AddressCode,
		runID:       uuid.NewString(),
		now:         time.Now,
	}, nil
}

// Run executes one unit of work: fetch the schedule, decode the configured
// address line, check tomorrow, and deliver at most one notification. Pipeline
// failures are reported through the notifier and do not fail the run; only the
// absence of a reporting channel does.
func (s *Service) Run(ctx context.Context) error {
	start := s.now()
	s.log.Infof("run %s: checking schedule for tomorrow", s.runID)

	bin, matched, err := s.check(ctx)
	ev := coremetrics.RunEvent{
		RunID:    s.runID,
		Duration: s.now().Sub(start),
		Time:     start,
	}
	switch {
	case err != nil:
		ev.Outcome = coremetrics.OutcomeError
		ev.ErrKind = errKind(err)
		s.log.Errorf("run %s: %v", s.runID, err)
		s.send(ctx, corenotify.Failure(err))
	case matched:
		ev.Outcome = coremetrics.OutcomeMatch
		ev.BinKind = bin.Kind.String()
		s.log.Infof("run %s: %s due tomorrow", s.runID, bin.Label())
		s.send(ctx, corenotify.Reminder(bin.Label()))
	default:
		ev.Outcome = coremetrics.OutcomeNoMatch
		s.log.Infof("run %s: nothing due tomorrow", s.runID)
	}

	if err := s.sink.RecordRun(ev); err != nil {
		s.log.Warnf("run %s: record metrics: %v", s.runID, err)
	}
	return nil
}

func (s *Service) check(ctx context.Context) (bin model.Bin, matched bool, err error) {
	raw, err := s.source.Fetch(ctx)
	if err != nil {
		return model.Bin{}, false, err
	}
	schedule, err := waste.DecodeAll(raw, s.addressCode)
	if err != nil {
		return model.Bin{}, false, err
	}
	bin, matched = waste.FindTomorrow(schedule, s.now())
	return bin, matched, nil
}

// send is best effort: a failed delivery is logged and otherwise unobserved.
func (s *Service) send(ctx context.Context, n corenotify.Notification) {
	if err := s.notifier.Send(ctx, n); err != nil {
		s.log.Errorf("run %s: send notification: %v", s.runID, err)
	}
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	var errs []error
	if c, ok := s.notifier.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	if c, ok := s.sink.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// errKind maps pipeline errors to stable metric label values.
func errKind(err error) string {
	switch {
	case errors.Is(err, waste.ErrAddressNotFound):
		return "address_not_found"
	case errors.Is(err, waste.ErrMalformedLine):
		return "malformed_line"
	case errors.Is(err, waste.ErrMalformedLength):
		return "malformed_length"
	case errors.Is(err, waste.ErrInvalidDigit):
		return "invalid_digit"
	case errors.Is(err, waste.ErrDateEncoding):
		return "date_encoding"
	case errors.Is(err, waste.ErrCalendarDate):
		return "calendar_date"
	default:
		return "transport"
	}
}
