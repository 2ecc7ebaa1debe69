package notify

import (
	"context"
	"errors"
	"io"

	corenotify "github.com/mossyhq/binminder/core/notify"
)

// MultiNotifier fans a notification out to multiple backends, returning the
// first error encountered after all sends were attempted.
type MultiNotifier struct {
	Notifiers []corenotify.Notifier
}

// NewMultiNotifier creates a MultiNotifier with the provided backends.
func NewMultiNotifier(notifiers ...corenotify.Notifier) *MultiNotifier {
	return &MultiNotifier{Notifiers: notifiers}
}

// Send delivers to every backend; one failing backend does not stop the rest.
func (m *MultiNotifier) Send(ctx context.Context, n corenotify.Notification) error {
	var errs []error
	for _, notifier := range m.Notifiers {
		if err := notifier.Send(ctx, n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Close closes every backend that holds a connection.
func (m *MultiNotifier) Close() error {
	var errs []error
	for _, notifier := range m.Notifiers {
		if c, ok := notifier.(io.Closer); ok {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
