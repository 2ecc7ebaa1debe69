package notify

import (
	"context"
	"fmt"
)

// Default field values for reminder notifications.
const (
	DefaultTitle    = "Bin Reminder"
	DefaultPriority = 5
)

// Notification is one outbound message. Delivery is best effort: the pipeline
// never observes or retries a failed send.
type Notification struct {
	Title    string
	Message  string
	Priority int
}

// Notifier delivers a notification out-of-band.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// Reminder builds the success message for a bin label.
func Reminder(label string) Notification {
	return Notification{
		Title:    DefaultTitle,
		Message:  fmt.Sprintf("Put out %s for tomorrow", label),
		Priority: DefaultPriority,
	}
}

// Failure builds the error-channel message. The notification channel is the
// only error-reporting channel this pipeline has.
func Failure(err error) Notification {
	return Notification{
		Title:    DefaultTitle,
		Message:  fmt.Sprintf("Error: %v", err),
		Priority: DefaultPriority,
	}
}

// NopNotifier discards notifications.
type NopNotifier struct{}

func (NopNotifier) Send(context.Context, Notification) error { return nil }
