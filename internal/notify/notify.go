package notify

import (
	"context"
	"time"
)

// Severity constants recognised by notifier sinks.
const (
	SeverityError = "error"
	SeverityInfo  = "info"
)

// DefaultDuration is how long a transient notice should stay visible.
const DefaultDuration = 5 * time.Second

// Notice captures the canonical data we emit for a user-visible transient message.
type Notice struct {
	Message    string
	Severity   string
	ErrorClass string
	Duration   time.Duration
	OccurredAt time.Time
}

// Notifier describes a destination capable of presenting transient notices to the user.
type Notifier interface {
	Notify(ctx context.Context, notice Notice) error
}

// NotifierFunc adapts a function to the Notifier interface (useful for tests).
type NotifierFunc func(ctx context.Context, notice Notice) error

// Notify implements the Notifier interface.
func (f NotifierFunc) Notify(ctx context.Context, notice Notice) error {
	if f == nil {
		return nil
	}
	return f(ctx, notice)
}

// Error builds an error-severity notice from err with the default duration.
// A generic fallback message is used when message is empty.
func Error(err error, message string) Notice {
	if message == "" {
		if err != nil {
			message = err.Error()
		} else {
			message = "Error"
		}
	}
	return Notice{
		Message:    message,
		Severity:   SeverityError,
		ErrorClass: Classify(err),
		Duration:   DefaultDuration,
		OccurredAt: time.Now(),
	}
}
