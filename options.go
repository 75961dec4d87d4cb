package topicbus

import (
	"io"
	"log/slog"
)

// Option configures a Builder. Options are evaluated once by New; invalid
// values are ignored and leave the defaults in place.
type Option func(*options)

type options struct {
	logger     *slog.Logger
	mailboxCap int
}

func defaultOptions() options {
	return options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger sets the logger shared by the network: registrations and closes
// log at debug level, the one-time build at info level. Nil loggers are
// ignored; the default discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMailboxCapacity bounds every mailbox created by the builder to capacity
// queued messages. Publishing to a full mailbox drops that copy silently
// until the subscriber drains. Zero or negative values are ignored; the
// default is unbounded.
func WithMailboxCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.mailboxCap = capacity
		}
	}
}
