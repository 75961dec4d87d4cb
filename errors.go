package topicbus

import "errors"

var (
	// ErrSubscriberClosed is returned by Subscriber.Close when the handle was
	// already closed.
	ErrSubscriberClosed = errors.New("subscriber already closed")
)
