package topicbus

import (
	"log/slog"

	"github.com/google/uuid"
)

// Subscriber is the exclusive consumer handle of one mailbox, created by
// Builder.AddSubscriber. It stays valid for the life of the network and is
// safe for concurrent use, though a single consuming goroutine is the
// intended pattern.
type Subscriber[T comparable, C any] struct {
	mbox *mailbox[T, C]
}

// Fetch drains the mailbox: it returns every message queued up to this
// moment, oldest first, and leaves the mailbox empty. It never blocks; when
// nothing is queued, or the subscriber is closed, it returns an empty slice.
// Messages arriving while Fetch runs are kept for the next call.
func (s *Subscriber[T, C]) Fetch() []Message[T, C] {
	return s.mbox.drain()
}

// Close marks the subscriber dead and discards any queued messages. The
// network's topology is not modified: publishes to its topics keep working
// and silently skip this mailbox from then on. Close returns
// ErrSubscriberClosed when the handle was already closed.
func (s *Subscriber[T, C]) Close() error {
	discarded, ok := s.mbox.close()
	if !ok {
		return ErrSubscriberClosed
	}
	s.mbox.logger.Debug("subscriber closed",
		slog.String("subscriber_id", s.mbox.id.String()),
		slog.Int("discarded", discarded),
	)
	return nil
}

// ID returns the subscriber's stable identity, assigned at registration. It
// is the value used in log attributes and metrics labels.
func (s *Subscriber[T, C]) ID() uuid.UUID {
	return s.mbox.id
}

// Pending returns the number of messages currently queued.
func (s *Subscriber[T, C]) Pending() int {
	return s.mbox.pending()
}
