package topicbus

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// mailbox carries messages from the registry's producer side to exactly one
// Subscriber. Both sides are non-blocking: producers append under a mutex,
// the consumer swaps the whole backlog out. capacity == 0 means unbounded.
type mailbox[T comparable, C any] struct {
	id       uuid.UUID
	capacity int
	logger   *slog.Logger

	mu     sync.Mutex
	buf    []Message[T, C]
	closed bool
}

func newMailbox[T comparable, C any](capacity int, logger *slog.Logger) *mailbox[T, C] {
	return &mailbox[T, C]{
		id:       uuid.New(),
		capacity: capacity,
		logger:   logger,
	}
}

// enqueue appends msg to the backlog. It reports false when the mailbox is
// closed or full; the caller only counts the outcome, it never retries.
func (m *mailbox[T, C]) enqueue(msg Message[T, C]) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return false
	}
	if m.capacity > 0 && len(m.buf) >= m.capacity {
		return false
	}
	m.buf = append(m.buf, msg)
	return true
}

// drain returns the backlog accumulated so far, oldest first, and resets the
// queue. Messages enqueued after the swap belong to the next drain.
func (m *mailbox[T, C]) drain() []Message[T, C] {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.buf
	m.buf = nil
	return out
}

func (m *mailbox[T, C]) pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buf)
}

// close marks the mailbox dead and releases the backlog. It returns the number
// of messages discarded and whether this call was the one that closed it.
func (m *mailbox[T, C]) close() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, false
	}
	discarded := len(m.buf)
	m.closed = true
	m.buf = nil
	return discarded, true
}
