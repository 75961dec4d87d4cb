package topicbus

import (
	"log/slog"
	"sync/atomic"
)

// registry is the delivery topology plus the network state shared by every
// Publisher clone. The topic map is written only during the setup phase;
// after Build no code path mutates it, so publishes read it without locking.
type registry[T comparable, C any] struct {
	topics      map[T][]*mailbox[T, C]
	subscribers int
	logger      *slog.Logger

	published atomic.Uint64
	delivered atomic.Uint64
	dropped   atomic.Uint64
	unrouted  atomic.Uint64
}

func newRegistry[T comparable, C any](logger *slog.Logger) *registry[T, C] {
	return &registry[T, C]{
		topics: make(map[T][]*mailbox[T, C]),
		logger: logger,
	}
}
