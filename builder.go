package topicbus

import "log/slog"

// Builder assembles the delivery topology during the setup phase. Create one
// with New, register every subscriber the application needs, then call Build
// exactly once to seal the topology and obtain a Publisher.
//
// A Builder is not safe for concurrent use; setup is single-threaded by
// design.
type Builder[T comparable, C any] struct {
	reg        *registry[T, C]
	mailboxCap int
}

// New starts the setup phase of a fresh network. The type parameters fix the
// topic type (any comparable) and the content type for the network's whole
// lifetime.
func New[T comparable, C any](opts ...Option) *Builder[T, C] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Builder[T, C]{
		reg:        newRegistry[T, C](o.logger),
		mailboxCap: o.mailboxCap,
	}
}

// AddSubscriber creates a subscriber and registers its mailbox under each
// listed topic, in argument order. Listing the same topic twice registers the
// mailbox twice, and that subscriber will fetch two copies of every message
// published to the topic. Zero topics is legal; such a subscriber never
// receives anything.
//
// AddSubscriber panics if the builder was already consumed by Build.
func (b *Builder[T, C]) AddSubscriber(topics ...T) *Subscriber[T, C] {
	if b.reg == nil {
		panic("topicbus: AddSubscriber called on a builder already consumed by Build")
	}
	mbox := newMailbox[T, C](b.mailboxCap, b.reg.logger)
	for _, topic := range topics {
		b.reg.topics[topic] = append(b.reg.topics[topic], mbox)
	}
	b.reg.subscribers++
	b.reg.logger.Debug("subscriber registered",
		slog.String("subscriber_id", mbox.id.String()),
		slog.Int("topics", len(topics)),
	)
	return &Subscriber[T, C]{mbox: mbox}
}

// Build seals the topology and hands it to a Publisher. The builder keeps no
// reference to the network afterwards, so nothing done with the builder can
// affect delivery. Build panics when called twice.
func (b *Builder[T, C]) Build() *Publisher[T, C] {
	if b.reg == nil {
		panic("topicbus: Build called on a builder already consumed by Build")
	}
	reg := b.reg
	b.reg = nil
	reg.logger.Info("network built",
		slog.Int("topics", len(reg.topics)),
		slog.Int("subscribers", reg.subscribers),
	)
	return &Publisher[T, C]{reg: reg}
}
