package topicbus

import "log/slog"

// Publisher delivers messages into a built network. Handles are cheap to
// clone; every clone shares the same frozen topology, counters, and logger.
// A Publisher is safe for concurrent use by multiple goroutines.
type Publisher[T comparable, C any] struct {
	reg *registry[T, C]
}

// Publish enqueues one copy of content per registration for topic, in
// registration order. It never blocks and never fails: an unknown topic is a
// no-op, and copies that cannot be enqueued (closed or full mailbox) are
// dropped silently. Both outcomes are observable only through Stats.
func (p *Publisher[T, C]) Publish(topic T, content C) {
	reg := p.reg
	reg.published.Add(1)

	boxes, ok := reg.topics[topic]
	if !ok {
		reg.unrouted.Add(1)
		reg.logger.Debug("message unrouted", slog.Any("topic", topic))
		return
	}

	msg := Message[T, C]{Topic: topic, Content: content}
	var delivered, dropped uint64
	for _, mbox := range boxes {
		if mbox.enqueue(msg) {
			delivered++
		} else {
			dropped++
		}
	}
	reg.delivered.Add(delivered)
	reg.dropped.Add(dropped)
	reg.logger.Debug("message published",
		slog.Any("topic", topic),
		slog.Uint64("delivered", delivered),
		slog.Uint64("dropped", dropped),
	)
}

// Clone returns an independent handle to the same network. Hand clones to
// other goroutines or components; publishes through any handle interleave
// into the same mailboxes and the same counters.
func (p *Publisher[T, C]) Clone() *Publisher[T, C] {
	return &Publisher[T, C]{reg: p.reg}
}

// Topics returns every topic with at least one registration, in unspecified
// order.
func (p *Publisher[T, C]) Topics() []T {
	out := make([]T, 0, len(p.reg.topics))
	for topic := range p.reg.topics {
		out = append(out, topic)
	}
	return out
}

// SubscriberCount returns the number of registrations for topic. A subscriber
// that listed the topic twice counts twice.
func (p *Publisher[T, C]) SubscriberCount(topic T) int {
	return len(p.reg.topics[topic])
}

// Stats returns a point-in-time snapshot of the network's counters and
// topology gauges.
func (p *Publisher[T, C]) Stats() Stats {
	return Stats{
		Published:   p.reg.published.Load(),
		Delivered:   p.reg.delivered.Load(),
		Dropped:     p.reg.dropped.Load(),
		Unrouted:    p.reg.unrouted.Load(),
		Topics:      len(p.reg.topics),
		Subscribers: p.reg.subscribers,
	}
}
