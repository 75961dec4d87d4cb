// Package topicbus provides an in-process publish-subscribe message bus with
// a build-once topology and non-blocking delivery.
//
// The package targets applications that wire a fixed set of components
// together at startup: subscribers are registered during a setup phase, the
// topology is sealed by a single Build call, and from then on cloneable
// publisher handles fan messages out to private per-subscriber mailboxes.
// Everything happens inside one process with no broker goroutines and no
// persistence; delivery is an enqueue and consumption is a snapshot drain.
//
// # Architecture
//
// Three public types cover the whole lifecycle:
//   - Builder: setup-phase collector of subscriptions, consumed by Build
//   - Publisher: run-phase delivery handle, cheap to Clone
//   - Subscriber: exclusive consumer of one mailbox, drained with Fetch
//
// The topology is generic over [T comparable, C any]: any comparable type can
// serve as a topic, from plain strings to custom key structs, and any type
// can be carried as content.
//
// # Usage
//
// Setup, build, publish, fetch:
//
//	builder := topicbus.New[string, string]()
//
//	alerts := builder.AddSubscriber("widgets")
//	audit := builder.AddSubscriber("widgets", "gears")
//
//	bus := builder.Build()
//
//	bus.Publish("widgets", "sprocket")
//	bus.Publish("gears", "cog")
//
//	for _, msg := range alerts.Fetch() {
//		fmt.Printf("alert: %s %s\n", msg.Topic, msg.Content)
//	}
//	for _, msg := range audit.Fetch() {
//		fmt.Printf("audit: %s %s\n", msg.Topic, msg.Content)
//	}
//
// Handing independent publisher handles to producer goroutines:
//
//	for range workers {
//		go produce(bus.Clone())
//	}
//
// # Delivery Semantics
//
// Publishing to a topic enqueues one copy of the message per registration for
// that topic, in registration order. Topics carry no pattern matching; a
// message reaches exactly the mailboxes registered for its literal topic
// value. Publishing to a topic nobody registered for is a silent no-op.
//
// Mailboxes are unbounded by default and every operation is non-blocking:
// Publish never waits for consumers and Fetch never waits for producers.
// Messages published by one goroutine to one topic are fetched in publish
// order; fan-out preserves that order independently for every subscriber.
//
// Registering the same topic twice in one AddSubscriber call registers the
// mailbox twice, and the subscriber fetches two copies of every matching
// message. Deduplicate topics at the call site when that is not intended.
//
// # Setup Freeze
//
// Build consumes the builder: the topology visible through any Publisher is
// fixed forever at that point. Subscribers cannot be added after Build and
// registrations cannot be removed; publishers do not exist before Build.
// Calling AddSubscriber or Build on a consumed builder panics, the same way
// misusing a nil map would: it is a programming error, not a runtime
// condition.
//
// # Slow and Departed Consumers
//
// A subscriber that stops fetching accumulates backlog; with the default
// unbounded mailboxes that backlog grows without limit, so hosts that cannot
// guarantee draining should bound mailboxes:
//
//	builder := topicbus.New[string, Event](topicbus.WithMailboxCapacity(1024))
//
// Publishing to a full mailbox drops that copy silently rather than blocking
// the publisher or affecting other subscribers. Closing a subscriber has the
// same delivery effect as never fetching again, except the backlog is
// released immediately: later copies for it are dropped silently while every
// other subscriber keeps receiving. Publish deliberately has no error
// surface; delivery problems are visible only through Stats and debug logs.
//
// # Observability
//
// Networks accept a *slog.Logger via WithLogger (the default discards all
// output) and expose shared counters through Publisher.Stats. The metrics
// subpackage adapts a network to a prometheus.Collector.
//
// # Thread Safety
//
// Publisher and Subscriber are safe for concurrent use; the Builder is not,
// setup is expected to happen on one goroutine before the run phase starts.
// The package spawns no goroutines of its own.
package topicbus
