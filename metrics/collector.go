package metrics

import (
	"github.com/dmitrymomot/topicbus"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes a network's delivery counters and topology gauges as
// Prometheus metrics. It implements prometheus.Collector by snapshotting
// Publisher.Stats on every scrape; nothing is recorded on the publish path.
type Collector[T comparable, C any] struct {
	pub  *topicbus.Publisher[T, C]
	subs []*topicbus.Subscriber[T, C]

	published   *prometheus.Desc
	delivered   *prometheus.Desc
	dropped     *prometheus.Desc
	unrouted    *prometheus.Desc
	topics      *prometheus.Desc
	subscribers *prometheus.Desc
	pending     *prometheus.Desc
}

// NewCollector builds a collector over pub's network. Subscriber handles are
// optional: each one adds a per-subscriber backlog gauge labeled with its
// subscriber_id. Only the host holds subscriber handles, so per-subscriber
// visibility is opt-in by construction.
func NewCollector[T comparable, C any](pub *topicbus.Publisher[T, C], subs ...*topicbus.Subscriber[T, C]) *Collector[T, C] {
	return &Collector[T, C]{
		pub:  pub,
		subs: subs,
		published: prometheus.NewDesc(
			"topicbus_messages_published_total",
			"Publish calls observed by the network, routable or not.",
			nil, nil,
		),
		delivered: prometheus.NewDesc(
			"topicbus_messages_delivered_total",
			"Message copies that reached a mailbox.",
			nil, nil,
		),
		dropped: prometheus.NewDesc(
			"topicbus_messages_dropped_total",
			"Message copies lost to closed or full mailboxes.",
			nil, nil,
		),
		unrouted: prometheus.NewDesc(
			"topicbus_messages_unrouted_total",
			"Publish calls whose topic had no registrations.",
			nil, nil,
		),
		topics: prometheus.NewDesc(
			"topicbus_topics",
			"Topics with at least one registration.",
			nil, nil,
		),
		subscribers: prometheus.NewDesc(
			"topicbus_subscribers",
			"Subscribers created during setup, including closed ones.",
			nil, nil,
		),
		pending: prometheus.NewDesc(
			"topicbus_subscriber_pending_messages",
			"Messages queued in a subscriber's mailbox.",
			[]string{"subscriber_id"}, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector[T, C]) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.published
	ch <- c.delivered
	ch <- c.dropped
	ch <- c.unrouted
	ch <- c.topics
	ch <- c.subscribers
	ch <- c.pending
}

// Collect implements prometheus.Collector.
func (c *Collector[T, C]) Collect(ch chan<- prometheus.Metric) {
	stats := c.pub.Stats()

	ch <- prometheus.MustNewConstMetric(c.published, prometheus.CounterValue, float64(stats.Published))
	ch <- prometheus.MustNewConstMetric(c.delivered, prometheus.CounterValue, float64(stats.Delivered))
	ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(stats.Dropped))
	ch <- prometheus.MustNewConstMetric(c.unrouted, prometheus.CounterValue, float64(stats.Unrouted))
	ch <- prometheus.MustNewConstMetric(c.topics, prometheus.GaugeValue, float64(stats.Topics))
	ch <- prometheus.MustNewConstMetric(c.subscribers, prometheus.GaugeValue, float64(stats.Subscribers))

	for _, sub := range c.subs {
		ch <- prometheus.MustNewConstMetric(c.pending, prometheus.GaugeValue,
			float64(sub.Pending()), sub.ID().String())
	}
}
