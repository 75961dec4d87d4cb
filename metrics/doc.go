// Package metrics adapts topicbus networks to Prometheus.
//
// The collector reads Publisher.Stats on scrape; nothing is recorded on the
// publish path and no goroutines are started. Register it like any other
// collector:
//
//	builder := topicbus.New[string, Event]()
//	alerts := builder.AddSubscriber("alerts")
//	bus := builder.Build()
//
//	prometheus.MustRegister(metrics.NewCollector(bus, alerts))
//
// Passing subscriber handles is optional and adds one backlog gauge per
// handle, labeled by subscriber_id:
//
//	topicbus_subscriber_pending_messages{subscriber_id="..."} 3
//
// # Exposed Metrics
//
//   - topicbus_messages_published_total (counter)
//   - topicbus_messages_delivered_total (counter)
//   - topicbus_messages_dropped_total (counter)
//   - topicbus_messages_unrouted_total (counter)
//   - topicbus_topics (gauge)
//   - topicbus_subscribers (gauge)
//   - topicbus_subscriber_pending_messages (gauge, per handle passed in)
package metrics
