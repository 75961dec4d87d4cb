package topicbus

// Stats is a point-in-time snapshot of a network's delivery counters and
// topology gauges. Counters are shared by every Publisher clone of the same
// network; the gauges are fixed at Build.
type Stats struct {
	// Published counts Publish calls, routable or not.
	Published uint64

	// Delivered counts message copies that reached a mailbox.
	Delivered uint64

	// Dropped counts message copies lost to closed or full mailboxes.
	Dropped uint64

	// Unrouted counts Publish calls whose topic had no registrations.
	Unrouted uint64

	// Topics is the number of topics with at least one registration.
	Topics int

	// Subscribers is the number of subscribers created during setup,
	// including ones closed since.
	Subscribers int
}
