package topicbus

// Message is a single published item as seen by a subscriber: the topic it was
// published under together with the content value.
//
// Content is copied by assignment once per matching registration at publish
// time. Value types are therefore fully independent between subscribers;
// reference types (pointers, maps, slices) share their referent.
type Message[T comparable, C any] struct {
	Topic   T
	Content C
}
