package topicbus_test

import (
	"fmt"

	"github.com/dmitrymomot/topicbus"
)

func Example() {
	builder := topicbus.New[string, string]()

	s1 := builder.AddSubscriber("widgets")
	s2 := builder.AddSubscriber("widgets", "gears")

	bus := builder.Build()

	bus.Publish("widgets", "sprocket")
	bus.Publish("gears", "cog")

	for _, msg := range s1.Fetch() {
		fmt.Printf("s1 got %s on %s\n", msg.Content, msg.Topic)
	}
	for _, msg := range s2.Fetch() {
		fmt.Printf("s2 got %s on %s\n", msg.Content, msg.Topic)
	}

	// Output:
	// s1 got sprocket on widgets
	// s2 got sprocket on widgets
	// s2 got cog on gears
}

func ExamplePublisher_Clone() {
	builder := topicbus.New[string, int]()
	sub := builder.AddSubscriber("totals")
	bus := builder.Build()

	reporter := bus.Clone()
	reporter.Publish("totals", 42)

	for _, msg := range sub.Fetch() {
		fmt.Println(msg.Content)
	}

	// Output:
	// 42
}
