/*
Package bus handles asynchronous communication across components in the application via a publisher/subscriber model.
Publishing is a no-op until a publisher is set (see runjot.SetBus), so library consumers that never wire a bus pay nothing.
*/
package bus

import "github.com/wagoodman/go-partybus"

var publisher partybus.Publisher

// SetPublisher for the given context
func SetPublisher(p partybus.Publisher) {
	publisher = p
}

// Publish an event to all subscribers for the given event type / context
func Publish(event partybus.Event) {
	if publisher != nil {
		publisher.Publish(event)
	}
}
