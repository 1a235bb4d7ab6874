// Package event defines the bus event types shared between the library and its UIs.
package event

import "github.com/wagoodman/go-partybus"

const (
	RunRecorded partybus.EventType = "runjot-run-recorded"
)
