package parsers

import (
	"fmt"

	"github.com/wagoodman/go-partybus"

	"github.com/runjot/runjot/runjot/event"
	"github.com/runjot/runjot/runjot/run"
)

type ErrBadPayload struct {
	Type  partybus.EventType
	Field string
	Value interface{}
}

func (e *ErrBadPayload) Error() string {
	return fmt.Sprintf("event='%s' has bad event payload field='%v': '%+v'", string(e.Type), e.Field, e.Value)
}

func newPayloadErr(t partybus.EventType, field string, value interface{}) error {
	return &ErrBadPayload{
		Type:  t,
		Field: field,
		Value: value,
	}
}

func checkEventType(actual, expected partybus.EventType) error {
	if actual != expected {
		return newPayloadErr(expected, "Type", actual)
	}
	return nil
}

func ParseRunRecorded(e partybus.Event) (*run.Record, error) {
	if err := checkEventType(e.Type, event.RunRecorded); err != nil {
		return nil, err
	}

	record, ok := e.Value.(run.Record)
	if !ok {
		return nil, newPayloadErr(e.Type, "Value", e.Value)
	}

	return &record, nil
}
