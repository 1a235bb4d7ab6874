package json

import (
	"encoding/json"
	"io"

	"github.com/runjot/runjot/runjot/run"
)

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	record run.Record
}

// NewPresenter is a *Presenter constructor
func NewPresenter(record run.Record) *Presenter {
	return &Presenter{
		record: record,
	}
}

// Present creates a JSON-based reporting
func (pres *Presenter) Present(output io.Writer) error {
	enc := json.NewEncoder(output)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	return enc.Encode(pres.record)
}
