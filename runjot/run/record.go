// Package run defines the record written for each run of a wrapped function.
package run

import (
	"time"

	jstime "github.com/runjot/runjot/internal/time"
)

// Record is a single run: one invocation of a wrapped function, one JSON line in the
// log file.
type Record struct {
	Timestamp      jstime.Datetime        `json:"timestamp"`       // start of the run, in UTC().Format(time.RFC3339)
	RuntimeSeconds jstime.Duration        `json:"runtime_seconds"` // wall time of the run, seconds at four decimals
	Params         map[string]interface{} `json:"params"`          // the run's inputs, bound to names
	Metrics        interface{}            `json:"metrics"`         // the wrapped function's return value, verbatim
	FunctionName   string                 `json:"function_name"`
	RunID          string                 `json:"run_id,omitempty"` // uuid for this run, when run IDs are enabled
}

// NewRecord builds the Record for a run that began at start and took elapsed.
func NewRecord(functionName string, params map[string]interface{}, metrics interface{}, start time.Time, elapsed time.Duration) Record {
	return Record{
		Timestamp:      jstime.Datetime{Time: start.UTC()},
		RuntimeSeconds: jstime.Duration{Duration: elapsed},
		Params:         params,
		Metrics:        metrics,
		FunctionName:   functionName,
	}
}
