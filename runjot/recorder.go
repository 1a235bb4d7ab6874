package runjot

import (
	"time"

	"github.com/google/uuid"
	"github.com/wagoodman/go-partybus"

	"github.com/runjot/runjot/internal/bus"
	"github.com/runjot/runjot/internal/log"
	"github.com/runjot/runjot/runjot/event"
	"github.com/runjot/runjot/runjot/reporter"
	"github.com/runjot/runjot/runjot/run"
)

// DefaultLogFile is where run records land when no other location is configured.
const DefaultLogFile = "runs.jsonl"

// Recorder turns finished runs into records and appends them to the run log.
type Recorder struct {
	logFile  string
	clock    func() time.Time
	newRunID func() string
}

// Option adjusts how a Recorder is constructed.
type Option func(*Recorder)

// WithLogFile directs records to the given path instead of DefaultLogFile.
func WithLogFile(path string) Option {
	return func(r *Recorder) {
		r.logFile = path
	}
}

// WithClock substitutes the time source used to stamp and time runs.
func WithClock(clock func() time.Time) Option {
	return func(r *Recorder) {
		r.clock = clock
	}
}

// WithRunIDs stamps every record with a fresh UUID so that individual runs can be
// referenced from elsewhere.
func WithRunIDs() Option {
	return func(r *Recorder) {
		r.newRunID = uuid.NewString
	}
}

func NewRecorder(options ...Option) *Recorder {
	r := &Recorder{
		logFile: DefaultLogFile,
		clock:   time.Now,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// LogFile reports where this Recorder appends run records.
func (r *Recorder) LogFile() string {
	return r.logFile
}

// Record builds a record for a single finished run and appends it to the run log.
// Params may be any value that binds to a map (see run.BindParams); values that do
// not bind are kept under the run.FallbackKey instead of being dropped. The record
// is returned even when appending fails so that callers can still inspect it.
func (r *Recorder) Record(functionName string, params interface{}, metrics interface{}, start time.Time, elapsed time.Duration) (run.Record, error) {
	boundParams, err := run.BindParams(params)
	if err != nil {
		log.Warnf("unable to bind params for %q: %v", functionName, err)
		boundParams = run.FallbackParams(params)
	}

	record := run.NewRecord(functionName, boundParams, metrics, start, elapsed)
	if r.newRunID != nil {
		record.RunID = r.newRunID()
	}

	if err := reporter.Append(record, r.logFile); err != nil {
		return record, err
	}

	bus.Publish(partybus.Event{
		Type:  event.RunRecorded,
		Value: record,
	})

	return record, nil
}
