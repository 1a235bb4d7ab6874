// Once a run has been captured, this package persists it: one record, one JSON line,
// appended to the end of the log file.
package reporter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/runjot/runjot/internal/tracker"
	"github.com/runjot/runjot/runjot/run"
)

const logFilePermissions fs.FileMode = 0644

// Append writes record as a single JSON line at the end of logFile, creating the file
// if it does not exist. Existing content is never touched, and a record that cannot be
// serialized writes nothing at all.
func Append(record run.Record, logFile string) error {
	defer tracker.TrackFunctionTime(time.Now(), fmt.Sprintf("appending run record for %q to %s", record.FunctionName, logFile))

	line, err := serialize(record)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePermissions)
	if err != nil {
		return &WriteError{Path: logFile, Err: err}
	}
	defer f.Close()

	if _, err := f.Write(line); err != nil {
		return &WriteError{Path: logFile, Err: err}
	}

	return nil
}

// serialize renders the record as one JSON line. JSON-Lines requires every record to
// be a single JSON object followed by a newline; the encoder enforces that.
func serialize(record run.Record) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// prevent > and < from being escaped in the payload
	enc.SetEscapeHTML(false)
	if err := enc.Encode(record); err != nil {
		return nil, &SerializeError{FunctionName: record.FunctionName, Err: err}
	}
	return buf.Bytes(), nil
}
