package reporter

import "fmt"

// SerializeError means the record could not be rendered as JSON: the run's params or
// metrics contain a value the encoder cannot handle.
type SerializeError struct {
	FunctionName string
	Err          error
}

func (e *SerializeError) Error() string {
	return fmt.Sprintf("unable to serialize run record for %q: %v", e.FunctionName, e.Err)
}

func (e *SerializeError) Unwrap() error {
	return e.Err
}

// WriteError means the log file could not be opened or appended to.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write run record to %q: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
