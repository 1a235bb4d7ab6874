package reporter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/runjot/runjot/runjot/run"
)

var testStart = time.Date(2024, time.April, 10, 12, 14, 16, 0, time.UTC)

func testRecord(metrics interface{}) run.Record {
	return run.NewRecord("model", map[string]interface{}{"x": 10}, metrics, testStart, 123456*time.Microsecond)
}

func TestAppendCreatesTheLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "runs.jsonl")

	err := Append(testRecord(map[string]interface{}{"y": 20}), logFile)
	assert.NoError(t, err)

	content, err := os.ReadFile(logFile)
	assert.NoError(t, err)
	assert.Equal(t,
		`{"timestamp":"2024-04-10T12:14:16Z","runtime_seconds":0.1235,"params":{"x":10},"metrics":{"y":20},"function_name":"model"}`+"\n",
		string(content))
}

func TestAppendOnlyAppends(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "runs.jsonl")

	for i := 0; i < 3; i++ {
		err := Append(testRecord(map[string]interface{}{"run": i}), logFile)
		assert.NoError(t, err)
	}

	content, err := os.ReadFile(logFile)
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"metrics":{"run":0}`)
	assert.Contains(t, lines[1], `"metrics":{"run":1}`)
	assert.Contains(t, lines[2], `"metrics":{"run":2}`)
}

func TestAppendDoesNotEscapeHTML(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "runs.jsonl")

	err := Append(testRecord(map[string]interface{}{"query": "a<b && b>c"}), logFile)
	assert.NoError(t, err)

	content, err := os.ReadFile(logFile)
	assert.NoError(t, err)
	assert.Contains(t, string(content), `"query":"a<b && b>c"`)
}

func TestAppendNonSerializableWritesNothing(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "runs.jsonl")

	err := Append(testRecord(map[string]interface{}{"ch": make(chan int)}), logFile)

	var serializeErr *SerializeError
	assert.True(t, errors.As(err, &serializeErr), "expected a *SerializeError, got %v", err)
	assert.Equal(t, "model", serializeErr.FunctionName)

	_, statErr := os.Stat(logFile)
	assert.True(t, os.IsNotExist(statErr), "log file should not have been created")
}

func TestAppendWriteFailure(t *testing.T) {
	// a directory cannot be opened for appending
	logFile := t.TempDir()

	err := Append(testRecord(nil), logFile)

	var writeErr *WriteError
	assert.True(t, errors.As(err, &writeErr), "expected a *WriteError, got %v", err)
	assert.Equal(t, logFile, writeErr.Path)
	assert.NotNil(t, writeErr.Unwrap())
}
