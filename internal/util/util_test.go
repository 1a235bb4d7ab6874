package util

import (
	"reflect"
	"testing"
)

var truncateCases = []struct {
	input    string
	limit    int
	expected string
}{
	{
		input:    "short",
		limit:    10,
		expected: "short",
	},
	{
		input:    "exactly-10",
		limit:    10,
		expected: "exactly-10",
	},
	{
		input:    "a-much-longer-value",
		limit:    10,
		expected: "a-much-...",
	},
	{
		input:    "abcdef",
		limit:    3,
		expected: "abc",
	},
	{
		input:    "héllo wörld répeated",
		limit:    8,
		expected: "héllo...",
	},
}

func TestTruncateEllipsis(t *testing.T) {
	for _, testCase := range truncateCases {
		actual := TruncateEllipsis(testCase.input, testCase.limit)
		if actual != testCase.expected {
			t.Errorf("truncation failed:\nexpected: %s\n\nactual: %s", testCase.expected, actual)
		}
	}
}

var formatCases = []struct {
	input    map[string]interface{}
	expected string
}{
	{
		input:    map[string]interface{}{},
		expected: "",
	},
	{
		input:    map[string]interface{}{"epochs": 20},
		expected: "epochs=20",
	},
	{
		input:    map[string]interface{}{"lr": 0.01, "batch": 32, "optimizer": "adam"},
		expected: "batch=32 lr=0.01 optimizer=adam",
	},
}

func TestFormatKeyValues(t *testing.T) {
	for _, testCase := range formatCases {
		actual := FormatKeyValues(testCase.input)
		if actual != testCase.expected {
			t.Errorf("formatting failed:\nexpected: %s\n\nactual: %s", testCase.expected, actual)
		}
	}
}

var parseCases = []struct {
	input    []string
	expected map[string]interface{}
	wantErr  bool
}{
	{
		input:    []string{"lr=0.01", "epochs=20"},
		expected: map[string]interface{}{"lr": 0.01, "epochs": float64(20)},
		wantErr:  false,
	},
	{
		input:    []string{"optimizer=adam", "nesterov=true", "decay=null"},
		expected: map[string]interface{}{"optimizer": "adam", "nesterov": true, "decay": nil},
		wantErr:  false,
	},
	{
		input:    []string{`note="cold start"`},
		expected: map[string]interface{}{"note": "cold start"},
		wantErr:  false,
	},
	{
		input:    []string{"no-separator"},
		expected: map[string]interface{}{},
		wantErr:  true,
	},
	{
		input:    []string{"=value", "lr=0.01"},
		expected: map[string]interface{}{"lr": 0.01},
		wantErr:  true,
	},
}

func TestParseKeyValues(t *testing.T) {
	for _, testCase := range parseCases {
		actual, err := ParseKeyValues(testCase.input)
		if (err != nil) != testCase.wantErr {
			t.Errorf("ParseKeyValues(%v) error = %v, wantErr %v", testCase.input, err, testCase.wantErr)
		}
		if !reflect.DeepEqual(actual, testCase.expected) {
			t.Errorf("parsing failed:\nexpected: %v\n\nactual: %v", testCase.expected, actual)
		}
	}
}
