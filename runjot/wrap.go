package runjot

import (
	"context"
	"reflect"
	"runtime"
	"strings"
	"time"

	"github.com/runjot/runjot/internal/log"
)

// RunOption adjusts how a wrapped function reports its runs.
type RunOption func(*runConfig)

type runConfig struct {
	name string
}

// WithName records runs under the given name instead of the one recovered from
// runtime metadata. Anonymous functions in particular benefit from an explicit name.
func WithName(name string) RunOption {
	return func(c *runConfig) {
		c.name = name
	}
}

// Wrap returns a function that behaves exactly like fn and additionally appends one
// record to r's run log for every successful call. A failed call returns its error
// untouched and leaves the log alone. A call that succeeds but cannot be logged
// still returns its metrics; the logging failure is only warned about.
func Wrap[P, M any](r *Recorder, fn func(P) (M, error), options ...RunOption) func(P) (M, error) {
	name := resolveName(fn, options)
	return func(params P) (M, error) {
		start := r.clock()
		metrics, err := fn(params)
		if err != nil {
			return metrics, err
		}
		r.recordRun(name, params, metrics, start)
		return metrics, nil
	}
}

// Wrap0 is Wrap for functions that take no parameters. Records carry an empty
// params object.
func Wrap0[M any](r *Recorder, fn func() (M, error), options ...RunOption) func() (M, error) {
	name := resolveName(fn, options)
	return func() (M, error) {
		start := r.clock()
		metrics, err := fn()
		if err != nil {
			return metrics, err
		}
		r.recordRun(name, nil, metrics, start)
		return metrics, nil
	}
}

// WrapContext is Wrap for context-aware functions. The context is passed through to
// fn and never stored in the record.
func WrapContext[P, M any](r *Recorder, fn func(context.Context, P) (M, error), options ...RunOption) func(context.Context, P) (M, error) {
	name := resolveName(fn, options)
	return func(ctx context.Context, params P) (M, error) {
		start := r.clock()
		metrics, err := fn(ctx, params)
		if err != nil {
			return metrics, err
		}
		r.recordRun(name, params, metrics, start)
		return metrics, nil
	}
}

func (r *Recorder) recordRun(name string, params interface{}, metrics interface{}, start time.Time) {
	elapsed := r.clock().Sub(start)
	if _, err := r.Record(name, params, metrics, start, elapsed); err != nil {
		log.Warnf("run of %q completed but was not logged: %v", name, err)
	}
}

func resolveName(fn interface{}, options []RunOption) string {
	config := runConfig{}
	for _, option := range options {
		option(&config)
	}
	if config.name != "" {
		return config.name
	}
	return functionName(fn)
}

// functionName recovers a short name for fn from runtime metadata: the package path
// and any "-fm" method-value suffix are dropped, so a function known to the runtime
// as "github.com/acme/trainer.TrainModel" is recorded as "TrainModel".
func functionName(fn interface{}) string {
	rf := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if rf == nil {
		return "unknown"
	}

	name := strings.TrimSuffix(rf.Name(), "-fm")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "unknown"
	}
	return name
}
