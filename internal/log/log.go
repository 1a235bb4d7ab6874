/*
Package log holds the logger singleton used across the application. It defaults to a
no-op implementation so the library stays silent until a consumer provides a logger.
*/
package log

import (
	"github.com/runjot/runjot/runjot/logger"
)

// Log is the logger all packages write to
var Log logger.Logger = &nopLogger{}

func Errorf(format string, args ...interface{}) {
	Log.Errorf(format, args...)
}

func Warnf(format string, args ...interface{}) {
	Log.Warnf(format, args...)
}

func Infof(format string, args ...interface{}) {
	Log.Infof(format, args...)
}

func Info(args ...interface{}) {
	Log.Info(args...)
}

func Debugf(format string, args ...interface{}) {
	Log.Debugf(format, args...)
}

func Debug(args ...interface{}) {
	Log.Debug(args...)
}
