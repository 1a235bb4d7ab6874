package logger

// Logger is the interface the library logs through. A no-op implementation is used
// until a real one is supplied (see runjot.SetLogger); the CLI wires up the logrus
// implementation from internal/logger.
type Logger interface {
	Errorf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Info(args ...interface{})
	Debugf(format string, args ...interface{})
	Debug(args ...interface{})
}
