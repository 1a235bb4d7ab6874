package tracker

import (
	"time"

	"github.com/runjot/runjot/internal/log"
)

// TrackFunctionTime logs, at debug level, how long an operation took.
//
// It takes the time the operation started and a message describing it, and is
// intended to be deferred at the top of the function being tracked:
//
//	func someFunction() {
//		defer TrackFunctionTime(time.Now(), "someFunction")
//		// do stuff
//	}
func TrackFunctionTime(start time.Time, msg string) {
	elapsed := time.Since(start)
	log.Debugf("%s took %s", msg, elapsed)
}
