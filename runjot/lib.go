/*
Package runjot wraps plain Go functions so that every successful call appends one
JSON line describing the run (parameters, metrics and timing) to an append-only
log file.
*/
package runjot

import (
	"github.com/wagoodman/go-partybus"

	"github.com/runjot/runjot/internal/bus"
	"github.com/runjot/runjot/internal/log"
	"github.com/runjot/runjot/runjot/logger"
)

func SetLogger(logger logger.Logger) {
	log.Log = logger
}

func SetBus(b *partybus.Bus) {
	bus.SetPublisher(b)
}
