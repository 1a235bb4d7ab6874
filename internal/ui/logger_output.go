package ui

import (
	"github.com/wagoodman/go-partybus"

	"github.com/runjot/runjot/internal/config"
	"github.com/runjot/runjot/internal/log"
	"github.com/runjot/runjot/internal/ui/common"
	runjotEvent "github.com/runjot/runjot/runjot/event"
)

// LoggerUI shows the recorded run on stdout once it lands and forwards worker
// failures. It returns after both the worker and the event stream are done.
func LoggerUI(workerErrs <-chan error, subscription *partybus.Subscription, appConfig *config.Application) error {
	events := subscription.Events()
	for {
		select {
		case err, ok := <-workerErrs:
			if err != nil {
				return err
			}
			if !ok {
				workerErrs = nil
			}
		case e, ok := <-events:
			if !ok {
				events = nil
			}

			// ignore all events except for the final event
			if e.Type == runjotEvent.RunRecorded {
				err := common.RunRecordedHandler(e, appConfig.PresenterOpt)
				if err != nil {
					log.Errorf("unable to show %s event: %+v", e.Type, err)
				}

				// this is the last expected event
				events = nil
			}
		}
		if events == nil && workerErrs == nil {
			break
		}
	}

	return nil
}
