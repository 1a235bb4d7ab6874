package common

import (
	"fmt"
	"os"

	"github.com/wagoodman/go-partybus"

	"github.com/runjot/runjot/runjot/event/parsers"
	"github.com/runjot/runjot/runjot/presenter"
)

func RunRecordedHandler(e partybus.Event, presenterOpt presenter.Option) error {
	// show the recorded run to stdout
	record, err := parsers.ParseRunRecorded(e)
	if err != nil {
		return fmt.Errorf("bad run recorded event: %w", err)
	}

	pres := presenter.GetPresenter(presenterOpt, *record)
	if pres == nil {
		return fmt.Errorf("no presenter for output option %q", presenterOpt)
	}

	if err := pres.Present(os.Stdout); err != nil {
		return fmt.Errorf("unable to show recorded run: %w", err)
	}
	return nil
}
