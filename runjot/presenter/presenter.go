// This package contains the presenters used to print run records to STDOut
package presenter

import (
	"io"

	"github.com/runjot/runjot/runjot/presenter/json"
	"github.com/runjot/runjot/runjot/presenter/table"
	"github.com/runjot/runjot/runjot/run"
)

// Presenter is the main interface other Presenters need to implement
type Presenter interface {
	Present(io.Writer) error
}

// GetPresenter retrieves a Presenter that matches a CLI option
func GetPresenter(option Option, record run.Record) Presenter {
	switch option {
	case JSONPresenter:
		return json.NewPresenter(record)
	case TablePresenter:
		return table.NewPresenter(record)
	default:
		return nil
	}
}
