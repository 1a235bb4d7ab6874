package table

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/runjot/runjot/internal/util"
	"github.com/runjot/runjot/runjot/run"
)

const maxCellWidth = 48

// Presenter is a generic struct for holding fields needed for reporting
type Presenter struct {
	record run.Record
}

// NewPresenter is a *Presenter constructor
func NewPresenter(record run.Record) *Presenter {
	return &Presenter{
		record: record,
	}
}

// Present creates a table-based reporting
func (pres *Presenter) Present(output io.Writer) error {
	columns := []string{"Function", "Started", "Runtime (s)", "Params", "Metrics"}
	row := []string{
		pres.record.FunctionName,
		pres.record.Timestamp.Format(time.RFC3339),
		fmt.Sprintf("%.4f", pres.record.RuntimeSeconds.Seconds()),
		util.TruncateEllipsis(util.FormatKeyValues(pres.record.Params), maxCellWidth),
		util.TruncateEllipsis(renderMetrics(pres.record.Metrics), maxCellWidth),
	}
	if pres.record.RunID != "" {
		columns = append(columns, "Run ID")
		row = append(row, pres.record.RunID)
	}

	table := tablewriter.NewWriter(output)

	table.SetHeader(columns)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetAutoFormatHeaders(true)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	table.Append(row)
	table.Render()

	return nil
}

func renderMetrics(metrics interface{}) string {
	if m, ok := metrics.(map[string]interface{}); ok {
		return util.FormatKeyValues(m)
	}
	return fmt.Sprintf("%v", metrics)
}
