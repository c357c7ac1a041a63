package report

import (
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteSummary writes the final statistics and tick timings of a run as a table.
func WriteSummary(w io.Writer, result Result) {
	stats := result.Stats

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("Monte Carlo estimate of π")

	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"π estimate", fmt.Sprintf("%.6f", stats.PiEstimate)},
		{"absolute error", fmt.Sprintf("%.6f", stats.AbsoluteError)},
		{"standard error", fmt.Sprintf("%.6f", stats.StdError)},
		{"95% interval", fmt.Sprintf("%.6f .. %.6f", stats.Confidence95[0], stats.Confidence95[1])},
		{"π within interval", stats.Confidence95[0] <= math.Pi && math.Pi <= stats.Confidence95[1]},
	})

	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"samples", stats.Generated},
		{"inside", fmt.Sprintf("%d (%.2f%%)", stats.Inside, stats.InsidePercent)},
		{"target", stats.Target},
		{"progress", fmt.Sprintf("%.1f%%", 100*stats.Progress)},
		{"complete", stats.Complete},
		{"ticks", result.Ticks},
	})

	if advance, ok := result.Timings.ByName["advance"]; ok && advance.Count > 0 {
		t.AppendSeparator()
		t.AppendRows([]table.Row{
			{"tick avg", advance.MovingAverage.String()},
			{"tick max", advance.Max.String()},
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	t.Render()
}
