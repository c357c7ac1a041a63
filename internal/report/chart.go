package report

import (
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// NewConvergenceChart creates a line chart of the estimate over the number of
// samples, together with π and the 95% interval around the estimate.
func NewConvergenceChart(points []Point) *charts.Line {
	chart := charts.NewLine()
	chart.SetGlobalOptions(charts.WithInitializationOpts(opts.Initialization{
		Theme: types.ThemeChalk,
	}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: true,
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  true,
					Title: "Save",
				},
				DataZoom: &opts.ToolBoxFeatureDataZoom{
					Show: true,
				},
			},
		}),
		charts.WithLegendOpts(opts.Legend{Show: true}),
		charts.WithTitleOpts(opts.Title{
			Title: "Convergence of the π estimate",
		}))

	samples := make([]int, 0, len(points))
	estimate := make([]opts.LineData, 0, len(points))
	lower := make([]opts.LineData, 0, len(points))
	upper := make([]opts.LineData, 0, len(points))
	reference := make([]opts.LineData, 0, len(points))

	for _, point := range points {
		samples = append(samples, point.Generated)
		estimate = append(estimate, opts.LineData{Value: point.Estimate})
		lower = append(lower, opts.LineData{Value: point.Lower})
		upper = append(upper, opts.LineData{Value: point.Upper})
		reference = append(reference, opts.LineData{Value: math.Pi})
	}

	chart.SetXAxis(samples).
		AddSeries("Estimate", estimate).
		AddSeries("Lower 95%", lower).
		AddSeries("Upper 95%", upper).
		AddSeries("π", reference)

	return chart
}

// WriteChart renders the convergence chart as a standalone HTML page.
func WriteChart(w io.Writer, points []Point) error {
	return NewConvergenceChart(points).Render(w)
}

