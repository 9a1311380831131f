package dataset

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Plot renders the entry's target as a line chart.
func (e *Entry) Plot() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1600px", Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{Title: e.String()}),
	)

	x := make([]int, len(e.Target))
	y := make([]opts.LineData, len(e.Target))
	for i, v := range e.Target {
		x[i] = i
		y[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(x).AddSeries("target", y,
		charts.WithLineStyleOpts(opts.LineStyle{Color: "blue"}))

	return line
}
