package charts

import (
	"errors"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// ScatterOptions configures one scatter plot.
type ScatterOptions struct {
	Title  string
	XLabel string
	YLabel string
	YRange *Range
}

// Scatter renders paired samples as dots, no connecting line.
func (r *Renderer) Scatter(slug string, xs, ys []float64, opts ScatterOptions) (string, error) {
	if len(xs) == 0 || len(xs) != len(ys) {
		return "", errors.New("scatter: need matching non-empty series")
	}

	px := xs
	py := ys
	if len(xs) == 1 {
		px = []float64{xs[0], xs[0] + 1}
		py = []float64{ys[0], ys[0]}
	}

	dataXLo, dataXHi := extent(px)
	dataYLo, dataYHi := extent(py)
	xLo, xHi := axisWindow(nil, dataXLo, dataXHi)
	yLo, yHi := axisWindow(opts.YRange, dataYLo, dataYHi)

	ch := chart.Chart{
		Title:      opts.Title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
		Width:      r.width,
		Height:     r.height,
		XAxis: chart.XAxis{
			Name:  opts.XLabel,
			Range: &chart.ContinuousRange{Min: xLo, Max: xHi},
		},
		YAxis: chart.YAxis{
			Name:  opts.YLabel,
			Range: &chart.ContinuousRange{Min: yLo, Max: yHi},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    3,
					DotColor:    chart.GetDefaultColor(0),
				},
				XValues: px,
				YValues: py,
			},
		},
	}

	return r.writePNG(slug, func(f *os.File) error {
		return ch.Render(chart.PNG, f)
	})
}
