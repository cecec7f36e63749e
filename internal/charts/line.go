package charts

import (
	"errors"
	"math"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// LineOptions configures one line chart. Locked ranges pin the window so
// paired charts stay comparable; otherwise the window follows the data.
type LineOptions struct {
	Title  string
	XLabel string
	YLabel string
	XRange *Range
	YRange *Range
}

// Line renders ordered key/value pairs as a single connected line.
func (r *Renderer) Line(slug string, points []Point, opts LineOptions) (string, error) {
	if len(points) == 0 {
		return "", errors.New("line: empty series")
	}

	xs := make([]float64, 0, len(points)+1)
	ys := make([]float64, 0, len(points)+1)
	for _, p := range points {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
	}
	if len(points) == 1 {
		// The library cannot draw a zero-width x window.
		xs = append(xs, points[0].X+1)
		ys = append(ys, points[0].Y)
	}

	dataXLo, dataXHi := extent(xs)
	dataYLo, dataYHi := extent(ys)
	xLo, xHi := axisWindow(opts.XRange, dataXLo, dataXHi)
	yLo, yHi := axisWindow(opts.YRange, dataYLo, dataYHi)

	var ticks []chart.Tick
	if allIntegral(xs) {
		ticks = integerTicks(xLo, xHi)
	}

	ch := chart.Chart{
		Title:      opts.Title,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
		Width:      r.width,
		Height:     r.height,
		XAxis: chart.XAxis{
			Name:  opts.XLabel,
			Range: &chart.ContinuousRange{Min: xLo, Max: xHi},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name:  opts.YLabel,
			Range: &chart.ContinuousRange{Min: yLo, Max: yHi},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{XValues: xs, YValues: ys},
		},
	}

	return r.writePNG(slug, func(f *os.File) error {
		return ch.Render(chart.PNG, f)
	})
}

func allIntegral(xs []float64) bool {
	for _, v := range xs {
		if v != math.Trunc(v) {
			return false
		}
	}
	return true
}
