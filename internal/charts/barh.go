package charts

import (
	"errors"
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// BarHOptions configures one horizontal bar chart.
type BarHOptions struct {
	Title string
}

// BarH renders one horizontal bar per category, bar length proportional
// to its value on a scale shared by all bars. Values must be
// non-negative. The chart grows taller as categories are added so long
// category lists stay readable.
//
// The library's stacked bar chart normalizes each bar to full width, so
// every bar carries an invisible filler section padding it out to the
// shared scale; the visible section is the value.
func (r *Renderer) BarH(slug string, categories []CategoryValue, opts BarHOptions) (string, error) {
	if len(categories) == 0 {
		return "", errors.New("barh: empty categories")
	}

	scale := 0.0
	for _, c := range categories {
		if c.Value > scale {
			scale = c.Value
		}
	}
	scale *= 1.05
	if scale <= 0 {
		scale = 1
	}

	height := 180 + len(categories)*28
	if height < r.height {
		height = r.height
	}
	thickness := (height-180)/len(categories) - 12
	if thickness < 10 {
		thickness = 10
	}
	if thickness > 24 {
		thickness = 24
	}

	hidden := chart.Style{
		FillColor:   chart.ColorTransparent,
		StrokeColor: chart.ColorTransparent,
		FontColor:   chart.ColorTransparent,
	}

	bars := make([]chart.StackedBar, 0, len(categories))
	for _, c := range categories {
		bars = append(bars, chart.StackedBar{
			Name:  c.Label,
			Width: thickness,
			Values: []chart.Value{
				{Value: c.Value, Label: fmt.Sprintf("%.0f", c.Value)},
				{Value: scale - c.Value, Style: hidden},
			},
		})
	}

	ch := chart.StackedBarChart{
		Title:        opts.Title,
		TitleStyle:   chart.Shown(),
		Background:   chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 20}},
		Width:        r.width,
		Height:       height,
		XAxis:        chart.Shown(),
		YAxis:        chart.Shown(),
		BarSpacing:   12,
		IsHorizontal: true,
		Bars:         bars,
	}

	return r.writePNG(slug, func(f *os.File) error {
		return ch.Render(chart.PNG, f)
	})
}
