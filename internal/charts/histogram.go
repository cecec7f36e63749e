package charts

import (
	"errors"
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

const defaultBins = 10

// HistogramOptions configures one histogram. A locked XRange fixes the
// bin domain so paired histograms share bin edges; a locked YRange fixes
// the frequency axis. The bin labels carry the value axis, so there is
// no separate x-axis caption.
type HistogramOptions struct {
	Title  string
	YLabel string
	Bins   int
	XRange *Range
	YRange *Range
}

type bin struct {
	lo    float64
	hi    float64
	count int
}

// Histogram renders the binned frequency distribution of values as a bar
// chart. Bins are equal-width over the data extent (or the locked
// XRange); values outside a locked domain are clamped into the edge
// bins so every sample is counted.
func (r *Renderer) Histogram(slug string, values []float64, opts HistogramOptions) (string, error) {
	if len(values) == 0 {
		return "", errors.New("histogram: empty series")
	}

	bins := histogramBins(values, opts.Bins, opts.XRange)
	bars := make([]chart.Value, 0, len(bins))
	for _, b := range bins {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%.0f-%.0f", b.lo, b.hi),
			Value: float64(b.count),
		})
	}

	yAxis := chart.YAxis{Name: opts.YLabel}
	if opts.YRange != nil {
		yAxis.Range = &chart.ContinuousRange{Min: opts.YRange.Min, Max: opts.YRange.Max}
	}

	barWidth := (r.width-150)/len(bins) - 12
	if barWidth < 12 {
		barWidth = 12
	}

	ch := chart.BarChart{
		Title:        opts.Title,
		Background:   chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 28}},
		Width:        r.width,
		Height:       r.height,
		BarWidth:     barWidth,
		BarSpacing:   12,
		XAxis:        chart.Shown(),
		YAxis:        yAxis,
		UseBaseValue: true,
		BaseValue:    0,
		Bars:         bars,
	}

	return r.writePNG(slug, func(f *os.File) error {
		return ch.Render(chart.PNG, f)
	})
}

// histogramBins splits values into count equal-width bins over the data
// extent, or over domain when locked. The final bin is closed on both
// sides, and out-of-domain values land in the nearest edge bin, so bin
// counts always sum to len(values). A zero-width extent collapses to a
// single bin.
func histogramBins(values []float64, count int, domain *Range) []bin {
	if count <= 0 {
		count = defaultBins
	}

	dataLo, dataHi := extent(values)
	lo, hi := dataLo, dataHi
	if domain != nil {
		lo, hi = domain.Min, domain.Max
	}
	if lo >= hi {
		return []bin{{lo: lo, hi: hi, count: len(values)}}
	}

	width := (hi - lo) / float64(count)
	bins := make([]bin, count)
	for i := range bins {
		bins[i].lo = lo + float64(i)*width
		bins[i].hi = lo + float64(i+1)*width
	}
	bins[count-1].hi = hi

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx < 0 {
			idx = 0
		}
		if idx >= count {
			idx = count - 1
		}
		bins[idx].count++
	}
	return bins
}
