// Package charts renders the analysis chart files. It is a thin
// presentation layer over go-chart: callers hand it prepared series and
// it writes numbered PNG files into the output directory, in call order.
package charts

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
)

// Range locks an axis to a fixed window so that related charts stay
// visually comparable.
type Range struct {
	Min float64
	Max float64
}

// Point is one x/y pair on a line chart.
type Point struct {
	X float64
	Y float64
}

// CategoryValue is one labeled bar on a horizontal bar chart.
type CategoryValue struct {
	Label string
	Value float64
}

// Renderer writes chart PNGs into a single output directory, numbering
// file names in the order they are rendered.
type Renderer struct {
	dir    string
	width  int
	height int
	seq    int
	files  []string
}

// NewRenderer creates the output directory if needed and returns a
// renderer that writes into it at the given pixel dimensions.
func NewRenderer(dir string, width, height int) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating chart directory %s: %w", dir, err)
	}
	return &Renderer{dir: dir, width: width, height: height}, nil
}

// Files returns the names of every chart written so far, in render order.
func (r *Renderer) Files() []string {
	out := make([]string, len(r.files))
	copy(out, r.files)
	return out
}

// writePNG renders into a sequence-numbered file and records the name.
func (r *Renderer) writePNG(slug string, render func(f *os.File) error) (string, error) {
	r.seq++
	name := fmt.Sprintf("%02d_%s.png", r.seq, slug)
	path := filepath.Join(r.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating chart file %s: %w", path, err)
	}
	if err := render(f); err != nil {
		f.Close()
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("writing chart file %s: %w", path, err)
	}

	r.files = append(r.files, name)
	return path, nil
}

// integerTicks builds one tick per integer in [lo,hi]. Returns nil when
// the span is too wide for per-integer labels, letting the library pick.
func integerTicks(lo, hi float64) []chart.Tick {
	start := math.Ceil(lo)
	end := math.Floor(hi)
	if end < start || end-start > 31 {
		return nil
	}
	ticks := make([]chart.Tick, 0, int(end-start)+1)
	for v := start; v <= end; v++ {
		ticks = append(ticks, chart.Tick{Value: v, Label: strconv.Itoa(int(v))})
	}
	return ticks
}

// axisWindow resolves the drawn window for one axis: the locked range if
// given, otherwise the data extent widened when degenerate so the
// library never sees a zero-width window.
func axisWindow(locked *Range, dataMin, dataMax float64) (float64, float64) {
	if locked != nil {
		return locked.Min, locked.Max
	}
	if dataMin == dataMax {
		return dataMin - 1, dataMax + 1
	}
	return dataMin, dataMax
}

func extent(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
