package charts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func newTestRenderer(t *testing.T) (*Renderer, string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "charts")
	r, err := NewRenderer(dir, 640, 480)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r, dir
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading chart: %v", err)
	}
	if len(data) < len(pngMagic) || !bytes.Equal(data[:len(pngMagic)], pngMagic) {
		t.Errorf("%s is not a PNG file", path)
	}
}

func TestHistogramBins(t *testing.T) {
	tests := []struct {
		name      string
		values    []float64
		count     int
		domain    *Range
		wantBins  int
		wantFirst int
		wantLast  int
	}{
		{
			name:      "uniform spread",
			values:    []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
			count:     10,
			wantBins:  10,
			wantFirst: 1,
			wantLast:  1,
		},
		{
			name:      "default bin count",
			values:    []float64{0, 10},
			count:     0,
			wantBins:  10,
			wantFirst: 1,
			wantLast:  1,
		},
		{
			name:      "constant series collapses to one bin",
			values:    []float64{5, 5, 5},
			count:     10,
			wantBins:  1,
			wantFirst: 3,
			wantLast:  3,
		},
		{
			name:      "locked domain clamps outliers",
			values:    []float64{-10, 50, 150},
			count:     10,
			domain:    &Range{Min: 0, Max: 100},
			wantBins:  10,
			wantFirst: 1,
			wantLast:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bins := histogramBins(tt.values, tt.count, tt.domain)

			if len(bins) != tt.wantBins {
				t.Fatalf("expected %d bins, got %d", tt.wantBins, len(bins))
			}
			total := 0
			for _, b := range bins {
				total += b.count
			}
			if total != len(tt.values) {
				t.Errorf("bin counts sum to %d, expected %d", total, len(tt.values))
			}
			if bins[0].count != tt.wantFirst {
				t.Errorf("first bin: expected %d, got %d", tt.wantFirst, bins[0].count)
			}
			if bins[len(bins)-1].count != tt.wantLast {
				t.Errorf("last bin: expected %d, got %d", tt.wantLast, bins[len(bins)-1].count)
			}
		})
	}
}

func TestHistogramBinsMaxValueCounted(t *testing.T) {
	// The maximum lands in the final bin, not past it.
	bins := histogramBins([]float64{0, 5, 10}, 5, nil)
	if len(bins) != 5 {
		t.Fatalf("expected 5 bins, got %d", len(bins))
	}
	if bins[4].count != 1 {
		t.Errorf("expected max value in last bin, got count %d", bins[4].count)
	}
}

func TestHistogramRender(t *testing.T) {
	r, _ := newTestRenderer(t)

	path, err := r.Histogram("volume_hist", []float64{100, 400, 400, 900, 1200, 1200, 1200, 3000}, HistogramOptions{
		Title:  "Traffic Volume Histogram",
		YLabel: "Frequency",
	})
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	assertPNG(t, path)
	if filepath.Base(path) != "01_volume_hist.png" {
		t.Errorf("unexpected file name %s", filepath.Base(path))
	}
}

func TestHistogramLockedRanges(t *testing.T) {
	r, _ := newTestRenderer(t)

	path, err := r.Histogram("day_hist", []float64{500, 2500, 4500, 6500}, HistogramOptions{
		Title:  "Traffic from 7am to 7pm",
		YLabel: "Frequency of Vehicles",
		XRange: &Range{Min: -50, Max: 8000},
		YRange: &Range{Min: 0, Max: 8000},
	})
	if err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	assertPNG(t, path)
}

func TestHistogramEmpty(t *testing.T) {
	r, _ := newTestRenderer(t)
	if _, err := r.Histogram("empty", nil, HistogramOptions{}); err == nil {
		t.Fatal("expected error for empty series")
	}
}

func TestLineRender(t *testing.T) {
	r, _ := newTestRenderer(t)

	points := []Point{{1, 3300}, {2, 3500}, {3, 4100}, {4, 4500}, {5, 4700}, {6, 4600}}
	path, err := r.Line("monthly", points, LineOptions{
		Title:  "Traffic Volume per Month",
		XLabel: "Month of the Year",
		YLabel: "Volume of Traffic",
	})
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	assertPNG(t, path)
}

func TestLineLockedRanges(t *testing.T) {
	r, _ := newTestRenderer(t)

	points := []Point{{7, 5800}, {8, 6000}, {12, 4400}, {16, 6100}, {18, 5200}}
	path, err := r.Line("weekday_hours", points, LineOptions{
		Title:  "Average Traffic Volume during Business Days",
		XLabel: "Time of Day",
		YLabel: "Traffic Volume",
		XRange: &Range{Min: 6, Max: 19},
		YRange: &Range{Min: 1500, Max: 6500},
	})
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	assertPNG(t, path)
}

func TestLineSinglePoint(t *testing.T) {
	r, _ := newTestRenderer(t)

	path, err := r.Line("single", []Point{{7, 4200}}, LineOptions{Title: "One Group"})
	if err != nil {
		t.Fatalf("Line with one point: %v", err)
	}
	assertPNG(t, path)
}

func TestLineEmpty(t *testing.T) {
	r, _ := newTestRenderer(t)
	if _, err := r.Line("empty", nil, LineOptions{}); err == nil {
		t.Fatal("expected error for empty series")
	}
}

func TestScatterRender(t *testing.T) {
	r, _ := newTestRenderer(t)

	xs := []float64{400, 1200, 3000, 4500, 6000}
	ys := []float64{265, 270, 281, 288, 295}
	path, err := r.Scatter("temp_vs_volume", xs, ys, ScatterOptions{
		Title:  "Temperature vs. Volume",
		XLabel: "Volume of Traffic",
		YLabel: "Temperature",
		YRange: &Range{Min: 200, Max: 325},
	})
	if err != nil {
		t.Fatalf("Scatter: %v", err)
	}
	assertPNG(t, path)
}

func TestScatterMismatch(t *testing.T) {
	r, _ := newTestRenderer(t)
	if _, err := r.Scatter("bad", []float64{1, 2}, []float64{1}, ScatterOptions{}); err == nil {
		t.Fatal("expected error for mismatched series")
	}
	if _, err := r.Scatter("empty", nil, nil, ScatterOptions{}); err == nil {
		t.Fatal("expected error for empty series")
	}
}

func TestBarHRender(t *testing.T) {
	r, _ := newTestRenderer(t)

	categories := []CategoryValue{
		{Label: "Clear", Value: 4700},
		{Label: "Clouds", Value: 4500},
		{Label: "Rain", Value: 4400},
		{Label: "Snow", Value: 4300},
		{Label: "Thunderstorm", Value: 4100},
	}
	path, err := r.BarH("weather_main", categories, BarHOptions{
		Title: "Impact of Weather Type on Traffic Volume",
	})
	if err != nil {
		t.Fatalf("BarH: %v", err)
	}
	assertPNG(t, path)
}

func TestBarHEmpty(t *testing.T) {
	r, _ := newTestRenderer(t)
	if _, err := r.BarH("empty", nil, BarHOptions{}); err == nil {
		t.Fatal("expected error for empty categories")
	}
}

func TestRendererSequencing(t *testing.T) {
	r, dir := newTestRenderer(t)

	if _, err := r.Histogram("first", []float64{1, 2, 3}, HistogramOptions{Title: "First"}); err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	if _, err := r.Line("second", []Point{{1, 1}, {2, 2}}, LineOptions{Title: "Second"}); err != nil {
		t.Fatalf("Line: %v", err)
	}

	files := r.Files()
	want := []string{"01_first.png", "02_second.png"}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %v", len(want), files)
	}
	for i, name := range want {
		if files[i] != name {
			t.Errorf("file %d: expected %s, got %s", i, name, files[i])
		}
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing chart file %s: %v", name, err)
		}
	}
}
