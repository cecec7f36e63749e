// Package report writes the textual analysis output: dataset overview,
// head/tail row listings, describe blocks, grouped-mean tables, and
// correlation summaries, plus the CSV exports and the run manifest.
package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/chrissnell/metrotraffic/internal/dataset"
	"github.com/chrissnell/metrotraffic/internal/stats"
)

// Report writes formatted analysis sections to a single output stream,
// normally standard output.
type Report struct {
	w io.Writer
}

// New returns a report writing to w.
func New(w io.Writer) *Report {
	return &Report{w: w}
}

// CorrelationLine is one labeled correlation result.
type CorrelationLine struct {
	Label string
	R     float64
}

func (r *Report) section(title string) {
	fmt.Fprintf(r.w, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
}

// Overview prints the dataset shape: source file, row count, column
// names, and the covered time span.
func (r *Report) Overview(path string, t dataset.Table) {
	r.section("Dataset Information")
	fmt.Fprintf(r.w, "  Source:  %s\n", path)
	fmt.Fprintf(r.w, "  Rows:    %d\n", len(t))
	fmt.Fprintf(r.w, "  Columns: %s\n", strings.Join(dataset.RequiredColumns, ", "))
	if len(t) > 0 {
		first := t[0].Timestamp
		last := t[0].Timestamp
		for _, o := range t[1:] {
			if o.Timestamp.Before(first) {
				first = o.Timestamp
			}
			if o.Timestamp.After(last) {
				last = o.Timestamp
			}
		}
		fmt.Fprintf(r.w, "  Span:    %s to %s\n",
			first.Format("2006-01-02 15:04:05"), last.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintln(r.w)
}

// HeadTail prints the first headN and last tailN rows as aligned tables.
func (r *Report) HeadTail(t dataset.Table, headN, tailN int) {
	r.section("Beginning and End of the Dataset")
	fmt.Fprintf(r.w, "First %d rows:\n", len(t.Head(headN)))
	r.rows(t.Head(headN))
	fmt.Fprintf(r.w, "\nLast %d rows:\n", len(t.Tail(tailN)))
	r.rows(t.Tail(tailN))
	fmt.Fprintln(r.w)
}

func (r *Report) rows(t dataset.Table) {
	fmt.Fprintf(r.w, "  %-19s | %14s | %6s | %7s | %7s | %10s | %-12s | %s\n",
		"date_time", "traffic_volume", "temp", "rain_1h", "snow_1h", "clouds_all", "weather_main", "weather_description")
	fmt.Fprintf(r.w, "  %s\n",
		"--------------------+----------------+--------+---------+---------+------------+--------------+--------------------")
	for _, o := range t {
		fmt.Fprintf(r.w, "  %-19s | %14d | %6.2f | %7.2f | %7.2f | %10d | %-12s | %s\n",
			o.Timestamp.Format("2006-01-02 15:04:05"), o.TrafficVolume, o.Temp,
			o.Rain1H, o.Snow1H, o.CloudsAll, o.WeatherMain, o.WeatherDescription)
	}
}

// Describe prints one descriptive-statistics block. An empty series is
// reported as such instead of a table of NaNs.
func (r *Report) Describe(title string, s stats.Summary) {
	r.section(title)
	fmt.Fprintf(r.w, "  %-6s %12d\n", "count", s.Count)
	if s.Count == 0 {
		fmt.Fprintf(r.w, "  (empty series)\n\n")
		return
	}
	for _, row := range []struct {
		name  string
		value float64
	}{
		{"mean", s.Mean},
		{"std", s.Std},
		{"min", s.Min},
		{"25%", s.Q25},
		{"50%", s.Median},
		{"75%", s.Q75},
		{"max", s.Max},
	} {
		fmt.Fprintf(r.w, "  %-6s %12s\n", row.name, fmtStat(row.value))
	}
	fmt.Fprintln(r.w)
}

// GroupMeansInt prints a grouped-mean table keyed by an integer. An
// optional keyLabel renders the key (day-of-week names and the like);
// nil prints the bare number.
func (r *Report) GroupMeansInt(title, keyHeader string, groups []stats.IntGroupMean, keyLabel func(int) string) {
	if keyLabel == nil {
		keyLabel = strconv.Itoa
	}
	r.section(title)
	if len(groups) == 0 {
		fmt.Fprintf(r.w, "  (no groups)\n\n")
		return
	}
	fmt.Fprintf(r.w, "  %-12s | %12s | %6s\n", keyHeader, "mean volume", "rows")
	fmt.Fprintf(r.w, "  %s\n", "-------------+--------------+-------")
	for _, g := range groups {
		fmt.Fprintf(r.w, "  %-12s | %12.2f | %6d\n", keyLabel(g.Key), g.Mean, g.Count)
	}
	fmt.Fprintln(r.w)
}

// GroupMeansString prints a grouped-mean table keyed by a category name.
func (r *Report) GroupMeansString(title, keyHeader string, groups []stats.StringGroupMean) {
	r.section(title)
	if len(groups) == 0 {
		fmt.Fprintf(r.w, "  (no groups)\n\n")
		return
	}
	width := len(keyHeader)
	for _, g := range groups {
		if len(g.Key) > width {
			width = len(g.Key)
		}
	}
	fmt.Fprintf(r.w, "  %-*s | %12s | %6s\n", width, keyHeader, "mean volume", "rows")
	fmt.Fprintf(r.w, "  %s+%s+%s\n",
		strings.Repeat("-", width+3), strings.Repeat("-", 14), strings.Repeat("-", 7))
	for _, g := range groups {
		fmt.Fprintf(r.w, "  %-*s | %12.2f | %6d\n", width, g.Key, g.Mean, g.Count)
	}
	fmt.Fprintln(r.w)
}

// Correlations prints labeled Pearson coefficients. NaN coefficients
// (zero variance or too few samples) print as n/a rather than a number.
func (r *Report) Correlations(title string, lines []CorrelationLine) {
	r.section(title)
	width := 0
	for _, l := range lines {
		if len(l.Label) > width {
			width = len(l.Label)
		}
	}
	for _, l := range lines {
		if math.IsNaN(l.R) {
			fmt.Fprintf(r.w, "  %-*s : n/a (zero variance or too few samples)\n", width, l.Label)
			continue
		}
		fmt.Fprintf(r.w, "  %-*s : %+.4f\n", width, l.Label, l.R)
	}
	fmt.Fprintln(r.w)
}

// Note prints a one-line notice inside the report flow, used for
// skipped charts on empty partitions.
func (r *Report) Note(format string, args ...interface{}) {
	fmt.Fprintf(r.w, "  note: "+format+"\n\n", args...)
}

func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}
