// Package dataset loads hourly traffic-volume and weather observations into
// an in-memory table and provides the time-derivation and partitioning steps
// of the analysis pipeline.
package dataset

import "time"

// Observation is a single hourly record from the traffic dataset: the
// westbound traffic count plus the weather conditions reported for that hour.
// Temp is in Kelvin, Rain1H and Snow1H in millimeters, CloudsAll in percent.
type Observation struct {
	Timestamp          time.Time
	TrafficVolume      int
	Temp               float64
	Rain1H             float64
	Snow1H             float64
	CloudsAll          int
	WeatherMain        string
	WeatherDescription string

	// Derived from Timestamp by DeriveTime. Zero until derived.
	Hour      int // 0-23
	DayOfWeek int // 0=Monday .. 6=Sunday
	Month     int // 1-12
	Year      int
}

// Table is an ordered collection of observations. Loading produces one Table;
// derivation and partitioning return fresh tables and never mutate their
// input.
type Table []Observation

// RequiredColumns is the canonical set of dataset columns the loader must
// find in the input header. Column order in the file does not matter and
// extra columns are ignored.
var RequiredColumns = []string{
	"date_time",
	"traffic_volume",
	"temp",
	"rain_1h",
	"snow_1h",
	"clouds_all",
	"weather_main",
	"weather_description",
}

// Head returns the first n rows (fewer if the table is shorter).
func (t Table) Head(n int) Table {
	if n > len(t) {
		n = len(t)
	}
	return append(Table(nil), t[:n]...)
}

// Tail returns the last n rows (fewer if the table is shorter).
func (t Table) Tail(n int) Table {
	if n > len(t) {
		n = len(t)
	}
	return append(Table(nil), t[len(t)-n:]...)
}

// Column extracts one numeric column as a float series, in row order.
func (t Table) Column(sel func(Observation) float64) []float64 {
	out := make([]float64, len(t))
	for i, o := range t {
		out[i] = sel(o)
	}
	return out
}

// Selectors for the numeric columns used by the analysis steps.
func Volume(o Observation) float64 { return float64(o.TrafficVolume) }
func Temp(o Observation) float64   { return o.Temp }
func Rain1H(o Observation) float64 { return o.Rain1H }
func Snow1H(o Observation) float64 { return o.Snow1H }
func Clouds(o Observation) float64 { return float64(o.CloudsAll) }
