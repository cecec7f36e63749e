package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// timestampLayouts are the accepted date_time formats, tried in order. The
// dataset ships with space-separated timestamps; the T-separated and
// minute-precision forms cover ISO exports of the same data.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04",
}

// columnIndex holds the position of each required column in the input header.
type columnIndex struct {
	dateTime int
	volume   int
	temp     int
	rain     int
	snow     int
	clouds   int
	main     int
	desc     int
}

// Load reads a dataset from path, dispatching on the file extension:
// .xlsx workbooks go through LoadXLSX, everything else is treated as CSV.
func Load(path string) (Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return LoadXLSX(path)
	}
	return LoadCSV(path)
}

// LoadCSV reads the dataset from a CSV file with a header row. Columns are
// located by name, so column order does not matter and extra columns are
// ignored. The load fails fast: a FileError if the file cannot be read, a
// SchemaError if required columns are absent, and a ParseError on the first
// malformed row. A header-only file loads as an empty table.
func LoadCSV(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Empty file: no header means no columns at all.
			return nil, &SchemaError{Path: path, Missing: append([]string(nil), RequiredColumns...)}
		}
		return nil, &FileError{Path: path, Err: err}
	}

	cols, missing := mapHeader(header)
	if len(missing) > 0 {
		return nil, &SchemaError{Path: path, Missing: missing}
	}

	var table Table
	for row := 1; ; row++ {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Row: row, Err: err}
		}
		obs, err := parseRow(path, cols, rec, row)
		if err != nil {
			return nil, err
		}
		table = append(table, obs)
	}
	return table, nil
}

// mapHeader resolves the required columns against the input header and
// reports any that are missing, in RequiredColumns order.
func mapHeader(header []string) (columnIndex, []string) {
	byName := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimPrefix(name, "\uFEFF") // spreadsheet exports love a BOM
		byName[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	lookup := func(name string) int {
		idx, ok := byName[name]
		if !ok {
			missing = append(missing, name)
			return -1
		}
		return idx
	}

	cols := columnIndex{
		dateTime: lookup("date_time"),
		volume:   lookup("traffic_volume"),
		temp:     lookup("temp"),
		rain:     lookup("rain_1h"),
		snow:     lookup("snow_1h"),
		clouds:   lookup("clouds_all"),
		main:     lookup("weather_main"),
		desc:     lookup("weather_description"),
	}
	return cols, missing
}

// parseRow converts one data record into an Observation, failing with a
// ParseError on the first malformed cell.
func parseRow(path string, cols columnIndex, rec []string, row int) (Observation, error) {
	cell := func(idx int) string {
		if idx < 0 || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	var obs Observation
	var err error

	obs.Timestamp, err = parseTimestamp(cell(cols.dateTime))
	if err != nil {
		return Observation{}, &ParseError{Path: path, Row: row, Column: "date_time", Value: cell(cols.dateTime), Err: err}
	}

	obs.TrafficVolume, err = strconv.Atoi(cell(cols.volume))
	if err != nil {
		return Observation{}, &ParseError{Path: path, Row: row, Column: "traffic_volume", Value: cell(cols.volume), Err: err}
	}

	floats := []struct {
		name string
		idx  int
		dst  *float64
	}{
		{"temp", cols.temp, &obs.Temp},
		{"rain_1h", cols.rain, &obs.Rain1H},
		{"snow_1h", cols.snow, &obs.Snow1H},
	}
	for _, fc := range floats {
		*fc.dst, err = strconv.ParseFloat(cell(fc.idx), 64)
		if err != nil {
			return Observation{}, &ParseError{Path: path, Row: row, Column: fc.name, Value: cell(fc.idx), Err: err}
		}
	}

	obs.CloudsAll, err = strconv.Atoi(cell(cols.clouds))
	if err != nil {
		return Observation{}, &ParseError{Path: path, Row: row, Column: "clouds_all", Value: cell(cols.clouds), Err: err}
	}

	obs.WeatherMain = cell(cols.main)
	obs.WeatherDescription = cell(cols.desc)
	return obs, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, errors.New("unrecognized timestamp format")
}
