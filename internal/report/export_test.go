package report

import (
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/chrissnell/metrotraffic/internal/stats"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening export: %v", err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	return records
}

func TestExportGroupMeansInt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "monthly.csv")
	groups := []stats.IntGroupMean{
		{Key: 1, Mean: 3402.91, Count: 2829},
		{Key: 2, Mean: 3503.55, Count: 2601},
	}

	if err := ExportGroupMeansInt(path, "month", groups); err != nil {
		t.Fatalf("ExportGroupMeansInt: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	wantHeader := []string{"month", "mean_traffic_volume", "rows"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Errorf("header[%d]: expected %q, got %q", i, h, records[0][i])
		}
	}
	if records[1][0] != "1" || records[1][1] != "3402.91" || records[1][2] != "2829" {
		t.Errorf("unexpected first row: %v", records[1])
	}
}

func TestExportGroupMeansString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.csv")
	groups := []stats.StringGroupMean{
		{Key: "Clear", Mean: 4778.4, Count: 3000},
	}

	if err := ExportGroupMeansString(path, "weather_main", groups); err != nil {
		t.Fatalf("ExportGroupMeansString: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}
	if records[1][0] != "Clear" || records[1][1] != "4778.40" {
		t.Errorf("unexpected row: %v", records[1])
	}
}

func TestExportDescribes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "describe.csv")
	blocks := []LabeledSummary{
		{Label: "all", Summary: stats.Summary{Count: 10, Mean: 5.5, Std: 3.0277, Min: 1, Q25: 2.5, Median: 5, Q75: 7.5, Max: 10}},
		{Label: "day", Summary: stats.Summary{Count: 4, Mean: 2.5, Std: 1.291, Min: 1, Q25: 1, Median: 2, Q75: 3, Max: 4}},
	}

	if err := ExportDescribes(path, blocks); err != nil {
		t.Fatalf("ExportDescribes: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "series" || records[0][8] != "max" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[1][0] != "all" || records[1][1] != "10" || records[1][2] != "5.5000" {
		t.Errorf("unexpected first row: %v", records[1])
	}
}

func TestExportCorrelations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "correlations.csv")
	lines := []CorrelationLine{
		{Label: "volume vs temp", R: 0.135301},
		{Label: "volume vs snow", R: math.NaN()},
	}

	if err := ExportCorrelations(path, lines); err != nil {
		t.Fatalf("ExportCorrelations: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[1][1] != "0.135301" {
		t.Errorf("unexpected coefficient: %v", records[1])
	}
	if records[2][1] != "NaN" {
		t.Errorf("expected literal NaN, got %v", records[2])
	}
}

func TestWriteManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	m := Manifest{
		RunID:       "0f8fad5b-d9cb-469f-a165-70867728950e",
		Version:     "1.0",
		GeneratedAt: time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC),
		DataFile:    "traffic.csv",
		Rows:        48204,
		DayRows:     23877,
		NightRows:   24327,
		Charts:      []string{"01_volume_hist.png"},
	}

	if err := WriteManifest(path, m); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading manifest: %v", err)
	}
	var got Manifest
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshaling manifest: %v", err)
	}
	if got.RunID != m.RunID || got.Rows != m.Rows || len(got.Charts) != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.DayRows+got.NightRows != got.Rows {
		t.Errorf("partition counts do not sum: %d + %d != %d", got.DayRows, got.NightRows, got.Rows)
	}
}
