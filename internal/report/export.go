package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/chrissnell/metrotraffic/internal/stats"
)

// LabeledSummary pairs a describe block with the series it summarizes,
// for the combined describe export.
type LabeledSummary struct {
	Label   string
	Summary stats.Summary
}

// ExportGroupMeansInt writes an integer-keyed grouped-mean table as CSV.
func ExportGroupMeansInt(filename, keyHeader string, groups []stats.IntGroupMean) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{keyHeader, "mean_traffic_volume", "rows"}); err != nil {
		return err
	}
	for _, g := range groups {
		record := []string{
			strconv.Itoa(g.Key),
			fmt.Sprintf("%.2f", g.Mean),
			strconv.Itoa(g.Count),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

// ExportGroupMeansString writes a category-keyed grouped-mean table as CSV.
func ExportGroupMeansString(filename, keyHeader string, groups []stats.StringGroupMean) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{keyHeader, "mean_traffic_volume", "rows"}); err != nil {
		return err
	}
	for _, g := range groups {
		record := []string{
			g.Key,
			fmt.Sprintf("%.2f", g.Mean),
			strconv.Itoa(g.Count),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

// ExportDescribes writes one row per summarized series.
func ExportDescribes(filename string, blocks []LabeledSummary) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"series", "count", "mean", "std", "min", "q25", "median", "q75", "max"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, b := range blocks {
		s := b.Summary
		record := []string{
			b.Label,
			strconv.Itoa(s.Count),
			fmt.Sprintf("%.4f", s.Mean),
			fmt.Sprintf("%.4f", s.Std),
			fmt.Sprintf("%.4f", s.Min),
			fmt.Sprintf("%.4f", s.Q25),
			fmt.Sprintf("%.4f", s.Median),
			fmt.Sprintf("%.4f", s.Q75),
			fmt.Sprintf("%.4f", s.Max),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}

// ExportCorrelations writes labeled Pearson coefficients as CSV. NaN
// values are written literally so spreadsheets show them as text.
func ExportCorrelations(filename string, lines []CorrelationLine) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"pair", "pearson_r"}); err != nil {
		return err
	}
	for _, l := range lines {
		record := []string{l.Label, fmt.Sprintf("%.6f", l.R)}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return writer.Error()
}
