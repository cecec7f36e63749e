// Package stats computes descriptive statistics, grouped means, and
// correlations over dataset columns.
package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary holds the descriptive statistics for a single numeric column:
// count, mean, sample standard deviation, minimum, quartiles, and maximum.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe summarizes a column. An empty column yields Count 0 with every
// statistic set to NaN. A single-value column yields NaN for Std since the
// sample standard deviation is undefined for one observation.
func Describe(values []float64) Summary {
	if len(values) == 0 {
		nan := math.NaN()
		return Summary{Mean: nan, Std: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	return Summary{
		Count:  len(values),
		Mean:   stat.Mean(values, nil),
		Std:    stat.StdDev(values, nil),
		Min:    sorted[0],
		Q25:    stat.Quantile(0.25, stat.LinInterp, sorted, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, sorted, nil),
		Q75:    stat.Quantile(0.75, stat.LinInterp, sorted, nil),
		Max:    sorted[len(sorted)-1],
	}
}
