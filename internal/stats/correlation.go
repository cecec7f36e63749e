package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Pearson computes the Pearson correlation coefficient between two columns
// of equal length. It returns NaN when fewer than two pairs are available,
// when the lengths differ, or when either column has zero variance.
func Pearson(x, y []float64) float64 {
	if len(x) != len(y) || len(x) < 2 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}
