package stats

import (
	"sort"

	"github.com/chrissnell/metrotraffic/internal/dataset"
)

// IntGroupMean is the mean of one column across all rows sharing an
// integer key such as an hour, month, or day-of-week index.
type IntGroupMean struct {
	Key   int
	Mean  float64
	Count int
}

// StringGroupMean is the mean of one column across all rows sharing a
// categorical key such as a weather condition.
type StringGroupMean struct {
	Key   string
	Mean  float64
	Count int
}

// GroupMeanByInt averages the selected column per integer key and returns
// the groups in ascending key order. Rows are never dropped: every row in
// the table contributes to exactly one group.
func GroupMeanByInt(t dataset.Table, key func(dataset.Observation) int, value func(dataset.Observation) float64) []IntGroupMean {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, o := range t {
		k := key(o)
		sums[k] += value(o)
		counts[k]++
	}

	keys := make([]int, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	out := make([]IntGroupMean, 0, len(keys))
	for _, k := range keys {
		out = append(out, IntGroupMean{
			Key:   k,
			Mean:  sums[k] / float64(counts[k]),
			Count: counts[k],
		})
	}
	return out
}

// GroupMeanByString averages the selected column per string key and
// returns the groups in ascending lexical key order.
func GroupMeanByString(t dataset.Table, key func(dataset.Observation) string, value func(dataset.Observation) float64) []StringGroupMean {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, o := range t {
		k := key(o)
		sums[k] += value(o)
		counts[k]++
	}

	keys := make([]string, 0, len(sums))
	for k := range sums {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]StringGroupMean, 0, len(keys))
	for _, k := range keys {
		out = append(out, StringGroupMean{
			Key:   k,
			Mean:  sums[k] / float64(counts[k]),
			Count: counts[k],
		})
	}
	return out
}
