package stats

import (
	"math"
	"testing"
)

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected Summary
		epsilon  float64
	}{
		{
			name:   "one through ten",
			values: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			expected: Summary{
				Count:  10,
				Mean:   5.5,
				Std:    3.0276503540974917,
				Min:    1,
				Q25:    2.5,
				Median: 5,
				Q75:    7.5,
				Max:    10,
			},
			epsilon: 1e-9,
		},
		{
			name:   "unsorted input",
			values: []float64{3, 1, 2},
			expected: Summary{
				Count:  3,
				Mean:   2,
				Std:    1,
				Min:    1,
				Q25:    1,
				Median: 1.5,
				Q75:    2.25,
				Max:    3,
			},
			epsilon: 1e-9,
		},
		{
			name:   "constant column",
			values: []float64{7, 7, 7, 7},
			expected: Summary{
				Count:  4,
				Mean:   7,
				Std:    0,
				Min:    7,
				Q25:    7,
				Median: 7,
				Q75:    7,
				Max:    7,
			},
			epsilon: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Describe(tt.values)

			if got.Count != tt.expected.Count {
				t.Errorf("Count: expected %d, got %d", tt.expected.Count, got.Count)
			}
			checks := []struct {
				field    string
				got      float64
				expected float64
			}{
				{"Mean", got.Mean, tt.expected.Mean},
				{"Std", got.Std, tt.expected.Std},
				{"Min", got.Min, tt.expected.Min},
				{"Q25", got.Q25, tt.expected.Q25},
				{"Median", got.Median, tt.expected.Median},
				{"Q75", got.Q75, tt.expected.Q75},
				{"Max", got.Max, tt.expected.Max},
			}
			for _, c := range checks {
				if math.Abs(c.got-c.expected) > tt.epsilon {
					t.Errorf("%s: expected %.6f, got %.6f", c.field, c.expected, c.got)
				}
			}
		})
	}
}

func TestDescribeEmpty(t *testing.T) {
	got := Describe(nil)
	if got.Count != 0 {
		t.Errorf("expected Count 0, got %d", got.Count)
	}
	for field, v := range map[string]float64{
		"Mean": got.Mean, "Std": got.Std, "Min": got.Min,
		"Q25": got.Q25, "Median": got.Median, "Q75": got.Q75, "Max": got.Max,
	} {
		if !math.IsNaN(v) {
			t.Errorf("%s: expected NaN, got %v", field, v)
		}
	}
}

func TestDescribeSingleValue(t *testing.T) {
	got := Describe([]float64{42})
	if got.Count != 1 {
		t.Errorf("expected Count 1, got %d", got.Count)
	}
	if !math.IsNaN(got.Std) {
		t.Errorf("sample std of one value should be NaN, got %v", got.Std)
	}
	for field, v := range map[string]float64{
		"Mean": got.Mean, "Min": got.Min, "Q25": got.Q25,
		"Median": got.Median, "Q75": got.Q75, "Max": got.Max,
	} {
		if v != 42 {
			t.Errorf("%s: expected 42, got %v", field, v)
		}
	}
}

func TestDescribeDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_ = Describe(values)
	if values[0] != 3 || values[1] != 1 || values[2] != 2 {
		t.Errorf("input reordered: %v", values)
	}
}
