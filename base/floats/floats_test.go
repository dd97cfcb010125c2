package floats_test

import (
	"math"
	"testing"

	"example.com/fuzzy-infer/base/floats"
)

func TestMin(t *testing.T) {
	tests := []struct {
		name      string
		input     []float64
		want      float64
		wantPanic bool
	}{
		{
			name:      "Nil slice",
			input:     nil,
			wantPanic: true,
		},
		{
			name:      "Empty slice",
			input:     []float64{},
			wantPanic: true,
		},
		{
			name:  "Single element",
			input: []float64{42.0},
			want:  42.0,
		},
		{
			name:  "Three elements",
			input: []float64{5.0, 2.0, 8.0},
			want:  2.0,
		},
		{
			name:  "Minimum first",
			input: []float64{-1.0, 0.0, 1.0},
			want:  -1.0,
		},
		{
			name:  "Minimum last",
			input: []float64{3.0, 2.0, 1.0},
			want:  1.0,
		},
		{
			name:  "Duplicate minimum",
			input: []float64{2.0, 1.0, 1.0, 2.0},
			want:  1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("Min(%v) did not panic", tt.input)
					}
				}()
			}
			got := floats.Min(tt.input)
			if got != tt.want {
				t.Errorf("Min(%v) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name      string
		input     []float64
		want      float64
		wantPanic bool
	}{
		{
			name:      "Empty slice",
			input:     []float64{},
			wantPanic: true,
		},
		{
			name:  "Single element",
			input: []float64{42.0},
			want:  42.0,
		},
		{
			name:  "Three elements",
			input: []float64{5.0, 2.0, 8.0},
			want:  8.0,
		},
		{
			name:  "Negative values",
			input: []float64{-5.0, -2.0, -8.0},
			want:  -2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("Max(%v) did not panic", tt.input)
					}
				}()
			}
			got := floats.Max(tt.input)
			if got != tt.want {
				t.Errorf("Max(%v) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestMean(t *testing.T) {
	tests := []struct {
		name      string
		input     []float64
		want      float64
		wantPanic bool
	}{
		{
			name:      "Empty slice",
			input:     []float64{},
			wantPanic: true,
		},
		{
			name:  "Single element",
			input: []float64{3.0},
			want:  3.0,
		},
		{
			name:  "Four elements",
			input: []float64{1.0, 2.0, 3.0, 4.0},
			want:  2.5,
		},
		{
			name:  "Mixed signs",
			input: []float64{-2.0, 2.0},
			want:  0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("Mean(%v) did not panic", tt.input)
					}
				}()
			}
			got := floats.Mean(tt.input)
			if got != tt.want {
				t.Errorf("Mean(%v) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestWeightedMean(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		weights []float64
		want    float64
	}{
		{
			name:    "Single element",
			values:  []float64{4.0},
			weights: []float64{0.5},
			want:    4.0,
		},
		{
			name:    "Dominant weight",
			values:  []float64{1.0, 100.0},
			weights: []float64{1.0, 0.0},
			want:    1.0,
		},
		{
			name:    "Balanced weights",
			values:  []float64{2.0, 4.0},
			weights: []float64{1.0, 1.0},
			want:    3.0,
		},
		{
			name:    "Asymmetric weights",
			values:  []float64{0.0, 10.0},
			weights: []float64{3.0, 1.0},
			want:    2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := floats.WeightedMean(tt.values, tt.weights)
			if got != tt.want {
				t.Errorf("WeightedMean(%v, %v) = %v; want %v", tt.values, tt.weights, got, tt.want)
			}
		})
	}
}

func TestWeightedMeanEqualWeightsIsMean(t *testing.T) {
	values := []float64{0.5, 1.5, 2.5, 7.0, -3.0}
	weights := []float64{0.25, 0.25, 0.25, 0.25, 0.25}
	got := floats.WeightedMean(values, weights)
	want := floats.Mean(values)
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("WeightedMean with equal weights = %v; want Mean = %v", got, want)
	}
}

func TestWeightedMeanZeroWeights(t *testing.T) {
	got := floats.WeightedMean([]float64{1.0, 2.0}, []float64{0.0, 0.0})
	if !math.IsNaN(got) && !math.IsInf(got, 0) {
		t.Errorf("WeightedMean with zero weights = %v; want NaN or Inf", got)
	}
}

func TestWeightedMeanLengthMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("WeightedMean with mismatched lengths did not panic")
		}
	}()
	floats.WeightedMean([]float64{1.0, 2.0}, []float64{1.0})
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name      string
		input     []float64
		want      float64
		wantPanic bool
	}{
		{
			name:      "Empty slice",
			input:     []float64{},
			wantPanic: true,
		},
		{
			name:  "Single element",
			input: []float64{42.0},
			want:  42.0,
		},
		{
			name:  "Odd count",
			input: []float64{3.0, 1.0, 2.0},
			want:  2.0,
		},
		{
			name:  "Even count",
			input: []float64{4.0, 1.0, 3.0, 2.0},
			want:  2.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.wantPanic {
				defer func() {
					if r := recover(); r == nil {
						t.Errorf("Median(%v) did not panic", tt.input)
					}
				}()
			}
			got := floats.Median(tt.input)
			if got != tt.want {
				t.Errorf("Median(%v) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}
