package floats

import (
	"slices"
)

func midpoint(x, y float64) float64 {
	return x + (y-x)/2.0
}

func Min(fs []float64) float64 {
	if len(fs) == 0 {
		panic("unexpected number of values")
	}
	m := fs[0]
	for _, f := range fs[1:] {
		if f < m {
			m = f
		}
	}
	return m
}

func Max(fs []float64) float64 {
	if len(fs) == 0 {
		panic("unexpected number of values")
	}
	m := fs[0]
	for _, f := range fs[1:] {
		if f > m {
			m = f
		}
	}
	return m
}

func Mean(fs []float64) float64 {
	if len(fs) == 0 {
		panic("unexpected number of values")
	}
	sum := 0.0
	for _, f := range fs {
		sum += f
	}
	return sum / float64(len(fs))
}

// WeightedMean returns the weight-averaged value of fs. A zero weight
// sum yields NaN or an infinity, following IEEE division semantics.
func WeightedMean(fs, ws []float64) float64 {
	if len(fs) == 0 || len(fs) != len(ws) {
		panic("unexpected number of values")
	}
	sum, sumWeights := 0.0, 0.0
	for i, f := range fs {
		sum += f * ws[i]
		sumWeights += ws[i]
	}
	return sum / sumWeights
}

func Median(fs []float64) float64 {
	n := len(fs)
	if n == 0 {
		panic("unexpected number of values")
	}
	slices.Sort(fs)
	i := n / 2
	if n%2 != 0 {
		return fs[i]
	}
	return midpoint(fs[i-1], fs[i])
}
