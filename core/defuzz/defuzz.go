// Package defuzz converts membership functions over a bounded domain
// into crisp values using an evenly spaced evaluation mesh.
package defuzz

import (
	"example.com/fuzzy-infer/base/floats"
)

// Method selects the defuzzification procedure.
type Method int

const (
	Centroid Method = iota // center of gravity (default)
	Bisector               // splits the membership area in half
	MOM                    // middle of maximum
	SOM                    // smallest of maximum
	LOM                    // largest of maximum
)

// A Domain is a closed interval [Min, Max] discretized into Steps
// evenly spaced points, both endpoints included.
type Domain struct {
	Min, Max float64
	Steps    int
}

// Mesh returns the domain's evaluation points.
func (d Domain) Mesh() []float64 {
	if d.Steps < 2 {
		panic("unexpected number of steps")
	}
	mesh := make([]float64, d.Steps)
	step := (d.Max - d.Min) / float64(d.Steps-1)
	for i := range mesh {
		mesh[i] = d.Min + float64(i)*step
	}
	mesh[d.Steps-1] = d.Max
	return mesh
}

// Defuzzify reduces the membership function mu over d to a crisp value
// using the given method. With Centroid, a membership that is zero
// everywhere on the mesh yields NaN.
func Defuzzify(d Domain, mu func(float64) float64, method Method) float64 {
	xx, mm := evaluate(d, mu)
	switch method {
	case Centroid:
		return floats.WeightedMean(xx, mm)
	case Bisector:
		return bisector(xx, mm)
	case MOM:
		return floats.Median(maxima(xx, mm))
	case SOM:
		return floats.Min(maxima(xx, mm))
	case LOM:
		return floats.Max(maxima(xx, mm))
	default:
		panic("unexpected defuzzification method")
	}
}

func evaluate(d Domain, mu func(float64) float64) (xx, mm []float64) {
	xx = d.Mesh()
	mm = make([]float64, len(xx))
	for i, x := range xx {
		mm[i] = mu(x)
	}
	return xx, mm
}

// bisector returns the first mesh point where the cumulative
// membership reaches half the total.
func bisector(xx, mm []float64) float64 {
	total := 0.0
	for _, m := range mm {
		total += m
	}
	half := total / 2.0
	cum := 0.0
	for i, m := range mm {
		cum += m
		if cum >= half {
			return xx[i]
		}
	}
	return xx[len(xx)-1]
}

// maxima returns the mesh points at which the membership attains its
// maximum value.
func maxima(xx, mm []float64) []float64 {
	peak := floats.Max(mm)
	var at []float64
	for i, m := range mm {
		if m == peak {
			at = append(at, xx[i])
		}
	}
	return at
}
