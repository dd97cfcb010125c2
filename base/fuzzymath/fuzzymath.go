package fuzzymath

import (
	"math"
)

// Membership functions mapping a crisp value to a membership degree.
// All functions are pure. Degenerate shape parameters (zero spread,
// empty interval) yield IEEE infinities or NaN rather than errors.

// Clip clamps v to the unit membership range [0, 1].
func Clip(v float64) float64 {
	if v < 0.0 {
		return 0.0
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// Gauss is a bell curve centered at a with spread s. The peak value is
// 1 at x == a; the tails approach but never reach 0.
func Gauss(x, s, a float64) float64 {
	d := (x - a) / s
	return math.Exp(-d * d / 2.0)
}

// Gauss2 is a plateau membership function: 1 on [a1, a2], with
// Gaussian tails of spread s1 below a1 and s2 above a2.
func Gauss2(x, s1, a1, s2, a2 float64) float64 {
	if x < a1 {
		return Gauss(x, s1, a1)
	}
	if x > a2 {
		return Gauss(x, s2, a2)
	}
	return 1.0
}

// SShaped rises smoothly from 0 at x <= a to 1 at x >= b, with a
// piecewise-quadratic spline split at the midpoint of [a, b]. The
// quadratic halves have zero slope at both ends of the interval.
func SShaped(x, a, b float64) float64 {
	if x <= a {
		return 0.0
	}
	if x >= b {
		return 1.0
	}
	if x <= midpoint(a, b) {
		d := (x - a) / (b - a)
		return 2.0 * d * d
	}
	d := (x - b) / (b - a)
	return 1.0 - 2.0*d*d
}

// ZShaped is the mirror of SShaped: a smooth fall from 1 at x <= a to
// 0 at x >= b.
func ZShaped(x, a, b float64) float64 {
	return 1.0 - SShaped(x, a, b)
}

// Triangular is the triangle with feet at a and c and apex at b.
func Triangular(x, a, b, c float64) float64 {
	return math.Max(math.Min((x-a)/(b-a), (c-x)/(c-b)), 0.0)
}

// Trapezoidal is the trapezoid with feet at a and d and shoulders at
// b and c.
func Trapezoidal(x, a, b, c, d float64) float64 {
	return math.Max(math.Min(math.Min((x-a)/(b-a), 1.0), (d-x)/(d-c)), 0.0)
}

// Bell is the generalized bell 1/(1+|(x-c)/a|^(2b)).
func Bell(x, a, b, c float64) float64 {
	return 1.0 / (1.0 + math.Pow(math.Abs((x-c)/a), 2.0*b))
}

// Sigmoid is the logistic curve 1/(1+exp(-a(x-c))).
func Sigmoid(x, a, c float64) float64 {
	return 1.0 / (1.0 + math.Exp(-a*(x-c)))
}

func midpoint(x, y float64) float64 {
	return x + (y-x)/2.0
}
