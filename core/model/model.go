// Package model ties a generated fuzzy evaluator to its input vector
// and provides the sampling-based crisp conversion.
package model

import (
	"example.com/fuzzy-infer/base/floats"
	"example.com/fuzzy-infer/core/expr"
)

// A Model is the contract a rule generator supplies: a unique name, an
// ordered list of input names, and a single composed expression over
// the target and those inputs.
type Model struct {
	Name   string
	Inputs []string
	Expr   expr.Node
}

// Check validates the model's expression against its input vector.
func (m *Model) Check() error {
	return expr.Check(m.Expr, len(m.Inputs))
}

// Evaluate returns the membership degree of target given the input
// values. The arity of inputs is trusted; it is fixed by the model's
// declared input vector.
func (m *Model) Evaluate(target float64, inputs []float64) float64 {
	return m.Expr.Eval(target, inputs)
}

// EvaluateCrisp converts the membership function over [minVal, maxVal]
// into a single crisp value: it samples the evaluator at n points and
// returns the membership-weighted mean of the sample positions (a
// discrete center-of-gravity defuzzification).
//
// The sweep advances by one increment before the first sample, so
// minVal itself is never evaluated and the last sample lands at
// maxVal (up to rounding). A membership that is zero at every sample
// yields NaN.
func (m *Model) EvaluateCrisp(minVal, maxVal float64, n int, inputs []float64) float64 {
	if n < 1 {
		panic("unexpected number of samples")
	}
	values := make([]float64, n)
	weights := make([]float64, n)
	increment := (maxVal - minVal) / float64(n)
	x := minVal
	for i := 0; i < n; i++ {
		x += increment
		values[i] = x
		weights[i] = m.Evaluate(x, inputs)
	}
	return floats.WeightedMean(values, weights)
}
