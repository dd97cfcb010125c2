package model_test

import (
	"math"
	"testing"

	"example.com/fuzzy-infer/core/expr"
	"example.com/fuzzy-infer/core/model"
)

func gaussOfTarget(s, a float64) expr.Node {
	return expr.Call{Fn: expr.Gauss, Args: []expr.Node{
		expr.Target{}, expr.Const(s), expr.Const(a),
	}}
}

func TestEvaluate(t *testing.T) {
	m := &model.Model{
		Name:   "scaled",
		Inputs: []string{"gain"},
		Expr: expr.Mul{
			expr.Input(0),
			gaussOfTarget(1.0, 0.0),
		},
	}
	if err := m.Check(); err != nil {
		t.Fatalf("Check() = %v", err)
	}

	got := m.Evaluate(0.0, []float64{0.5})
	if got != 0.5 {
		t.Errorf("Evaluate(0, [0.5]) = %v; want 0.5", got)
	}
}

func TestEvaluateCrispSymmetricGaussian(t *testing.T) {
	m := &model.Model{
		Name: "bell",
		Expr: gaussOfTarget(1.0, 0.0),
	}

	got := m.EvaluateCrisp(-5.0, 5.0, 1000, nil)
	if math.Abs(got) > 0.01 {
		t.Errorf("EvaluateCrisp(-5, 5, 1000) = %v; want ~0", got)
	}
}

func TestEvaluateCrispOffCenterGaussian(t *testing.T) {
	m := &model.Model{
		Name: "bell",
		Expr: gaussOfTarget(0.5, 2.0),
	}

	got := m.EvaluateCrisp(-5.0, 5.0, 10000, nil)
	if math.Abs(got-2.0) > 0.01 {
		t.Errorf("EvaluateCrisp(-5, 5, 10000) = %v; want ~2", got)
	}
}

func TestEvaluateCrispZeroMembership(t *testing.T) {
	m := &model.Model{
		Name: "nowhere",
		Expr: expr.Const(0.0),
	}

	got := m.EvaluateCrisp(0.0, 1.0, 100, nil)
	if !math.IsNaN(got) {
		t.Errorf("EvaluateCrisp of zero membership = %v; want NaN", got)
	}
}

func TestEvaluateCrispResolution(t *testing.T) {
	// An asymmetric membership function over [0, 4]: discretization
	// error against a high-resolution reference centroid must shrink
	// as n grows.
	m := &model.Model{
		Name: "skewed",
		Expr: expr.Call{Fn: expr.Triangular, Args: []expr.Node{
			expr.Target{}, expr.Const(0.0), expr.Const(0.5), expr.Const(4.0),
		}},
	}

	ref := m.EvaluateCrisp(0.0, 4.0, 1_000_000, nil)
	errCoarse := math.Abs(m.EvaluateCrisp(0.0, 4.0, 10, nil) - ref)
	errMid := math.Abs(m.EvaluateCrisp(0.0, 4.0, 100, nil) - ref)
	errFine := math.Abs(m.EvaluateCrisp(0.0, 4.0, 1000, nil) - ref)

	if !(errFine < errMid && errMid < errCoarse) {
		t.Errorf("discretization error not decreasing: n=10: %v, n=100: %v, n=1000: %v",
			errCoarse, errMid, errFine)
	}
}

func TestEvaluateCrispSkipsLeftEndpoint(t *testing.T) {
	// A singleton-like spike at the left endpoint is never sampled:
	// the sweep starts one increment in.
	m := &model.Model{
		Name: "spike",
		Expr: expr.Call{Fn: expr.ZShaped, Args: []expr.Node{
			expr.Target{}, expr.Const(0.0), expr.Const(0.05),
		}},
	}

	got := m.EvaluateCrisp(0.0, 1.0, 10, nil)
	if !math.IsNaN(got) {
		t.Errorf("EvaluateCrisp = %v; want NaN since all samples miss the spike", got)
	}
}

func TestEvaluateCrispBadSampleCount(t *testing.T) {
	m := &model.Model{
		Name: "bell",
		Expr: gaussOfTarget(1.0, 0.0),
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("EvaluateCrisp with n = 0 did not panic")
		}
	}()
	m.EvaluateCrisp(0.0, 1.0, 0, nil)
}

func TestCheckRejectsBadExpression(t *testing.T) {
	m := &model.Model{
		Name:   "broken",
		Inputs: []string{"a"},
		Expr:   expr.Input(3),
	}
	if err := m.Check(); err == nil {
		t.Errorf("Check() = nil; want error for out-of-range input")
	}
}
