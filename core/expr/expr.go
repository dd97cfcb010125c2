// Package expr provides the expression trees that form the body of a
// generated fuzzy evaluator: pure arithmetic over a target value, a
// fixed vector of inputs, membership primitives, and min/max reducers.
package expr

import (
	"fmt"
	"strconv"
	"strings"

	"example.com/fuzzy-infer/base/floats"
	"example.com/fuzzy-infer/base/fuzzymath"
)

type Node interface {
	// Eval evaluates the expression. Evaluation is pure: the same
	// target and inputs always yield the same result.
	Eval(target float64, inputs []float64) float64

	appendString(sb *strings.Builder)
}

// Const is a literal constant.
type Const float64

// Target references the value being graded, the first parameter of a
// generated evaluator.
type Target struct{}

// Input references an input by position in the evaluator's input
// vector.
type Input int

// Func identifies a membership primitive.
type Func int

const (
	Clip Func = iota
	Gauss
	Gauss2
	SShaped
	ZShaped
	Triangular
	Trapezoidal
	Bell
	Sigmoid
)

// Call applies a membership primitive. Args[0] is the crisp argument;
// the remaining args are the shape parameters, in the order the
// corresponding fuzzymath function takes them.
type Call struct {
	Fn   Func
	Args []Node
}

// Min and Max reduce a non-empty list of operands by comparison.
type Min []Node

type Max []Node

// Add and Mul are n-ary arithmetic over a non-empty list of operands.
type Add []Node

type Mul []Node

// Sub is the binary difference A - B.
type Sub struct {
	A, B Node
}

func (c Const) Eval(target float64, inputs []float64) float64 {
	return float64(c)
}

func (Target) Eval(target float64, inputs []float64) float64 {
	return target
}

func (i Input) Eval(target float64, inputs []float64) float64 {
	return inputs[i]
}

func (c Call) Eval(target float64, inputs []float64) float64 {
	var a [5]float64
	args := a[:0]
	for _, n := range c.Args {
		args = append(args, n.Eval(target, inputs))
	}
	switch c.Fn {
	case Clip:
		return fuzzymath.Clip(args[0])
	case Gauss:
		return fuzzymath.Gauss(args[0], args[1], args[2])
	case Gauss2:
		return fuzzymath.Gauss2(args[0], args[1], args[2], args[3], args[4])
	case SShaped:
		return fuzzymath.SShaped(args[0], args[1], args[2])
	case ZShaped:
		return fuzzymath.ZShaped(args[0], args[1], args[2])
	case Triangular:
		return fuzzymath.Triangular(args[0], args[1], args[2], args[3])
	case Trapezoidal:
		return fuzzymath.Trapezoidal(args[0], args[1], args[2], args[3], args[4])
	case Bell:
		return fuzzymath.Bell(args[0], args[1], args[2], args[3])
	case Sigmoid:
		return fuzzymath.Sigmoid(args[0], args[1], args[2])
	default:
		panic("unexpected membership function")
	}
}

func (m Min) Eval(target float64, inputs []float64) float64 {
	return floats.Min(evalAll(m, target, inputs))
}

func (m Max) Eval(target float64, inputs []float64) float64 {
	return floats.Max(evalAll(m, target, inputs))
}

func (a Add) Eval(target float64, inputs []float64) float64 {
	sum := 0.0
	for _, n := range a {
		sum += n.Eval(target, inputs)
	}
	return sum
}

func (m Mul) Eval(target float64, inputs []float64) float64 {
	prod := 1.0
	for _, n := range m {
		prod *= n.Eval(target, inputs)
	}
	return prod
}

func (s Sub) Eval(target float64, inputs []float64) float64 {
	return s.A.Eval(target, inputs) - s.B.Eval(target, inputs)
}

func evalAll(ns []Node, target float64, inputs []float64) []float64 {
	fs := make([]float64, len(ns))
	for i, n := range ns {
		fs[i] = n.Eval(target, inputs)
	}
	return fs
}

func (f Func) arity() int {
	switch f {
	case Clip:
		return 1
	case Gauss, SShaped, ZShaped, Sigmoid:
		return 3
	case Triangular, Bell:
		return 4
	case Gauss2, Trapezoidal:
		return 5
	default:
		return -1
	}
}

func (f Func) String() string {
	switch f {
	case Clip:
		return "clip"
	case Gauss:
		return "gauss"
	case Gauss2:
		return "gauss2"
	case SShaped:
		return "s_shaped"
	case ZShaped:
		return "z_shaped"
	case Triangular:
		return "triangular"
	case Trapezoidal:
		return "trapezoidal"
	case Bell:
		return "bell"
	case Sigmoid:
		return "sigmoid"
	default:
		return "unknown"
	}
}

// String renders n as a readable formula, with inputs named x0, x1, ...
func String(n Node) string {
	var sb strings.Builder
	n.appendString(&sb)
	return sb.String()
}

func (c Const) appendString(sb *strings.Builder) {
	sb.WriteString(strconv.FormatFloat(float64(c), 'g', -1, 64))
}

func (Target) appendString(sb *strings.Builder) {
	sb.WriteString("target")
}

func (i Input) appendString(sb *strings.Builder) {
	fmt.Fprintf(sb, "x%d", int(i))
}

func (c Call) appendString(sb *strings.Builder) {
	sb.WriteString(c.Fn.String())
	appendList(sb, "(", ", ", ")", c.Args)
}

func (m Min) appendString(sb *strings.Builder) {
	sb.WriteString("min")
	appendList(sb, "(", ", ", ")", m)
}

func (m Max) appendString(sb *strings.Builder) {
	sb.WriteString("max")
	appendList(sb, "(", ", ", ")", m)
}

func (a Add) appendString(sb *strings.Builder) {
	appendList(sb, "(", " + ", ")", a)
}

func (m Mul) appendString(sb *strings.Builder) {
	appendList(sb, "(", " * ", ")", m)
}

func (s Sub) appendString(sb *strings.Builder) {
	appendList(sb, "(", " - ", ")", []Node{s.A, s.B})
}

func appendList(sb *strings.Builder, open, sep, close string, ns []Node) {
	sb.WriteString(open)
	for i, n := range ns {
		if i != 0 {
			sb.WriteString(sep)
		}
		n.appendString(sb)
	}
	sb.WriteString(close)
}
