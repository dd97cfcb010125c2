// Package rules builds fuzzy rule bases and lowers them to a single
// evaluator expression. Propositions are explicit trees; the choice of
// fuzzy connective semantics is carried by Operators.
package rules

import (
	"errors"
	"fmt"
	"strings"

	"example.com/fuzzy-infer/core/expr"
)

// An MF is a membership function shape: a primitive and its
// parameters, to be applied to a crisp argument.
type MF struct {
	Fn     expr.Func
	Params []float64
}

func (mf MF) of(arg expr.Node) expr.Node {
	args := make([]expr.Node, 0, len(mf.Params)+1)
	args = append(args, arg)
	for _, p := range mf.Params {
		args = append(args, expr.Const(p))
	}
	return expr.Call{Fn: mf.Fn, Args: args}
}

// AndMethod, OrMethod, ImpMethod and AggMethod select the semantics of
// the fuzzy connectives. The zero values are the Mamdani defaults.
type AndMethod int

const (
	AndMin AndMethod = iota
	AndProduct
	AndLukasiewicz
)

type OrMethod int

const (
	OrMax OrMethod = iota
	OrProbSum
	OrBoundedSum
)

type ImpMethod int

const (
	ImpMin ImpMethod = iota
	ImpProduct
)

type AggMethod int

const (
	AggMax AggMethod = iota
	AggProbSum
	AggBoundedSum
)

// Operators carries the connective semantics used when lowering.
type Operators struct {
	And         AndMethod
	Or          OrMethod
	Implication ImpMethod
	Aggregation AggMethod
}

// A Prop is a fuzzy proposition over the model's inputs.
type Prop interface {
	lower(ops Operators) expr.Node
	String() string
}

// Is grades input Input by the membership function MF.
type Is struct {
	Input int
	MF    MF
}

// IsNot is the complement of Is.
type IsNot struct {
	Input int
	MF    MF
}

// Not negates a proposition.
type Not struct {
	P Prop
}

// And and Or connect propositions; both require at least one operand.
type And []Prop

type Or []Prop

func (p Is) lower(ops Operators) expr.Node {
	return p.MF.of(expr.Input(p.Input))
}

func (p IsNot) lower(ops Operators) expr.Node {
	return expr.Sub{A: expr.Const(1.0), B: p.MF.of(expr.Input(p.Input))}
}

func (p Not) lower(ops Operators) expr.Node {
	return expr.Sub{A: expr.Const(1.0), B: p.P.lower(ops)}
}

func (p And) lower(ops Operators) expr.Node {
	ns := lowerAll(p, ops)
	switch ops.And {
	case AndMin:
		return expr.Min(ns)
	case AndProduct:
		return expr.Mul(ns)
	case AndLukasiewicz:
		// max(0, sum - (k-1))
		return expr.Max{
			expr.Const(0.0),
			expr.Sub{A: expr.Add(ns), B: expr.Const(float64(len(ns) - 1))},
		}
	default:
		panic("unexpected AND method")
	}
}

func (p Or) lower(ops Operators) expr.Node {
	ns := lowerAll(p, ops)
	switch ops.Or {
	case OrMax:
		return expr.Max(ns)
	case OrProbSum:
		return probSum(ns)
	case OrBoundedSum:
		return boundedSum(ns)
	default:
		panic("unexpected OR method")
	}
}

func lowerAll(ps []Prop, ops Operators) []expr.Node {
	ns := make([]expr.Node, len(ps))
	for i, p := range ps {
		ns[i] = p.lower(ops)
	}
	return ns
}

// probSum is 1 - prod(1 - n).
func probSum(ns []expr.Node) expr.Node {
	comps := make([]expr.Node, len(ns))
	for i, n := range ns {
		comps[i] = expr.Sub{A: expr.Const(1.0), B: n}
	}
	return expr.Sub{A: expr.Const(1.0), B: expr.Mul(comps)}
}

// boundedSum is min(1, sum).
func boundedSum(ns []expr.Node) expr.Node {
	return expr.Min{expr.Const(1.0), expr.Add(ns)}
}

// A Rule grades the target by Then, limited by the degree to which
// When holds, optionally scaled by a weight in (0, 1].
type Rule struct {
	When   Prop
	Then   MF
	Weight float64
}

func (r Rule) lower(ops Operators) expr.Node {
	w := r.Weight
	if w == 0.0 {
		w = 1.0
	}
	antecedent := r.When.lower(ops)
	consequent := r.Then.of(expr.Target{})

	var n expr.Node
	switch ops.Implication {
	case ImpMin:
		n = expr.Min{antecedent, consequent}
	case ImpProduct:
		n = expr.Mul{antecedent, consequent}
	default:
		panic("unexpected implication method")
	}
	if w == 1.0 {
		return n
	}
	return expr.Mul{n, expr.Const(w)}
}

// A RuleSet is a non-empty list of rules aggregated into one
// membership function over the target.
type RuleSet []Rule

var errEmptyRuleSet = errors.New("empty rule set")

// Lower produces the single evaluator expression for the rule set,
// aggregating the lowered rules with the configured method.
func (rs RuleSet) Lower(ops Operators) (expr.Node, error) {
	if len(rs) == 0 {
		return nil, errEmptyRuleSet
	}
	for _, r := range rs {
		if r.When == nil {
			return nil, errors.New("rule without antecedent")
		}
		if r.Weight < 0.0 || r.Weight > 1.0 {
			return nil, fmt.Errorf("rule weight %v outside (0, 1]", r.Weight)
		}
	}
	ns := make([]expr.Node, len(rs))
	for i, r := range rs {
		ns[i] = r.lower(ops)
	}
	switch ops.Aggregation {
	case AggMax:
		return expr.Max(ns), nil
	case AggProbSum:
		return probSum(ns), nil
	case AggBoundedSum:
		return boundedSum(ns), nil
	default:
		panic("unexpected aggregation method")
	}
}

func (p Is) String() string {
	return fmt.Sprintf("x%d is %s", p.Input, p.MF.Fn)
}

func (p IsNot) String() string {
	return fmt.Sprintf("x%d is not %s", p.Input, p.MF.Fn)
}

func (p Not) String() string {
	return fmt.Sprintf("not (%s)", p.P)
}

func (p And) String() string {
	return join(p, " and ")
}

func (p Or) String() string {
	return join(p, " or ")
}

func join(ps []Prop, sep string) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = "(" + p.String() + ")"
	}
	return strings.Join(parts, sep)
}

func (r Rule) String() string {
	return fmt.Sprintf("if (%s) then (target is %s)", r.When, r.Then.Fn)
}
