// Driver for quick experiments

package main

import (
	"log/slog"

	"example.com/fuzzy-infer/core/expr"
	"example.com/fuzzy-infer/core/model"
	"example.com/fuzzy-infer/core/rules"
)

func runX() {
	initLogger(true /* verbose */)

	log := slog.Default()

	// Classic tipping example: inputs food (x0) and service (x1),
	// target is the tip percentage.
	bad := rules.MF{Fn: expr.ZShaped, Params: []float64{0, 5}}
	good := rules.MF{Fn: expr.SShaped, Params: []float64{5, 10}}
	low := rules.MF{Fn: expr.Gauss, Params: []float64{5, 5}}
	high := rules.MF{Fn: expr.Gauss, Params: []float64{5, 25}}

	rs := rules.RuleSet{
		{When: rules.Or{rules.Is{Input: 0, MF: bad}, rules.Is{Input: 1, MF: bad}}, Then: low},
		{When: rules.And{rules.Is{Input: 0, MF: good}, rules.Is{Input: 1, MF: good}}, Then: high},
	}
	n, err := rs.Lower(rules.Operators{})
	if err != nil {
		panic(err)
	}
	m := &model.Model{Name: "tip", Inputs: []string{"food", "service"}, Expr: n}

	log.Debug("model", slog.String("expr", expr.String(m.Expr)))
	crisp := m.EvaluateCrisp(0, 30, 1000, []float64{8, 9})
	log.Debug("crisp evaluation", slog.Float64("value", crisp))
}
