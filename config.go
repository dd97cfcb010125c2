package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"go.uber.org/zap"

	"example.com/fuzzy-infer/core/defuzz"
	"example.com/fuzzy-infer/core/expr"
	"example.com/fuzzy-infer/core/model"
	"example.com/fuzzy-infer/core/server"
)

type svcConfig struct {
	LocalAddr   string        `toml:"local_address,omitempty"`
	MetricsAddr string        `toml:"metrics_address,omitempty"`
	Models      []modelConfig `toml:"model,omitempty"`
}

type modelConfig struct {
	Name   string       `toml:"name"`
	Inputs []string     `toml:"inputs,omitempty"`
	Domain domainConfig `toml:"domain"`
	Expr   exprConfig   `toml:"expr"`
}

type domainConfig struct {
	Min   float64 `toml:"min"`
	Max   float64 `toml:"max"`
	Steps int     `toml:"steps"`
}

// exprConfig is the recursive description of an evaluator expression:
// exactly one of Const, Ref, or Fn must be set. Ref is "target" or one
// of the model's input names.
type exprConfig struct {
	Const *float64     `toml:"const,omitempty"`
	Ref   string       `toml:"ref,omitempty"`
	Fn    string       `toml:"fn,omitempty"`
	Args  []exprConfig `toml:"args,omitempty"`
}

var funcsByName = map[string]expr.Func{
	"clip":        expr.Clip,
	"gauss":       expr.Gauss,
	"gauss2":      expr.Gauss2,
	"s_shaped":    expr.SShaped,
	"z_shaped":    expr.ZShaped,
	"triangular":  expr.Triangular,
	"trapezoidal": expr.Trapezoidal,
	"bell":        expr.Bell,
	"sigmoid":     expr.Sigmoid,
}

func (c exprConfig) lower(inputs []string) (expr.Node, error) {
	if c.Const != nil {
		if c.Ref != "" || c.Fn != "" {
			return nil, errors.New("expression sets more than one of const, ref, fn")
		}
		return expr.Const(*c.Const), nil
	}
	if c.Ref != "" {
		if c.Fn != "" {
			return nil, errors.New("expression sets more than one of const, ref, fn")
		}
		if c.Ref == "target" {
			return expr.Target{}, nil
		}
		for i, name := range inputs {
			if name == c.Ref {
				return expr.Input(i), nil
			}
		}
		return nil, fmt.Errorf("unknown input %q", c.Ref)
	}
	if c.Fn == "" {
		return nil, errors.New("expression sets none of const, ref, fn")
	}

	args := make([]expr.Node, len(c.Args))
	for i, a := range c.Args {
		n, err := a.lower(inputs)
		if err != nil {
			return nil, err
		}
		args[i] = n
	}

	if f, ok := funcsByName[c.Fn]; ok {
		return expr.Call{Fn: f, Args: args}, nil
	}
	switch c.Fn {
	case "min":
		return expr.Min(args), nil
	case "max":
		return expr.Max(args), nil
	case "add":
		return expr.Add(args), nil
	case "mul":
		return expr.Mul(args), nil
	case "sub":
		if len(args) != 2 {
			return nil, fmt.Errorf("sub takes 2 arguments, got %d", len(args))
		}
		return expr.Sub{A: args[0], B: args[1]}, nil
	default:
		return nil, fmt.Errorf("unknown function %q", c.Fn)
	}
}

func (c modelConfig) build() (server.ServedModel, error) {
	if c.Name == "" {
		return server.ServedModel{}, errors.New("model without a name")
	}
	if !(c.Domain.Max > c.Domain.Min) {
		return server.ServedModel{}, fmt.Errorf("model %q: empty domain [%v, %v]",
			c.Name, c.Domain.Min, c.Domain.Max)
	}
	if c.Domain.Steps < 1 {
		return server.ServedModel{}, fmt.Errorf("model %q: %d domain steps",
			c.Name, c.Domain.Steps)
	}
	n, err := c.Expr.lower(c.Inputs)
	if err != nil {
		return server.ServedModel{}, fmt.Errorf("model %q: %w", c.Name, err)
	}
	m := &model.Model{Name: c.Name, Inputs: c.Inputs, Expr: n}
	if err := m.Check(); err != nil {
		return server.ServedModel{}, fmt.Errorf("model %q: %w", c.Name, err)
	}
	return server.ServedModel{
		Model:  m,
		Domain: defuzz.Domain{Min: c.Domain.Min, Max: c.Domain.Max, Steps: c.Domain.Steps},
	}, nil
}

func loadConfig(configFile string) svcConfig {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	var cfg svcConfig
	err = toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		log.Fatal("failed to decode configuration", zap.Error(err))
	}
	return cfg
}

func buildModels(cfg svcConfig) map[string]server.ServedModel {
	models := make(map[string]server.ServedModel)
	for _, mc := range cfg.Models {
		sm, err := mc.build()
		if err != nil {
			log.Fatal("failed to build model", zap.Error(err))
		}
		if _, ok := models[sm.Model.Name]; ok {
			log.Fatal("failed to build model",
				zap.String("name", sm.Model.Name),
				zap.Error(errors.New("duplicate model name")))
		}
		models[sm.Model.Name] = sm
	}
	return models
}
