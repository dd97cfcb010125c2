// Package fisapi defines the JSON wire format of the fuzzy inference
// API and the mapping between named request inputs and a model's
// ordered input vector.
package fisapi

import (
	"errors"
	"fmt"
)

const Version = "0.1.0"

type VersionResponse struct {
	Version string `json:"version"`
}

// ModelInfo describes a served model.
type ModelInfo struct {
	Name      string   `json:"name"`
	Inputs    []string `json:"inputs"`
	DomainMin float64  `json:"domain_min"`
	DomainMax float64  `json:"domain_max"`
	Steps     int      `json:"steps"`
	Expr      string   `json:"expr"`
}

// PredictRequest carries one evaluation's inputs, keyed by the input
// names the model declares.
type PredictRequest struct {
	Inputs map[string]float64 `json:"inputs"`
}

type PredictResponse struct {
	Crisp float64 `json:"crisp"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

var (
	errMissingInput = errors.New("missing input")
	errUnknownInput = errors.New("unknown input")
)

// OrderInputs validates req against the declared input names and
// returns the input vector in declaration order. Every declared input
// must be present and no undeclared input may appear.
func OrderInputs(declared []string, req map[string]float64) ([]float64, error) {
	for name := range req {
		if !contains(declared, name) {
			return nil, fmt.Errorf("%w: %q", errUnknownInput, name)
		}
	}
	inputs := make([]float64, len(declared))
	for i, name := range declared {
		v, ok := req[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", errMissingInput, name)
		}
		inputs[i] = v
	}
	return inputs, nil
}

func contains(s []string, v string) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
