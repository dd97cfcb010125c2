package expr

import (
	"errors"
	"fmt"
)

var (
	errUnknownFunc    = errors.New("unknown membership function")
	errBadArity       = errors.New("wrong number of arguments")
	errEmptyOperands  = errors.New("empty operand list")
	errInputOutOfSet  = errors.New("input reference out of range")
	errMissingOperand = errors.New("missing operand")
)

// Check validates n against an input vector of length numInputs: call
// arities, input references, and non-empty reducer and arithmetic
// operand lists. A checked tree never reads out of range during
// evaluation.
func Check(n Node, numInputs int) error {
	switch x := n.(type) {
	case Const, Target:
		return nil
	case Input:
		if int(x) < 0 || int(x) >= numInputs {
			return fmt.Errorf("%w: x%d with %d inputs", errInputOutOfSet, int(x), numInputs)
		}
		return nil
	case Call:
		a := x.Fn.arity()
		if a < 0 {
			return fmt.Errorf("%w: %d", errUnknownFunc, int(x.Fn))
		}
		if len(x.Args) != a {
			return fmt.Errorf("%w: %s takes %d, got %d", errBadArity, x.Fn, a, len(x.Args))
		}
		return checkAll(x.Args, numInputs)
	case Min:
		return checkOperands(x, numInputs)
	case Max:
		return checkOperands(x, numInputs)
	case Add:
		return checkOperands(x, numInputs)
	case Mul:
		return checkOperands(x, numInputs)
	case Sub:
		if x.A == nil || x.B == nil {
			return errMissingOperand
		}
		if err := Check(x.A, numInputs); err != nil {
			return err
		}
		return Check(x.B, numInputs)
	default:
		return fmt.Errorf("unknown node type %T", n)
	}
}

func checkOperands(ns []Node, numInputs int) error {
	if len(ns) == 0 {
		return errEmptyOperands
	}
	return checkAll(ns, numInputs)
}

func checkAll(ns []Node, numInputs int) error {
	for _, n := range ns {
		if n == nil {
			return errMissingOperand
		}
		if err := Check(n, numInputs); err != nil {
			return err
		}
	}
	return nil
}
