// Package registry installs the concrete named-function bodies the
// expression kernel's function registry accepts: numeric evaluators
// and symbolic derivatives for the common transcendental functions,
// adapted from ivy's lib package (which wires the same names — sin,
// cos, exp, log, sqrt, abs — to APL-style evaluation) onto
// expr.RegisterFunction instead of an APL operator table.
package registry

import (
	"math"

	"gocas.dev/gocas/config"
	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
)

var installed bool

// prec is the bit precision used to evaluate a registered function's
// exact (integer or rational) arguments. SetPrecision lets a session
// keep it in step with its config.Config.
var prec uint = config.DefaultDigits * 332 / 100

// SetPrecision sets the bit precision used to convert exact arguments
// to float before evaluating a registered function.
func SetPrecision(bits uint) { prec = bits }

// Install registers every function this package knows about. It is
// idempotent: every call after the first returns without registering
// anything.
func Install() {
	if installed {
		return
	}
	installed = true

	registerUnary("sin", math.Sin, func(x expr.Handle) (expr.Handle, error) {
		return expr.NewFunction("cos", []expr.Handle{x}), nil
	})
	registerUnary("cos", math.Cos, func(x expr.Handle) (expr.Handle, error) {
		return expr.Neg(expr.NewFunction("sin", []expr.Handle{x})), nil
	})
	registerUnary("exp", math.Exp, func(x expr.Handle) (expr.Handle, error) {
		return expr.NewFunction("exp", []expr.Handle{x}), nil
	})
	registerUnary("log", math.Log, func(x expr.Handle) (expr.Handle, error) {
		return expr.Pow(x, expr.NewNumeric(numeric.MinusOne)), nil
	})
	registerUnary("ln", math.Log, func(x expr.Handle) (expr.Handle, error) {
		return expr.Pow(x, expr.NewNumeric(numeric.MinusOne)), nil
	})
	registerUnary("sqrt", math.Sqrt, func(x expr.Handle) (expr.Handle, error) {
		half, err := expr.Div(expr.NewNumeric(numeric.One), expr.NewNumeric(numeric.Two))
		if err != nil {
			return expr.Handle{}, err
		}
		root := expr.Pow(x, half)
		denom, err := expr.Mul(expr.NewNumeric(numeric.Two), root)
		if err != nil {
			return expr.Handle{}, err
		}
		return expr.Div(expr.NewNumeric(numeric.One), denom)
	})
	registerUnary("abs", math.Abs, func(x expr.Handle) (expr.Handle, error) {
		return expr.Div(x, expr.NewFunction("abs", []expr.Handle{x}))
	})
}

// registerUnary wires a one-argument real function: eval converts its
// single numeric argument to a Float, evaluates fn on its float64 value,
// and returns the result as a Float carrying the argument's precision
// (so the result has float64 accuracy whatever that precision is);
// diff supplies d/dx of the function body (the chain rule multiplication
// by the argument's own derivative is applied by the kernel, not here).
func registerUnary(name string, fn func(float64) float64, diff func(x expr.Handle) (expr.Handle, error)) {
	expr.RegisterFunction(name, expr.FunctionHooks{
		Eval: func(args []numeric.Number) (numeric.Number, error) {
			x, err := toFloat(args[0])
			if err != nil {
				return nil, err
			}
			v, _ := x.Float64()
			return numeric.FloatFromFloat64(fn(v), x.Precision()), nil
		},
		Diff: func(args []expr.Handle, i int) (expr.Handle, error) {
			return diff(args[0])
		},
	})
}

// toFloat converts an exact numeric.Number to a Float at the package's
// current precision, or returns a Float argument unchanged at its own
// precision.
func toFloat(n numeric.Number) (numeric.Float, error) {
	switch v := n.(type) {
	case numeric.Float:
		return v, nil
	case numeric.Integer:
		return v.Float(prec), nil
	case numeric.Rational:
		return v.Float(prec), nil
	default:
		return numeric.Float{}, expr.ErrDomain.New("no float approximation for " + n.String())
	}
}
