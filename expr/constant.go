// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"sync"

	"gocas.dev/gocas/numeric"
)

// Constant is a named leaf that, unlike a Symbol, denotes one fixed
// value: either an exact numeric body (an exact constant like a named
// unit) or an arity-0 evaluator that can approximate the value to a
// requested precision (an irrational constant like pi). Differentiating
// a Constant with respect to any symbol is always zero: it is by
// definition not a function of anything.
type Constant struct {
	name      string
	value     numeric.Number                          // exact body, or nil
	evaluator func(prec uint) (numeric.Number, error) // numeric approximator, or nil
	serial    uint64
}

func (c *Constant) kind() Kind { return KindConstant }
func (c *Constant) nops() int  { return 0 }
func (c *Constant) op(i int) Handle {
	panic(ErrRange.New("constant has no operands"))
}
func (c *Constant) hash() uint64             { return mixHash(uint64(KindConstant), c.serial) }
func (c *Constant) text(precedence int) string { return c.name }

func (c *Constant) evalSelf(depth int) (Handle, error) {
	if c.value != nil {
		return NewNumeric(c.value), nil
	}
	return wrap(c), nil
}

func (c *Constant) expandSelf(depth int) (Handle, error) { return wrap(c), nil }

func (c *Constant) substSelf(m *substitution, depth int) (Handle, error) {
	if to, ok := m.lookup(wrap(c)); ok {
		return to, nil
	}
	return wrap(c), nil
}

func (c *Constant) diffSelf(sym *Symbol, depth int) (Handle, error) {
	return NewNumeric(numeric.Zero), nil
}

func (c *Constant) compareSameKind(other node) int {
	o := other.(*Constant)
	switch {
	case c.serial < o.serial:
		return -1
	case c.serial > o.serial:
		return 1
	default:
		return 0
	}
}

func (c *Constant) has(target Handle) bool {
	return Equal(wrap(c), target)
}

// Evalf approximates c to the given bit precision, calling its
// evaluator if it has one, or converting its exact body otherwise. It
// fails with ErrDomain if c has neither.
func (c *Constant) Evalf(prec uint) (numeric.Number, error) {
	if c.evaluator != nil {
		return c.evaluator(prec)
	}
	if c.value != nil {
		return convertToFloatPrec(c.value, prec), nil
	}
	return nil, ErrDomain.New("constant " + c.name + " has no numeric approximation")
}

// convertToFloatPrec promotes v to a Float at the given precision by
// adding it to a zero Float: numeric.Add's promotion rule always
// carries out the operation at the higher-ranked kind, and Float
// outranks every exact kind, so the result is v itself, represented as
// a Float.
func convertToFloatPrec(v numeric.Number, prec uint) numeric.Number {
	f, err := numeric.Add(v, numeric.FloatFromFloat64(0, prec))
	if err != nil {
		return v
	}
	return f
}

var (
	constMu   sync.Mutex
	constants = map[string]*Constant{}
)

// NewConstantValue registers a named constant with a fixed exact body.
func NewConstantValue(name string, value numeric.Number) Handle {
	constMu.Lock()
	defer constMu.Unlock()
	c, ok := constants[name]
	if !ok {
		c = &Constant{name: name, value: value, serial: nextSerial()}
		constants[name] = c
	}
	return wrap(c)
}

// NewConstantEvaluator registers a named constant whose value is only
// available as a numeric approximation at a caller-chosen precision
// (e.g. pi, e).
func NewConstantEvaluator(name string, evaluator func(prec uint) (numeric.Number, error)) Handle {
	constMu.Lock()
	defer constMu.Unlock()
	c, ok := constants[name]
	if !ok {
		c = &Constant{name: name, evaluator: evaluator, serial: nextSerial()}
		constants[name] = c
	}
	return wrap(c)
}

// Name returns the constant's printed name.
func (c *Constant) Name() string { return c.name }

// IsConstant reports whether h is a named constant.
func (h Handle) IsConstant() bool {
	_, ok := h.n.(*Constant)
	return ok
}

// AsConstant returns h's underlying *Constant and true if h is one.
func (h Handle) AsConstant() (*Constant, bool) {
	c, ok := h.n.(*Constant)
	return c, ok
}
