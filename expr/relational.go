// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "gocas.dev/gocas/numeric"

// RelOp names a relational operator.
type RelOp int

const (
	RelEQ RelOp = iota
	RelNE
	RelLT
	RelLE
	RelGT
	RelGE
)

var relOpText = [...]string{"==", "!=", "<", "<=", ">", ">="}

func (op RelOp) String() string { return relOpText[op] }

type relationalNode struct {
	lhs, rhs Handle
	op       RelOp
}

// NewRelational builds a symbolic comparison lhs <op> rhs. When both
// sides are numeric and comparable (no complex operand with a nonzero
// imaginary part), it folds to the integer 1 or 0, the same
// true/false-as-a-number convention ivy's comparison operators use.
func NewRelational(lhs, rhs Handle, op RelOp) Handle {
	if lv, ok := lhs.Numeric(); ok {
		if rv, ok := rhs.Numeric(); ok {
			if b, ok := evalRelational(lv, rv, op); ok {
				return boolNumeric(b)
			}
		}
	}
	return wrap(relationalNode{lhs: lhs, rhs: rhs, op: op})
}

func boolNumeric(b bool) Handle {
	if b {
		return NewNumeric(numeric.One)
	}
	return NewNumeric(numeric.Zero)
}

func evalRelational(a, b numeric.Number, op RelOp) (bool, bool) {
	if op == RelEQ {
		return numeric.Equal(a, b), true
	}
	if op == RelNE {
		return !numeric.Equal(a, b), true
	}
	sign, ok := numeric.Cmp(a, b)
	if !ok {
		return false, false
	}
	switch op {
	case RelLT:
		return sign < 0, true
	case RelLE:
		return sign <= 0, true
	case RelGT:
		return sign > 0, true
	case RelGE:
		return sign >= 0, true
	}
	return false, false
}

func (r relationalNode) kind() Kind { return KindRelational }
func (r relationalNode) nops() int  { return 2 }
func (r relationalNode) op(i int) Handle {
	switch i {
	case 0:
		return r.lhs
	case 1:
		return r.rhs
	}
	panic(ErrRange.New("relational has two operands"))
}

func (r relationalNode) hash() uint64 {
	return mixHash(uint64(KindRelational), uint64(r.op), r.lhs.hash(), r.rhs.hash())
}

func (r relationalNode) text(precedence int) string {
	return r.lhs.n.text(precSum) + " " + r.op.String() + " " + r.rhs.n.text(precSum)
}

func (r relationalNode) evalSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	lhs, err := r.lhs.n.evalSelf(depth)
	if err != nil {
		return Handle{}, err
	}
	rhs, err := r.rhs.n.evalSelf(depth)
	if err != nil {
		return Handle{}, err
	}
	return NewRelational(lhs, rhs, r.op), nil
}

func (r relationalNode) expandSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	lhs, err := r.lhs.n.expandSelf(depth)
	if err != nil {
		return Handle{}, err
	}
	rhs, err := r.rhs.n.expandSelf(depth)
	if err != nil {
		return Handle{}, err
	}
	return NewRelational(lhs, rhs, r.op), nil
}

func (r relationalNode) substSelf(m *substitution, depth int) (Handle, error) {
	if to, ok := m.lookup(wrap(r)); ok {
		return to, nil
	}
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	lhs, err := r.lhs.n.substSelf(m, depth)
	if err != nil {
		return Handle{}, err
	}
	rhs, err := r.rhs.n.substSelf(m, depth)
	if err != nil {
		return Handle{}, err
	}
	return NewRelational(lhs, rhs, r.op), nil
}

func (r relationalNode) diffSelf(sym *Symbol, depth int) (Handle, error) {
	return NewFail("Derivative", []Handle{wrap(r), Sym(sym.name)}), nil
}

func (r relationalNode) compareSameKind(other node) int {
	o := other.(relationalNode)
	if r.op != o.op {
		return int(r.op) - int(o.op)
	}
	if c := Compare(r.lhs, o.lhs); c != 0 {
		return c
	}
	return Compare(r.rhs, o.rhs)
}

func (r relationalNode) has(target Handle) bool {
	return Equal(wrap(r), target) || r.lhs.Has(target) || r.rhs.Has(target)
}

// IsRelational reports whether h is a comparison.
func (h Handle) IsRelational() bool {
	_, ok := h.n.(relationalNode)
	return ok
}

// AsRelational returns h's operator, left, and right operands and true
// if h is a comparison.
func (h Handle) AsRelational() (op RelOp, lhs, rhs Handle, ok bool) {
	r, ok := h.n.(relationalNode)
	if !ok {
		return 0, Handle{}, Handle{}, false
	}
	return r.op, r.lhs, r.rhs, true
}

// Eq, Ne, Lt, Le, Gt, Ge build the corresponding relational.
func (h Handle) Eq(o Handle) Handle { return NewRelational(h, o, RelEQ) }
func (h Handle) Ne(o Handle) Handle { return NewRelational(h, o, RelNE) }
func (h Handle) Lt(o Handle) Handle { return NewRelational(h, o, RelLT) }
func (h Handle) Le(o Handle) Handle { return NewRelational(h, o, RelLE) }
func (h Handle) Gt(o Handle) Handle { return NewRelational(h, o, RelGT) }
func (h Handle) Ge(o Handle) Handle { return NewRelational(h, o, RelGE) }
