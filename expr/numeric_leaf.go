// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "gocas.dev/gocas/numeric"

// numLeaf wraps a numeric.Number as a leaf node. It never appears
// inside a sum or product's operand list on its own — every
// canonicalizing constructor folds a bare numeric operand into the
// container's overall coefficient instead — but it is the node kind
// every other leaf (Symbol, Constant) reduces to once evaluated to a
// value, and it is what a Power's exponent and a Function's numeric
// arguments are made of.
type numLeaf struct {
	v numeric.Number
}

// NewNumeric wraps a numeric value as an expression leaf.
func NewNumeric(v numeric.Number) Handle {
	if v == nil {
		panic("expr: NewNumeric(nil)")
	}
	return wrap(numLeaf{v})
}

func (n numLeaf) kind() Kind  { return KindNumeric }
func (n numLeaf) hash() uint64 {
	return mixHash(uint64(KindNumeric), numeric.Hash(n.v))
}
func (n numLeaf) nops() int      { return 0 }
func (n numLeaf) op(i int) Handle { panic(ErrRange.New("numeric leaf has no operands")) }
func (n numLeaf) text(precedence int) string {
	s := n.v.String()
	if precedence > 0 && !n.v.IsPositive() && !n.v.IsZero() {
		return "(" + s + ")"
	}
	return s
}

func (n numLeaf) evalSelf(depth int) (Handle, error)   { return wrap(n), nil }
func (n numLeaf) expandSelf(depth int) (Handle, error) { return wrap(n), nil }

func (n numLeaf) substSelf(m *substitution, depth int) (Handle, error) {
	if to, ok := m.lookup(wrap(n)); ok {
		return to, nil
	}
	return wrap(n), nil
}

func (n numLeaf) diffSelf(sym *Symbol, depth int) (Handle, error) {
	return NewNumeric(numeric.Zero), nil
}

func (n numLeaf) compareSameKind(other node) int {
	return compareNumeric(n.v, other.(numLeaf).v)
}

func (n numLeaf) has(target Handle) bool {
	return Equal(wrap(n), target)
}

// IsNumeric reports whether h is a numeric leaf.
func (h Handle) IsNumeric() bool {
	_, ok := h.n.(numLeaf)
	return ok
}

// Numeric returns h's numeric value and true if h is a numeric leaf.
func (h Handle) Numeric() (numeric.Number, bool) {
	if l, ok := h.n.(numLeaf); ok {
		return l.v, true
	}
	return nil, false
}
