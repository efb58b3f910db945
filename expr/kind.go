// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package expr is the expression kernel: the handle type and the
// tagged node hierarchy of a small symbolic algebra system, built over
// the numeric backend in gocas.dev/gocas/numeric.
//
// Structurally this plays the role ivy's value package plays for its
// APL values: a small closed set of node kinds, a total order used
// both for canonicalization and structural equality, and a handle type
// through which every user-facing operation is routed. Where ivy
// dispatches on a Go type switch over Int/BigInt/BigRat/Vector/Matrix,
// expr dispatches on an explicit Kind tag over a single envelope type:
// a class hierarchy with a dozen virtual-dispatch subclasses collapses
// into one tagged sum type.
package expr // import "gocas.dev/gocas/expr"

// Kind tags every node variant this package supports.
type Kind int

const (
	KindNumeric Kind = iota
	KindSymbol
	KindConstant
	KindSum
	KindProduct
	KindNCProduct
	KindPower
	KindFunction
	KindList
	KindTuple
	KindMatrix
	KindRelational
	KindSeries
	KindFail
)

var kindNames = [...]string{
	KindNumeric:    "numeric",
	KindSymbol:     "symbol",
	KindConstant:   "constant",
	KindSum:        "sum",
	KindProduct:    "product",
	KindNCProduct:  "ncproduct",
	KindPower:      "power",
	KindFunction:   "function",
	KindList:       "list",
	KindTuple:      "tuple",
	KindMatrix:     "matrix",
	KindRelational: "relational",
	KindSeries:     "series",
	KindFail:       "fail",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// order fixes the kind-tag comparison rule used to order unlike nodes:
// a plain fixed integer order over Kind itself. Finer ordering within a
// shared kind (e.g. sorting a sum's own terms) is handled by
// compareSameKind instead — see compare.go.
func (k Kind) order() int {
	return int(k)
}
