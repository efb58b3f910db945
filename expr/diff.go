// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Diff differentiates h with respect to the symbol sym, dispatching to
// each node kind's own diffSelf (sum/product rules in expairseq.go, the
// logarithmic-derivative rule in power.go, registered function rules in
// function.go). A function with no registered derivative shows up as
// an unresolved Derivative(...) placeholder rather than an error.
func Diff(h, sym Handle) (Handle, error) {
	s, ok := sym.AsSymbol()
	if !ok {
		return Handle{}, ErrInvalidArgument.New("differentiation variable must be a symbol")
	}
	return h.n.diffSelf(s, 0)
}

// DiffN differentiates h with respect to sym n times.
func DiffN(h, sym Handle, n int) (Handle, error) {
	if n < 0 {
		return Handle{}, ErrInvalidArgument.New("derivative order must be non-negative")
	}
	cur := h
	for i := 0; i < n; i++ {
		var err error
		cur, err = Diff(cur, sym)
		if err != nil {
			return Handle{}, err
		}
	}
	return cur, nil
}

// Diff is h differentiated with respect to sym; see the package-level
// Diff.
func (h Handle) Diff(sym Handle) (Handle, error) {
	return Diff(h, sym)
}
