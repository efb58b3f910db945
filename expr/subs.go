// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Subs performs simultaneous substitution of from[i] by to[i] throughout
// h, bottom-up, rebuilding through the canonicalizing constructors so
// the result is already in canonical form. from and to must have equal
// length.
func Subs(h Handle, from, to []Handle) (Handle, error) {
	m, err := newSubstitution(from, to)
	if err != nil {
		return Handle{}, err
	}
	return h.n.substSelf(m, 0)
}

// Subs1 substitutes a single from/to pair; a convenience wrapper over
// Subs for the overwhelmingly common one-variable case.
func Subs1(h, from, to Handle) (Handle, error) {
	return Subs(h, []Handle{from}, []Handle{to})
}

// Subs is h with from[i] replaced by to[i]; see the package-level Subs.
func (h Handle) Subs(from, to []Handle) (Handle, error) {
	return Subs(h, from, to)
}
