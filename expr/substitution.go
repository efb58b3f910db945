// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// substitution is a small from/to list, linearly scanned: substitution
// lists are typically a handful of entries (one variable, or a few
// simultaneous ones), so a map keyed by structural hash would be
// overkill machinery for no measurable gain.
type substitution struct {
	from, to []Handle
}

func (m *substitution) lookup(h Handle) (Handle, bool) {
	for i, f := range m.from {
		if Equal(f, h) {
			return m.to[i], true
		}
	}
	return Handle{}, false
}

// newSubstitution validates that from and to have matching lengths
// before any rewrite begins, per the invariant that a substitution is
// simultaneous: all of from is replaced in one bottom-up pass using the
// original tree's structure, not iteratively.
func newSubstitution(from, to []Handle) (*substitution, error) {
	if len(from) != len(to) {
		return nil, ErrInvalidArgument.New("substitution lists must have equal length")
	}
	return &substitution{from: from, to: to}, nil
}
