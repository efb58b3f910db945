// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

// This package's error taxonomy, one *errors.Kind per class, following
// the same pattern as gocas.dev/gocas/numeric's ErrArithmetic. Callers
// that need to classify an arithmetic failure surfaced through expr
// (e.g. division by literal zero) match against numeric.ErrArithmetic
// directly rather than a re-exported alias.
var (
	// ErrDomain: a polynomial operation called with non-polynomial
	// arguments, or a relational used where a scalar is required.
	ErrDomain = errors.NewKind("domain error: %s")

	// ErrRange: index out of bounds for Op(i), matrix element access.
	// The archive package reports an atom or node id outside its table
	// with its own archive.ErrCorrupt, not with this kind.
	ErrRange = errors.NewKind("range error: %s")

	// ErrInvalidArgument: substitution list of mismatched lengths,
	// constructing a function node with the wrong arity.
	ErrInvalidArgument = errors.NewKind("invalid argument: %s")

	// ErrRuntime: recursion limit exceeded. Unarchive failures are
	// reported with the archive package's own kinds (ErrFormat,
	// ErrVersion, ErrUnsupported, ErrCorrupt), not with this kind.
	ErrRuntime = errors.NewKind("runtime error: %s")
)
