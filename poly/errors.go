// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly implements the polynomial normal-form layer: generator
// substitution, quotient/remainder/pseudo-remainder, content and
// primitive part, square-free decomposition, and GCD over the
// expression tree's numeric backend. It builds entirely on expr.Handle
// and numeric.Number; it never reaches past them into a representation
// of its own kind.
package poly

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

// Error kinds for the polynomial layer, modeled the same way the
// numeric and expr packages do: one *errors.Kind per failure class,
// constructed with .New at the failure site.
var (
	// ErrNotUnivariate is raised when FromExpr finds the target
	// generator inside what FromExpr is treating as a coefficient, or
	// when two polynomials built from different generators are
	// combined.
	ErrNotUnivariate = errors.NewKind("polynomial error: %s")

	// ErrZeroDivisor is raised by Quo/Rem/PseudoRem/Divide when the
	// divisor is the zero polynomial.
	ErrZeroDivisor = errors.NewKind("polynomial division by zero: %s")

	// ErrNotExactDivision is raised by Divide when the dividend is not
	// an exact multiple of the divisor.
	ErrNotExactDivision = errors.NewKind("inexact polynomial division: %s")
)
