// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

// Error kinds for the numeric backend: this is the only layer that
// raises arithmetic errors, since every higher layer routes numeric
// operands through it. Modeled on go-mysql-server's auth package,
// which defines one *errors.Kind per failure class and constructs it
// with .New at the failure site.
var (
	// ErrArithmetic covers division by exact zero, integer root of a
	// negative number in a real-only context, and overflow in bounded
	// representations.
	ErrArithmetic = errors.NewKind("arithmetic error: %s")

	// errDomain covers conversions between numeric kinds that would be
	// silently lossy (e.g. complex-with-imaginary-part -> real).
	errDomain = errors.NewKind("domain error: %s")

	// errMixedComplexFloat is raised when a complex number with a
	// nonzero imaginary part is combined with a float; gocas does not
	// implement a complex-float kind.
	errMixedComplexFloat = errors.NewKind("cannot mix complex number %v with float kind %v")
)
