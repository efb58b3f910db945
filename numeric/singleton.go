// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

// Process-wide numeric singletons, avoiding allocation on the hot path
// the way ivy's value package keeps zero/one/minusOne package-level.
var (
	Zero      = IntegerFromInt64(0)
	One       = IntegerFromInt64(1)
	MinusOne  = IntegerFromInt64(-1)
	Two       = IntegerFromInt64(2)
	Three     = IntegerFromInt64(3)
	Half      = RationalFromInt64s(1, 2)
	MinusHalf = RationalFromInt64s(-1, 2)
)
