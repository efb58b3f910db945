// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

// fnvBytes folds b into a 64-bit FNV-1a hash, used by every kind's
// hashBits to feed the order-independent structural hash a sum or
// product container computes over its operands.
func fnvBytes(b []byte) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	h := uint64(offset)
	for _, c := range b {
		h ^= uint64(c)
		h *= prime
	}
	return h
}

func fnvString(s string) uint64 {
	return fnvBytes([]byte(s))
}
