// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// mixHash combines a fixed, ordered sequence of sub-hashes (a node's
// kind tag plus its operands, in operand order) into one value, using
// the same splitmix64-style finalizer murmur/xxhash derivatives use.
func mixHash(parts ...uint64) uint64 {
	h := uint64(0xcbf29ce484222325) // FNV offset basis, reused as a seed
	for _, p := range parts {
		h ^= p
		h *= 0x100000001b3
		h ^= h >> 33
	}
	return h
}

// hashString FNV-1a hashes a short identifier (a function or field
// name) for inclusion in a node's structural hash.
func hashString(s string) uint64 {
	h := uint64(0xcbf29ce484222325)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 0x100000001b3
	}
	return h
}

// combineUnordered folds a set of sub-hashes into one value independent
// of their order, so that a sum or product's hash doesn't change when
// its canonicalization pipeline re-sorts the operand list. It is
// deliberately just a XOR-fold: good enough to bucket like terms, not a
// cryptographic property.
func combineUnordered(seed uint64, parts []uint64) uint64 {
	h := seed
	for _, p := range parts {
		h ^= mixHash(p, 0x9e3779b97f4a7c15)
	}
	return h
}
