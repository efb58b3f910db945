// Package archive implements the kernel's binary save format: a
// compact, de-duplicated encoding of an expr.Handle tree as three
// tables (atoms, nodes, and each node's property bag), framed by a
// magic header and a version byte.
package archive

import (
	errors "gopkg.in/src-d/go-errors.v1"
)

// Error kinds for the archive layer, one *errors.Kind per failure
// class, matching the pattern expr and poly use.
var (
	// ErrFormat: bad magic, truncated stream, malformed varint.
	ErrFormat = errors.NewKind("archive format error: %s")

	// ErrVersion: the stream's version byte is outside the window of
	// versions this build still reads.
	ErrVersion = errors.NewKind("archive version error: %s")

	// ErrUnsupported: a node kind with no archive encoding (currently
	// non-commutative products and series expansions).
	ErrUnsupported = errors.NewKind("archive unsupported: %s")

	// ErrCorrupt: an internal reference (atom id, node id) points
	// outside its table.
	ErrCorrupt = errors.NewKind("archive corrupt: %s")
)
