// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Eval re-simplifies h bottom-up: every canonicalizing constructor in
// this package already keeps its result fully simplified, so Eval is
// mainly useful after a raw tree has been rebuilt by hand (e.g. by
// archive.Unarchive) or to re-fold a subtree whose children changed
// through some path that bypassed the constructors.
func Eval(h Handle) (Handle, error) {
	return h.n.evalSelf(0)
}

// Eval is h re-simplified; see the package-level Eval.
func (h Handle) Eval() (Handle, error) {
	return Eval(h)
}
