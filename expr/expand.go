// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Expand distributes products over sums and multinomial powers
// throughout h, bottom-up.
func Expand(h Handle) (Handle, error) {
	return h.n.expandSelf(0)
}

// Expand is h with products distributed over sums; see the
// package-level Expand.
func (h Handle) Expand() (Handle, error) {
	return Expand(h)
}
