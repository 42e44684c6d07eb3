// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"
)

// IndexOf returns the index of the given node in the given slice,
// or -1 if it is not found. The optional startIndex argument
// allows for optimized bidirectional searching if you have a guess
// at where the node might be, which can be a key speedup for large
// slices.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	return findFunc(slice, func(e Node) bool { return e == child }, startIndex...)
}

// findFunc searches outward in both directions from startIndex,
// falling back on a linear scan when no start index is given.
func findFunc(slice []Node, match func(n Node) bool, startIndex ...int) int {
	n := len(slice)
	if n == 0 {
		return -1
	}
	if len(startIndex) == 0 {
		return slices.IndexFunc(slice, match)
	}
	st := min(max(startIndex[0], 0), n-1)
	for up, dn := st, st-1; up < n || dn >= 0; up, dn = up+1, dn-1 {
		if up < n && match(slice[up]) {
			return up
		}
		if dn >= 0 && match(slice[dn]) {
			return dn
		}
	}
	return -1
}
