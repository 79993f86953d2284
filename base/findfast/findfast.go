// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package findfast implements an optimized bidirectional slice searching
// algorithm that can save a lot of time if you have some rough idea as to
// where an item might be.
package findfast

// FindFunc returns the index of the item in the slice that matches the
// given match function, using the given optional starting index to
// optimize the search by scanning bidirectionally outward from it. If no
// starting index is given, it starts in the middle. Returns -1 if no item
// matches.
func FindFunc[T any](s []T, match func(e T) bool, startIndex ...int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	si := n / 2
	if len(startIndex) > 0 && startIndex[0] >= 0 {
		si = min(startIndex[0], n-1)
	}
	if si == 0 {
		for i, e := range s {
			if match(e) {
				return i
			}
		}
		return -1
	}
	up, down := si+1, si
	for down >= 0 || up < n {
		if down >= 0 {
			if match(s[down]) {
				return down
			}
			down--
		}
		if up < n {
			if match(s[up]) {
				return up
			}
			up++
		}
	}
	return -1
}
