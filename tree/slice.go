// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"

	"github.com/compositekit/composite/base/findfast"
)

// IndexOf returns the index of the given node in the given slice, compared
// by reference, or -1 if it is not found. The optional startIndex argument
// allows for optimized bidirectional searching if you have a guess at
// where the node might be, which can be a key speedup for large slices.
// If no value is specified for startIndex, it starts in the middle, which
// is a good default, but with duplicate entries it may reach a later
// occurrence; pass a startIndex of 0 when you need the first one.
func IndexOf(slice []Node, child Node, startIndex ...int) int {
	if child == nil {
		return -1
	}
	target := child
	if t := child.AsTree().This; t != nil {
		target = t
	}
	return findfast.FindFunc(slice, func(e Node) bool { return e == target }, startIndex...)
}

// IndexByName returns the index of a node in the given slice that has the
// given name, or -1 if none is found. See [IndexOf] for info on startIndex
// and which occurrence is found when names repeat.
func IndexByName(slice []Node, name string, startIndex ...int) int {
	return findfast.FindFunc(slice, func(e Node) bool { return e.AsTree().Name == name }, startIndex...)
}

// Move moves the element in the given slice at the given old position to
// the given new position and returns the resulting slice.
func Move[E any](s []E, from, to int) []E {
	temp := s[from]
	s = slices.Delete(s, from, from+1)
	s = slices.Insert(s, to, temp)
	return s
}

// Swap swaps the elements at the given two indices in the given slice.
func Swap[E any](s []E, i, j int) {
	s[i], s[j] = s[j], s[i]
}
