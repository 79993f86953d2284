// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

// This file provides tree walking functions for deep traversal. The
// [Container.ChildNodes] sequence is shallow; these visit whole subtrees
// in a single, deterministic, depth-first left-to-right order.

const (
	// Continue = true can be returned from tree walking functions to
	// continue processing down the tree, as compared to [Break] = false,
	// which stops processing this branch.
	Continue = true

	// Break = false can be returned from tree walking functions to stop
	// processing this branch of the tree.
	Break = false
)

// WalkDown calls the given function on the node and all of its children in
// a depth-first pre-order manner: parents are visited before their
// children, left to right. It stops walking the current branch if the
// function returns [Break] and keeps walking if it returns [Continue].
// Shared children are visited once per occurrence.
func WalkDown(n Node, fun func(n Node) bool) {
	if n == nil {
		return
	}
	if t := n.AsTree().This; t != nil {
		n = t
	}
	if !fun(n) {
		return
	}
	c, ok := n.(Container)
	if !ok {
		return
	}
	for child := range c.ChildNodes() {
		WalkDown(child, fun)
	}
}

// WalkDownPost iterates depth-first over the children, calling
// shouldContinue on each node to test whether that branch should be
// processed at all, and then calls the given function only after all of a
// node's children have been iterated over, so deeper nodes are visited
// first.
func WalkDownPost(n Node, shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n == nil {
		return
	}
	if t := n.AsTree().This; t != nil {
		n = t
	}
	if !shouldContinue(n) {
		return
	}
	if c, ok := n.(Container); ok {
		for child := range c.ChildNodes() {
			WalkDownPost(child, shouldContinue, fun)
		}
	}
	fun(n)
}

// WalkDownBreadth calls the given function on the node and all of its
// children in breadth-first order: all nodes at one depth are visited
// before any node at the next. It stops walking the current branch if the
// function returns [Break] and keeps walking if it returns [Continue].
func WalkDownBreadth(n Node, fun func(n Node) bool) {
	if n == nil {
		return
	}
	if t := n.AsTree().This; t != nil {
		n = t
	}
	queue := []Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !fun(cur) {
			continue
		}
		if c, ok := cur.(Container); ok {
			for child := range c.ChildNodes() {
				queue = append(queue, child)
			}
		}
	}
}
