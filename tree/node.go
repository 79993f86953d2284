// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides a composite tree system, centered on the core
// [Node] interface. Terminal [Leaf] nodes and container [Composite] nodes
// (including the marker-framing [Decorator]) are all performed through the
// same uniform operation, so a whole hierarchy runs with a single call.
//
// Container nodes own their child sequence, but the children themselves
// are borrowed references: the same node may legally appear under several
// containers, and no parent back-reference is kept. The child operations
// reject additions that would make a node contain itself.
package tree

import (
	"io"
	"iter"

	"github.com/cockroachdb/errors"
)

// ErrUnsupported is returned when an operation is invoked on a node kind
// that does not implement it. The base abstraction implements every shared
// operation as a failure with this error, so each variant must supply its
// own behavior.
var ErrUnsupported = errors.New("tree: operation not supported by node kind")

// ErrCycle is returned when adding a child would make a container contain
// itself, directly or through intermediate children.
var ErrCycle = errors.New("tree: child would create a cycle")

// Node is the interface that all tree nodes satisfy. The core
// functionality is defined on [NodeBase], which all node types must embed.
// You can call [Node.AsTree] to get the [NodeBase] of any Node.
type Node interface {

	// AsTree returns the [NodeBase] of this Node.
	AsTree() *NodeBase

	// Perform runs the node's operation, writing any output to w.
	// A [Leaf] acts directly on its payload. A [Composite] delegates to
	// each of its children sequentially, in insertion order, so its output
	// is the concatenation of the children's output. A [Decorator]
	// additionally frames the delegation with its fixed markers.
	Perform(w io.Writer) error
}

// Container is the interface satisfied by nodes that hold children.
// [Composite] and [Decorator] satisfy it; [Leaf] deliberately does not,
// so child operations simply do not exist on leaves.
type Container interface {
	Node

	// AddChild appends the given child at the end of the children list.
	AddChild(child Node) error

	// InsertChild adds the given child at the given position in the
	// children list.
	InsertChild(child Node, index int) error

	// RemoveChild removes the first child equal by reference to the given
	// node, reporting whether one was found.
	RemoveChild(child Node) bool

	// ChildNodes returns a restartable sequence over the direct children
	// only; it does not descend into grandchildren.
	ChildNodes() iter.Seq[Node]
}
