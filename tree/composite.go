// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"io"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"
)

// Composite is a container node holding an ordered sequence of children.
// Performing it delegates sequentially, in insertion order, to each
// child's Perform, so its output is the concatenation of the children's
// output. Duplicate and shared children are permitted.
type Composite struct {
	NodeBase

	// Children is the ordered list of children of this node. You can read
	// it directly, but you should use the child operations to modify it so
	// that the cycle guard stays effective. The list is excluded from
	// field copying; [NodeBase.Clone] clones children recursively instead.
	Children []Node `copier:"-"`
}

// NewComposite returns a new [Composite] with the given optional name.
func NewComposite(name ...string) *Composite {
	c := &Composite{}
	c.This = c
	if len(name) > 0 {
		c.Name = name[0]
	}
	return c
}

// self returns the identity of this composite as its outermost type,
// which differs from c for types embedding Composite, such as [Decorator].
func (c *Composite) self() Node {
	return initNode(c)
}

// Perform delegates to each child in insertion order.
func (c *Composite) Perform(w io.Writer) error {
	for _, child := range c.Children {
		if err := child.Perform(w); err != nil {
			return err
		}
	}
	return nil
}

// HasChildren returns whether this node has any children.
func (c *Composite) HasChildren() bool {
	return len(c.Children) > 0
}

// NumChildren returns the number of children this node has.
func (c *Composite) NumChildren() int {
	return len(c.Children)
}

// Child returns the child of this node at the given index and returns nil
// if the index is out of range.
func (c *Composite) Child(i int) Node {
	if i >= len(c.Children) || i < 0 {
		return nil
	}
	return c.Children[i]
}

// ChildByName returns a child that has the given name, and nil if no such
// node is found. The optional startIndex arg allows for an optimized
// bidirectional find if you have an idea where it might be; see [IndexOf]
// for which occurrence is found when names repeat.
func (c *Composite) ChildByName(name string, startIndex ...int) Node {
	return c.Child(IndexByName(c.Children, name, startIndex...))
}

// ChildNodes returns a restartable sequence over the direct children of
// this node, in insertion order. It does not descend into grandchildren;
// see [WalkDown] for deep traversal.
func (c *Composite) ChildNodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, child := range c.Children {
			if !yield(child) {
				return
			}
		}
	}
}

// AddChild adds the given child at the end of the children list. The child
// is a borrowed reference: it may simultaneously live under other
// containers, and adding the same child twice is allowed. Adding a child
// whose subtree contains this node returns [ErrCycle].
func (c *Composite) AddChild(child Node) error {
	return c.InsertChild(child, len(c.Children))
}

// InsertChild adds the given child at the given position in the children
// list, subject to the same rules as [Composite.AddChild].
func (c *Composite) InsertChild(child Node, index int) error {
	if child == nil {
		return errors.Newf("tree: nil child added to %v", &c.NodeBase)
	}
	if index < 0 || index > len(c.Children) {
		return errors.Newf("tree: child index %d out of range on %v", index, &c.NodeBase)
	}
	kid := initNode(child)
	if containsNode(kid, c.self()) {
		return errors.Wrapf(ErrCycle, "adding %v to %v", child.AsTree(), &c.NodeBase)
	}
	c.Children = slices.Insert(c.Children, index, kid)
	return nil
}

// RemoveChild removes the first child equal by reference to the given
// node, reporting whether one was found. The removed node is not
// destroyed; it may still live under other containers.
func (c *Composite) RemoveChild(child Node) bool {
	if child == nil {
		return false
	}
	// scan from 0 so the first occurrence is the one removed
	return c.RemoveChildAt(IndexOf(c.Children, child, 0))
}

// RemoveChildAt removes the child at the given index. It returns false if
// there is no child at the given index.
func (c *Composite) RemoveChildAt(index int) bool {
	if index < 0 || index >= len(c.Children) {
		return false
	}
	c.Children = slices.Delete(c.Children, index, index+1)
	return true
}

// RemoveChildByName removes the first child with the given name, reporting
// whether one was found.
func (c *Composite) RemoveChildByName(name string) bool {
	// scan from 0 so the first occurrence is the one removed
	return c.RemoveChildAt(IndexByName(c.Children, name, 0))
}

// MoveChild moves the child at the given old position to the given new
// position, reporting whether both positions were in range. All other
// children keep their relative order.
func (c *Composite) MoveChild(from, to int) bool {
	n := len(c.Children)
	if from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	c.Children = Move(c.Children, from, to)
	return true
}

// SwapChildren swaps the children at the given two positions, reporting
// whether both positions were in range.
func (c *Composite) SwapChildren(i, j int) bool {
	n := len(c.Children)
	if i < 0 || i >= n || j < 0 || j >= n {
		return false
	}
	Swap(c.Children, i, j)
	return true
}

// Clear removes all children, preserving the capacity of the list.
func (c *Composite) Clear() {
	c.Children = c.Children[:0]
}

// containsNode reports whether the subtree rooted at root contains the
// given target node, by reference.
func containsNode(root, target Node) bool {
	found := false
	WalkDown(root, func(n Node) bool {
		if n == target {
			found = true
			return Break
		}
		return Continue
	})
	return found
}
