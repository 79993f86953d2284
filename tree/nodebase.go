// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"io"
	"log/slog"
	"reflect"

	"github.com/cockroachdb/errors"
	"github.com/jinzhu/copier"
)

// NodeBase implements the [Node] interface and provides the base
// functionality that all node types build on. Higher-level node types must
// use NodeBase as an embedded struct.
//
// NodeBase itself implements the shared operations as failures: its
// [NodeBase.Perform] returns [ErrUnsupported]. Each variant overrides the
// operations it actually supports, so a capability that a variant does not
// define fails loudly instead of silently doing nothing.
type NodeBase struct {

	// Name is the name of this node. It is optional for leaves, which
	// carry their payload separately, but it is used for finding nodes
	// (see [Composite.ChildByName]) and is preserved by the [Plan] codec.
	Name string

	// This is the value of this node as its true underlying type. It lets
	// methods defined on base types see the outermost type, which is
	// necessary for reference-identity comparisons and cloning to work
	// through struct embedding. It is set by the New* constructors; nodes
	// built as struct literals are initialized lazily by the child
	// operations that receive them.
	This Node `copier:"-" json:"-"`
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// SetName sets the name of the node.
func (n *NodeBase) SetName(name string) {
	n.Name = name
}

// String implements the [fmt.Stringer] interface by returning the name of
// the node, or its type when it has no name.
func (n *NodeBase) String() string {
	if n == nil {
		return "nil"
	}
	if n.Name != "" {
		return n.Name
	}
	if n.This != nil {
		return reflect.TypeOf(n.This).Elem().Name()
	}
	return "NodeBase"
}

// Perform implements [Node.Perform] by returning [ErrUnsupported]: the
// base abstraction performs nothing, and every variant supplies its own
// behavior.
func (n *NodeBase) Perform(w io.Writer) error {
	return errors.Wrapf(ErrUnsupported, "perform on %v", n)
}

// NewInstance returns a new zero instance of this node's underlying type.
// The node must have been initialized.
func (n *NodeBase) NewInstance() Node {
	if n.This == nil {
		return nil
	}
	return reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
}

// Clone creates and returns a deep copy of the tree from this node down.
// Payload fields are copied with [copier] honoring `copier:"-"` struct
// tags, and children are cloned recursively, so nodes shared in the source
// become independent copies in the result.
func (n *NodeBase) Clone() Node {
	if n.This == nil {
		slog.Error("tree.NodeBase.Clone: node is not initialized", "name", n.Name)
		return nil
	}
	nc := initNode(n.NewInstance())
	copyFrom(nc, n.This)
	return nc
}

// copyFrom copies the payload fields and then the children of from to to.
func copyFrom(to, from Node) {
	err := copier.CopyWithOption(to.AsTree().This, from.AsTree().This,
		copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.copyFrom: field copy failed", "err", err)
	}
	fc, ok := from.(Container)
	if !ok {
		return
	}
	tc, ok := to.(Container)
	if !ok {
		return
	}
	for child := range fc.ChildNodes() {
		kid := child.AsTree().Clone()
		if kid == nil {
			continue
		}
		if err := tc.AddChild(kid); err != nil {
			slog.Error("tree.copyFrom: adding cloned child failed", "err", err)
		}
	}
}

// initNode ensures that the [NodeBase.This] self-reference of the given
// node is set, and returns it. The New* constructors set This eagerly;
// this covers nodes built as struct literals.
func initNode(n Node) Node {
	nb := n.AsTree()
	if nb.This == nil {
		nb.This = n
	}
	return nb.This
}
