// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/compositekit/composite/tree"
)

func TestLeafPerform(t *testing.T) {
	l := NewLeaf("hello")
	b := &strings.Builder{}
	require.NoError(t, l.Perform(b))
	assert.Equal(t, "hello\n", b.String())
}

func TestLeafPerformIdempotent(t *testing.T) {
	l := NewLeaf("hello")
	for range 3 {
		b := &strings.Builder{}
		require.NoError(t, l.Perform(b))
		assert.Equal(t, "hello\n", b.String())
	}
}

func TestNodeBasePerformUnsupported(t *testing.T) {
	n := &NodeBase{Name: "base"}
	err := n.Perform(io.Discard)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestCompositePerformOrder(t *testing.T) {
	c := NewComposite("greeting")
	require.NoError(t, c.AddChild(NewLeaf("hello")))
	require.NoError(t, c.AddChild(NewLeaf("world")))
	b := &strings.Builder{}
	require.NoError(t, c.Perform(b))
	assert.Equal(t, "hello\nworld\n", b.String())
}

func TestCompositeInsertChild(t *testing.T) {
	c := NewComposite()
	require.NoError(t, c.AddChild(NewLeaf("world")))
	require.NoError(t, c.InsertChild(NewLeaf("hello"), 0))
	b := &strings.Builder{}
	require.NoError(t, c.Perform(b))
	assert.Equal(t, "hello\nworld\n", b.String())

	assert.Error(t, c.InsertChild(NewLeaf("x"), 5))
	assert.Error(t, c.InsertChild(NewLeaf("x"), -1))
	assert.Error(t, c.AddChild(nil))
	assert.Equal(t, 2, c.NumChildren())
}

func TestCompositeRemoveChild(t *testing.T) {
	c := NewComposite()
	hello := NewLeaf("hello")
	world := NewLeaf("world")
	require.NoError(t, c.AddChild(hello))
	require.NoError(t, c.AddChild(world))

	assert.True(t, c.RemoveChild(world))
	b := &strings.Builder{}
	require.NoError(t, c.Perform(b))
	assert.Equal(t, "hello\n", b.String())

	// removal is by reference, not by value
	assert.False(t, c.RemoveChild(world))
	assert.False(t, c.RemoveChild(NewLeaf("hello")))
	assert.False(t, c.RemoveChild(nil))
	assert.True(t, c.RemoveChild(hello))
	assert.False(t, c.HasChildren())
}

func TestCompositeRemoveChildByName(t *testing.T) {
	c := NewComposite()
	kid := NewComposite("inner")
	require.NoError(t, c.AddChild(kid))
	assert.False(t, c.RemoveChildByName("outer"))
	assert.True(t, c.RemoveChildByName("inner"))
	assert.Equal(t, 0, c.NumChildren())

	// with repeated names the first occurrence is the one removed
	first := NewComposite("dup")
	second := NewComposite("dup")
	require.NoError(t, c.AddChild(first))
	require.NoError(t, c.AddChild(second))
	assert.True(t, c.RemoveChildByName("dup"))
	assert.Equal(t, Node(second), c.Child(0))
}

func TestCompositeDuplicateChild(t *testing.T) {
	c := NewComposite()
	a := NewLeaf("a")
	other := NewLeaf("b")
	require.NoError(t, c.AddChild(a))
	require.NoError(t, c.AddChild(other))
	require.NoError(t, c.AddChild(a))
	b := &strings.Builder{}
	require.NoError(t, c.Perform(b))
	assert.Equal(t, "a\nb\na\n", b.String())

	// removal deletes the first occurrence, so the trailing one survives
	assert.True(t, c.RemoveChild(a))
	b.Reset()
	require.NoError(t, c.Perform(b))
	assert.Equal(t, "b\na\n", b.String())

	assert.True(t, c.RemoveChild(a))
	assert.Equal(t, 1, c.NumChildren())
	assert.False(t, c.RemoveChild(a))
}

func TestCompositeSharedChild(t *testing.T) {
	shared := NewLeaf("shared")
	left := NewComposite("left")
	right := NewComposite("right")
	require.NoError(t, left.AddChild(shared))
	require.NoError(t, right.AddChild(shared))
	root := NewComposite("root")
	require.NoError(t, root.AddChild(left))
	require.NoError(t, root.AddChild(right))

	b := &strings.Builder{}
	require.NoError(t, root.Perform(b))
	assert.Equal(t, "shared\nshared\n", b.String())
}

func TestCompositeCycleGuard(t *testing.T) {
	c := NewComposite("self")
	assert.ErrorIs(t, c.AddChild(c), ErrCycle)

	a := NewComposite("a")
	b := NewComposite("b")
	require.NoError(t, a.AddChild(b))
	assert.ErrorIs(t, b.AddChild(a), ErrCycle)

	d := NewDecorator("<", ">")
	assert.ErrorIs(t, d.AddChild(d), ErrCycle)
}

func TestCompositeMoveChild(t *testing.T) {
	c := NewComposite()
	for _, s := range []string{"a", "b", "c"} {
		require.NoError(t, c.AddChild(NewLeaf(s)))
	}
	assert.True(t, c.MoveChild(2, 0))
	b := &strings.Builder{}
	require.NoError(t, c.Perform(b))
	assert.Equal(t, "c\na\nb\n", b.String())

	assert.False(t, c.MoveChild(3, 0))
	assert.False(t, c.MoveChild(0, -1))

	assert.True(t, c.SwapChildren(0, 2))
	b.Reset()
	require.NoError(t, c.Perform(b))
	assert.Equal(t, "b\na\nc\n", b.String())
	assert.False(t, c.SwapChildren(0, 3))
}

func TestCompositeClear(t *testing.T) {
	c := NewComposite()
	require.NoError(t, c.AddChild(NewLeaf("a")))
	require.NoError(t, c.AddChild(NewLeaf("b")))
	c.Clear()
	assert.False(t, c.HasChildren())
	b := &strings.Builder{}
	require.NoError(t, c.Perform(b))
	assert.Empty(t, b.String())
}

func TestCompositeChildAccess(t *testing.T) {
	c := NewComposite()
	first := NewComposite("first")
	second := NewComposite("second")
	require.NoError(t, c.AddChild(first))
	require.NoError(t, c.AddChild(second))

	assert.Equal(t, Node(first), c.Child(0))
	assert.Nil(t, c.Child(2))
	assert.Nil(t, c.Child(-1))
	assert.Equal(t, Node(second), c.ChildByName("second"))
	assert.Nil(t, c.ChildByName("third"))
	assert.Equal(t, 1, IndexOf(c.Children, second))
	assert.Equal(t, 1, IndexOf(c.Children, second, 0))
	assert.Equal(t, -1, IndexByName(c.Children, "third"))
}

func TestChildNodesRestartable(t *testing.T) {
	c := NewComposite()
	require.NoError(t, c.AddChild(NewLeaf("a")))
	require.NoError(t, c.AddChild(NewLeaf("b")))
	require.NoError(t, c.AddChild(NewLeaf("c")))

	collect := func() []string {
		var texts []string
		for child := range c.ChildNodes() {
			texts = append(texts, child.(*Leaf).Text)
		}
		return texts
	}
	first := collect()
	assert.Equal(t, []string{"a", "b", "c"}, first)
	assert.Equal(t, first, collect())

	// early break stops the sequence without affecting the children
	count := 0
	for range c.ChildNodes() {
		count++
		break
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, 3, c.NumChildren())
}

func TestDecoratorPerform(t *testing.T) {
	d := NewDecorator("<<<", ">>>")
	first := NewComposite("first")
	require.NoError(t, first.AddChild(NewLeaf("hello")))
	require.NoError(t, first.AddChild(NewLeaf("world")))
	second := NewComposite("second")
	require.NoError(t, second.AddChild(NewLeaf("lorem")))
	require.NoError(t, second.AddChild(NewLeaf("ipsum")))
	require.NoError(t, d.AddChild(first))
	require.NoError(t, d.AddChild(second))

	b := &strings.Builder{}
	require.NoError(t, d.Perform(b))
	assert.Equal(t, "<<<\nhello\nworld\nlorem\nipsum\n>>>\n", b.String())
}

func TestDecoratorNested(t *testing.T) {
	outer := NewDecorator("(", ")")
	inner := NewDecorator("[", "]")
	require.NoError(t, inner.AddChild(NewLeaf("x")))
	require.NoError(t, outer.AddChild(inner))

	b := &strings.Builder{}
	require.NoError(t, outer.Perform(b))
	assert.Equal(t, "(\n[\nx\n]\n)\n", b.String())
}

func TestClone(t *testing.T) {
	d := NewDecorator("<<<", ">>>")
	d.SetName("scene")
	c := NewComposite("inner")
	require.NoError(t, c.AddChild(NewLeaf("hello")))
	require.NoError(t, d.AddChild(c))

	clone := d.AsTree().Clone()
	require.NotNil(t, clone)
	dc, ok := clone.(*Decorator)
	require.True(t, ok)
	assert.Equal(t, "scene", dc.Name)
	assert.Equal(t, "<<<", dc.Before)

	// the clone is independent of the original
	require.NoError(t, c.AddChild(NewLeaf("world")))
	ob := &strings.Builder{}
	require.NoError(t, d.Perform(ob))
	cb := &strings.Builder{}
	require.NoError(t, clone.Perform(cb))
	assert.Equal(t, "<<<\nhello\nworld\n>>>\n", ob.String())
	assert.Equal(t, "<<<\nhello\n>>>\n", cb.String())
}

func TestNodeBaseString(t *testing.T) {
	assert.Equal(t, "nil", (*NodeBase)(nil).String())
	assert.Equal(t, "named", NewComposite("named").AsTree().String())
	assert.Equal(t, "Leaf", NewLeaf("x").AsTree().String())
}
