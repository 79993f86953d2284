// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "github.com/cockroachdb/errors"

// Node kinds used by the [Plan] codec.
const (
	KindLeaf      = "leaf"
	KindComposite = "composite"
	KindDecorator = "decorator"
)

// Plan is a declarative description of a tree. It is the serialized form
// used by the JSON and YAML codecs: each plan records the kind of node it
// describes, its name and kind-specific payload, and the plans for its
// children. [Plan.Build] produces the node tree a plan describes, and
// [PlanFor] produces the plan describing an existing tree.
type Plan struct {
	Kind     string  `json:"kind" yaml:"kind"`
	Name     string  `json:"name,omitempty" yaml:"name,omitempty"`
	Text     string  `json:"text,omitempty" yaml:"text,omitempty"`
	Before   string  `json:"before,omitempty" yaml:"before,omitempty"`
	After    string  `json:"after,omitempty" yaml:"after,omitempty"`
	Children []*Plan `json:"children,omitempty" yaml:"children,omitempty"`
}

// Build constructs the node tree this plan describes. It returns an error
// for an unknown kind, for a leaf plan with children, or if wiring the
// children fails.
func (p *Plan) Build() (Node, error) {
	switch p.Kind {
	case KindLeaf:
		if len(p.Children) > 0 {
			return nil, errors.Newf("tree: leaf plan %q cannot have children", p.Name)
		}
		l := NewLeaf(p.Text)
		l.Name = p.Name
		return l, nil
	case KindComposite:
		c := NewComposite(p.Name)
		return c, p.buildChildren(c)
	case KindDecorator:
		d := NewDecorator(p.Before, p.After)
		d.Name = p.Name
		return d, p.buildChildren(d)
	default:
		return nil, errors.Newf("tree: unknown node kind %q", p.Kind)
	}
}

func (p *Plan) buildChildren(c Container) error {
	for _, cp := range p.Children {
		child, err := cp.Build()
		if err != nil {
			return err
		}
		if err := c.AddChild(child); err != nil {
			return err
		}
	}
	return nil
}

// PlanFor returns the plan describing the given node tree. It returns an
// error for node types outside the built-in kinds.
func PlanFor(n Node) (*Plan, error) {
	if t := n.AsTree().This; t != nil {
		n = t
	}
	p := &Plan{Name: n.AsTree().Name}
	switch nt := n.(type) {
	case *Leaf:
		p.Kind = KindLeaf
		p.Text = nt.Text
	case *Composite:
		p.Kind = KindComposite
	case *Decorator:
		p.Kind = KindDecorator
		p.Before = nt.Before
		p.After = nt.After
	default:
		return nil, errors.Newf("tree: no plan encoding for node type %T", n)
	}
	c, ok := n.(Container)
	if !ok {
		return p, nil
	}
	for child := range c.ChildNodes() {
		cp, err := PlanFor(child)
		if err != nil {
			return nil, err
		}
		p.Children = append(p.Children, cp)
	}
	return p, nil
}
