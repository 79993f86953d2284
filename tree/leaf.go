// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Leaf is a terminal node. It never has children, and performing it writes
// exactly one line equal to its payload text. Repeated performs produce
// the same output each time; a Leaf has no mutable state.
type Leaf struct {
	NodeBase

	// Text is the payload written by [Leaf.Perform].
	// It is fixed at construction.
	Text string
}

// NewLeaf returns a new [Leaf] with the given payload text.
func NewLeaf(text string) *Leaf {
	l := &Leaf{Text: text}
	l.This = l
	return l
}

// Perform writes one line containing the payload text.
func (l *Leaf) Perform(w io.Writer) error {
	if _, err := fmt.Fprintln(w, l.Text); err != nil {
		return errors.Wrapf(err, "tree: performing leaf %v", &l.NodeBase)
	}
	return nil
}
