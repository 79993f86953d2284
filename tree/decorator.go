// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// Decorator is a [Composite] that frames delegation with fixed markers:
// performing it writes the Before line, then the children's combined
// output exactly as a Composite would, then the After line. Nesting is
// reflected by the order of the marker lines, not by indentation.
type Decorator struct {
	Composite

	// Before is written as a single line before the children's output.
	Before string

	// After is written as a single line after the children's output.
	After string
}

// NewDecorator returns a new [Decorator] with the given before and after
// markers.
func NewDecorator(before, after string) *Decorator {
	d := &Decorator{Before: before, After: after}
	d.This = d
	return d
}

// Perform writes the before marker, delegates to the children in insertion
// order, and writes the after marker.
func (d *Decorator) Perform(w io.Writer) error {
	if _, err := fmt.Fprintln(w, d.Before); err != nil {
		return errors.Wrapf(err, "tree: performing decorator %v", &d.NodeBase)
	}
	if err := d.Composite.Perform(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, d.After); err != nil {
		return errors.Wrapf(err, "tree: performing decorator %v", &d.NodeBase)
	}
	return nil
}
