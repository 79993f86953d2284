// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"
	"iter"
	"slices"
)

// Collection is an [Item] holding a set of member items, distinguished by
// reference. Its price is the sum of the members' prices, recomputed on
// every access, so it always reflects the live set, including arbitrarily
// nested collections.
type Collection struct {
	name string

	// members is an identity set: Add refuses duplicates by reference.
	// The backing slice keeps iteration deterministic, but order is not
	// part of the contract.
	members []Item
}

// NewCollection returns a new [Collection] with the given name, adding any
// given items subject to the rules of [Collection.Add].
func NewCollection(name string, items ...Item) *Collection {
	c := &Collection{name: name}
	for _, item := range items {
		c.Add(item)
	}
	return c
}

// ItemName returns the display name of the collection.
func (c *Collection) ItemName() string {
	return c.name
}

// Price returns the sum of the members' prices at the time of the call.
func (c *Collection) Price() float64 {
	var total float64
	for _, item := range c.members {
		total += item.Price()
	}
	return total
}

// Add adds the given item to the collection, reporting whether it was
// newly added. Adding an item already in the collection is a no-op, as is
// adding nil or an item whose members transitively include this
// collection.
func (c *Collection) Add(item Item) bool {
	if item == nil || item == Item(c) {
		return false
	}
	if c.Contains(item) {
		return false
	}
	if sub, ok := item.(*Collection); ok && sub.containsDeep(c) {
		return false
	}
	c.members = append(c.members, item)
	return true
}

// Remove removes the given item from the collection, reporting whether it
// was a member.
func (c *Collection) Remove(item Item) bool {
	idx := slices.Index(c.members, item)
	if idx < 0 {
		return false
	}
	c.members = slices.Delete(c.members, idx, idx+1)
	return true
}

// Contains reports whether the given item is a direct member of the
// collection, by reference.
func (c *Collection) Contains(item Item) bool {
	return slices.Index(c.members, item) >= 0
}

// Len returns the number of direct members.
func (c *Collection) Len() int {
	return len(c.members)
}

// Items returns a restartable sequence over the direct members of the
// collection. It does not descend into nested collections.
func (c *Collection) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, item := range c.members {
			if !yield(item) {
				return
			}
		}
	}
}

// containsDeep reports whether the given item is a member of this
// collection or of any collection nested in it, by reference.
func (c *Collection) containsDeep(target Item) bool {
	for _, item := range c.members {
		if item == target {
			return true
		}
		if sub, ok := item.(*Collection); ok && sub.containsDeep(target) {
			return true
		}
	}
	return false
}

// String implements the [fmt.Stringer] interface.
func (c *Collection) String() string {
	return fmt.Sprintf("%s: %s", c.name, FormatPrice(c.Price()))
}
