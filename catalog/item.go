// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog implements recursive price aggregation over nested
// groups of priced items. A [Product] carries a fixed price; a
// [Collection] holds a set of member items (products or further
// collections) and derives its price as the sum of theirs, recomputed on
// every access so it always reflects the live member set.
//
// Collection membership has set semantics by reference: adding the same
// item twice is a no-op for the second add, so each item contributes to
// the total once per collection. Membership iteration order is not part of
// the contract.
package catalog

// Item is a priced entity: a [Product], a [Collection], or any other type
// that can name and price itself.
type Item interface {

	// ItemName returns the display name of the item.
	ItemName() string

	// Price returns the current price of the item. For collections it is
	// derived from the live member set on every call; it is never cached.
	Price() float64
}
