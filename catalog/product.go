// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import "fmt"

// Product is a terminal [Item] with a fixed price. It never has members.
type Product struct {
	name  string
	price float64
}

// NewProduct returns a new [Product] with the given name and price.
// The price is fixed at construction.
func NewProduct(name string, price float64) *Product {
	return &Product{name: name, price: price}
}

// ItemName returns the display name of the product.
func (p *Product) ItemName() string {
	return p.name
}

// Price returns the fixed price of the product.
func (p *Product) Price() float64 {
	return p.price
}

// String implements the [fmt.Stringer] interface.
func (p *Product) String() string {
	return fmt.Sprintf("%s: %s", p.name, FormatPrice(p.price))
}
