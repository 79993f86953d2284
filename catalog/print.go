// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatPrice renders a price without a currency symbol and without
// trailing zeros, so whole amounts read as integers (1690, not 1690.00).
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// Fprint writes an indented structural listing of the item tree rooted at
// the given item, one line per item showing its name and price.
func Fprint(w io.Writer, item Item) error {
	return fprint(w, item, 0)
}

func fprint(w io.Writer, item Item, depth int) error {
	_, err := fmt.Fprintf(w, "%s%s: %s\n", strings.Repeat("  ", depth),
		item.ItemName(), FormatPrice(item.Price()))
	if err != nil {
		return err
	}
	c, ok := item.(*Collection)
	if !ok {
		return nil
	}
	for _, member := range c.members {
		if err := fprint(w, member, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// FprintTotal writes the total line for the given item, in the fixed
// "Total: <price>" form.
func FprintTotal(w io.Writer, item Item) error {
	_, err := fmt.Fprintf(w, "Total: %s\n", FormatPrice(item.Price()))
	return err
}
