// Copyright (c) 2026, Composite Kit. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/compositekit/composite/catalog"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Aggregate the demonstration catalog and print its total",
	Long: `Price the demonstration purchase: an Electronics collection (laptop,
mouse, keyboard, cable) and a Textile collection (shirt, socks) nested in
one Purchase collection. The structural dump of the catalog is printed,
followed by the total line. With --table, the top-level breakdown is
printed as a table instead of the dump.`,
	RunE: runPrice,
}

var priceTable bool

func init() {
	priceCmd.Flags().BoolVar(&priceTable, "table", false, "print the top-level breakdown as a table")
	rootCmd.AddCommand(priceCmd)
}

func runPrice(cmd *cobra.Command, args []string) error {
	purchase := demoCatalog()
	w := cmd.OutOrStdout()
	if priceTable {
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"Item", "Price"})
		for item := range purchase.Items() {
			table.Append([]string{item.ItemName(), catalog.FormatPrice(item.Price())})
		}
		table.Render()
	} else if err := catalog.Fprint(w, purchase); err != nil {
		return err
	}
	return catalog.FprintTotal(w, purchase)
}

// demoCatalog builds the standard demonstration purchase.
func demoCatalog() *catalog.Collection {
	electronics := catalog.NewCollection("Electronics",
		catalog.NewProduct("Laptop", 1500),
		catalog.NewProduct("Mouse", 25),
		catalog.NewProduct("Keyboard", 100),
		catalog.NewProduct("Cable", 10),
	)
	textile := catalog.NewCollection("Textile",
		catalog.NewProduct("Shirt", 50),
		catalog.NewProduct("Socks", 5),
	)
	return catalog.NewCollection("Purchase", electronics, textile)
}
