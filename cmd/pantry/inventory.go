// Inventory command lists in-stock items.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var inventorySearch string

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "List items in stock",
	Long: `Inventory lists every line with stock remaining. Lines that have been
fully distributed are kept in storage as history but not shown.

Example:
  pantry inventory
  pantry inventory --search rice`,
	RunE: runInventory,
}

func init() {
	inventoryCmd.Flags().StringVar(&inventorySearch, "search", "", "only show items whose name contains this text")
}

func runInventory(cmd *cobra.Command, args []string) error {
	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	items := l.SearchInventory(inventorySearch)
	if flagJSON {
		return printJSON(items)
	}

	if len(items) == 0 {
		fmt.Println("No items in stock.")
		return nil
	}
	fmt.Printf("%-30s %8s  %s\n", "ITEM", "QTY", "EXPIRES")
	for _, item := range items {
		fmt.Printf("%-30s %8d  %s\n", item.Name, item.Quantity, item.ExpirationDate)
	}
	return nil
}
