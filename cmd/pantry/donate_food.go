// Donate food command records a food donation and restocks inventory.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/ledger"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

var (
	donateFoodDonor string
	donateFoodItems []string
)

var donateFoodCmd = &cobra.Command{
	Use:   "food",
	Short: "Record a food donation",
	Long: `Food records a donation of one or more items and folds them into
inventory. Items donated with a name and expiration date already in stock
increase the existing line instead of creating a duplicate.

Example:
  pantry donate food --donor "Alice" --item "Rice:10:2025-12-01"
  pantry donate food --donor "Alice" --item "Rice:10:2025-12-01" --item "Beans:3:2026-01-15"`,
	RunE: runDonateFood,
}

func init() {
	donateFoodCmd.Flags().StringVar(&donateFoodDonor, "donor", "", "donor name (required)")
	donateFoodCmd.Flags().StringArrayVar(&donateFoodItems, "item", nil, "donated item as name:quantity:date (repeatable, required)")
	_ = donateFoodCmd.MarkFlagRequired("donor")
	_ = donateFoodCmd.MarkFlagRequired("item")
}

func runDonateFood(cmd *cobra.Command, args []string) error {
	items := make([]ledger.FoodItemInput, 0, len(donateFoodItems))
	for _, spec := range donateFoodItems {
		item, err := parseItemSpec(spec)
		if err != nil {
			return err
		}
		items = append(items, item)
	}

	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	donation, err := l.AddFoodDonation(donateFoodDonor, items)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(donation)
	}
	details := donation.Details.(types.FoodDetails)
	fmt.Printf("Recorded food donation from %s: %d item(s)\n", donation.Donor, len(details))
	return nil
}
