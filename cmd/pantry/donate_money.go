// Donate money command records a monetary donation.
package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

var (
	donateMoneyDonor  string
	donateMoneyAmount string
)

var donateMoneyCmd = &cobra.Command{
	Use:   "money",
	Short: "Record a monetary donation",
	Long: `Money logs a monetary donation. The amount must be positive and is
rounded to two decimals.

Example:
  pantry donate money --donor "Bob" --amount 25.50`,
	RunE: runDonateMoney,
}

func init() {
	donateMoneyCmd.Flags().StringVar(&donateMoneyDonor, "donor", "", "donor name (required)")
	donateMoneyCmd.Flags().StringVar(&donateMoneyAmount, "amount", "", "donated amount (required)")
	_ = donateMoneyCmd.MarkFlagRequired("donor")
	_ = donateMoneyCmd.MarkFlagRequired("amount")
}

func runDonateMoney(cmd *cobra.Command, args []string) error {
	amount, err := decimal.NewFromString(donateMoneyAmount)
	if err != nil {
		return fmt.Errorf("%w: amount %q is not a number", types.ErrValidation, donateMoneyAmount)
	}

	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	donation, err := l.AddMoneyDonation(donateMoneyDonor, amount)
	if err != nil {
		return err
	}

	if flagJSON {
		return printJSON(donation)
	}
	money := donation.Details.(types.MoneyDetails)
	fmt.Printf("Recorded money donation from %s: $%s\n", donation.Donor, money.Amount().StringFixed(2))
	return nil
}
