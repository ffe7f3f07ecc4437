// Donate parent command grouping food and money donations.
package main

import "github.com/spf13/cobra"

var donateCmd = &cobra.Command{
	Use:   "donate",
	Short: "Record a donation",
}

func init() {
	donateCmd.AddCommand(donateFoodCmd)
	donateCmd.AddCommand(donateMoneyCmd)
}
