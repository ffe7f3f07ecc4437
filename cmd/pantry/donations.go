// Donations command lists the donation log.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

var donationsCmd = &cobra.Command{
	Use:   "donations",
	Short: "List the donation log",
	RunE:  runDonations,
}

func runDonations(cmd *cobra.Command, args []string) error {
	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	log := l.Donations()
	if flagJSON {
		return printJSON(log)
	}

	if len(log) == 0 {
		fmt.Println("No donations recorded.")
		return nil
	}
	for _, d := range log {
		switch details := d.Details.(type) {
		case types.FoodDetails:
			fmt.Printf("%s  %-6s from %s: %d item(s)\n", d.Date, d.Type, d.Donor, len(details))
		case types.MoneyDetails:
			fmt.Printf("%s  %-6s from %s: $%s\n", d.Date, d.Type, d.Donor, details.Amount().StringFixed(2))
		}
	}
	return nil
}
