// Activity command prints the merged recent-activity feed.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/ledger"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

var activityLimit int

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent donations and distributions",
	RunE:  runActivity,
}

func init() {
	activityCmd.Flags().IntVar(&activityLimit, "limit", 10, "maximum entries to show (0 for all)")
}

func runActivity(cmd *cobra.Command, args []string) error {
	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	feed := l.RecentActivity(activityLimit)
	if flagJSON {
		return printJSON(feed)
	}

	if len(feed) == 0 {
		fmt.Println("No activity recorded.")
		return nil
	}
	for _, a := range feed {
		switch {
		case a.Kind == ledger.ActivityDistribution:
			fmt.Printf("%s  distribution: %d item line(s) to %s\n", a.Date, a.ItemCount, a.Household)
		case a.DonationType == types.DonationMoney:
			fmt.Printf("%s  donation (Money): $%s from %s\n", a.Date, a.Amount.StringFixed(2), a.Donor)
		default:
			fmt.Printf("%s  donation (Food): %d item(s) from %s\n", a.Date, a.ItemCount, a.Donor)
		}
	}
	return nil
}
