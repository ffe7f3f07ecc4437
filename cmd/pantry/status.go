// Status command prints the front-page summary.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the pantry summary",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	status := l.Status()
	if flagJSON {
		return printJSON(status)
	}
	fmt.Printf("Households currently waiting: %d\n", status.HouseholdsWaiting)
	fmt.Printf("Unique items in inventory:    %d\n", status.UniqueItems)
	return nil
}
