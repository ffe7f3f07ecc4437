// Analytics command reports total quantities distributed per item.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show distributed totals per item",
	Long: `Analytics aggregates the distribution log into the total quantity ever
distributed per item, most-distributed first.`,
	RunE: runAnalytics,
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	rows := l.Analytics()
	if flagJSON {
		return printJSON(rows)
	}

	if len(rows) == 0 {
		fmt.Println("No distributions recorded.")
		return nil
	}
	fmt.Printf("%-30s %s\n", "ITEM", "TOTAL DISTRIBUTED")
	for _, row := range rows {
		fmt.Printf("%-30s %d\n", row.Name, row.Total)
	}
	return nil
}
