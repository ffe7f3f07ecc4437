// Distributions command lists the distribution log.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var distributionsCmd = &cobra.Command{
	Use:   "distributions",
	Short: "List the distribution log",
	RunE:  runDistributions,
}

func runDistributions(cmd *cobra.Command, args []string) error {
	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	log := l.Distributions()
	if flagJSON {
		return printJSON(log)
	}

	if len(log) == 0 {
		fmt.Println("No distributions recorded.")
		return nil
	}
	for _, r := range log {
		fmt.Printf("%s  to %s (household of %d): %d item line(s)\n",
			r.Date, r.HouseholdName, r.HouseholdSize, len(r.Items))
		for _, item := range r.Items {
			fmt.Printf("    %-30s %d\n", item.Name, item.Quantity)
		}
	}
	return nil
}
