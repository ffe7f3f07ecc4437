// Package main provides the pantry CLI: a food pantry ledger tracking
// inventory, donations, distributions, and the daily household queue.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
