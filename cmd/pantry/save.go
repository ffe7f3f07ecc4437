// Save command forces a full persistence pass.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Rewrite all persisted collections",
	Long: `Save rewrites inventory, donations, and distributions in the data
directory. Mutating commands already persist as they run; save exists to
regenerate the files on demand, for example after restoring from a backup.`,
	RunE: runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	l, st, err := openLedger()
	if err != nil {
		return err
	}
	defer st.Close()

	if err := l.Save(); err != nil {
		return err
	}
	fmt.Println("All collections saved.")
	return nil
}
