// Root command for the pantry CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// Values loaded from config.yaml by PersistentPreRunE so all subcommands can
// use them.
var (
	configBackend string
	configDataDir string
)

var rootCmd = &cobra.Command{
	Use:     "pantry",
	Short:   "Pantry is a food pantry inventory and distribution ledger",
	Version: version,
	Long: `Pantry tracks a food pantry's inventory, donation log, distribution log,
and the household waiting queue for the current session.

Inventory and the two logs persist in the data directory; the household
queue lives only for the length of an interactive session (see "pantry
session").`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configBackend = cfg.GetString(cfgKeyBackend)
		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: platform data dir)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(donateCmd)
	rootCmd.AddCommand(inventoryCmd)
	rootCmd.AddCommand(donationsCmd)
	rootCmd.AddCommand(distributionsCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(saveCmd)
	rootCmd.AddCommand(sessionCmd)
}

// resolveDataDir returns the data directory following the precedence chain:
// --data-dir flag > config.yaml data_dir > PANTRY_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > PANTRY_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
