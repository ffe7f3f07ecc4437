// Shared helpers for pantry CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mesh-intelligence/pantry/internal/store"
	"github.com/mesh-intelligence/pantry/pkg/ledger"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// openLedger resolves the data directory, opens the configured store, and
// loads the ledger. Recovery warnings from tolerant loads go to stderr so
// operators see when a corrupt collection was set aside. The caller must
// defer st.Close().
func openLedger() (*ledger.Ledger, store.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: configBackend,
		DataDir: dataDir,
	}
	st, err := store.Open(cfg, warnToStderr)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	l, err := ledger.Open(st)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("load ledger: %w", err)
	}
	return l, st, nil
}

// warnToStderr surfaces store recovery notices without failing the command.
func warnToStderr(collection string, err error) {
	fmt.Fprintf(os.Stderr, "Warning: %s collection recovered: %v\n", collection, err)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// parseItemSpec parses a donated item flag of the form name:quantity:date,
// e.g. "Rice:10:2025-12-01". Names may not contain colons.
func parseItemSpec(spec string) (ledger.FoodItemInput, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return ledger.FoodItemInput{}, fmt.Errorf("%w: item %q must be name:quantity:date", types.ErrValidation, spec)
	}
	quantity, err := strconv.Atoi(parts[1])
	if err != nil {
		return ledger.FoodItemInput{}, fmt.Errorf("%w: quantity %q is not a number", types.ErrValidation, parts[1])
	}
	return ledger.FoodItemInput{
		Name:           parts[0],
		Quantity:       quantity,
		ExpirationDate: parts[2],
	}, nil
}
