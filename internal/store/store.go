// Package store implements durable persistence for the pantry collections.
// Two backends share one contract: indented JSON array files (the primary,
// human-diffable form) and an embedded SQLite database.
//
// Loads are tolerant: a missing collection bootstraps empty, and a corrupt
// collection is quarantined and reported through the warning callback rather
// than failing the caller. Callers should surface warnings so operators know
// data was set aside.
package store

import (
	"fmt"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Collection names, used in file names, table names, and warnings.
const (
	CollectionInventory     = "inventory"
	CollectionDonations     = "donations"
	CollectionDistributions = "distributions"
)

// WarnFunc receives recovery notices: a collection that could not be read
// and was reset to empty. err describes what was wrong with the stored data.
type WarnFunc func(collection string, err error)

// Store persists the three pantry collections. Every Save is a
// full-collection overwrite; there is no append path. The household queue is
// deliberately absent: queues are session-scoped and never stored.
type Store interface {
	LoadInventory() ([]types.InventoryItem, error)
	SaveInventory(items []types.InventoryItem) error

	LoadDonations() ([]types.Donation, error)
	SaveDonations(donations []types.Donation) error

	LoadDistributions() ([]types.DistributionRecord, error)
	SaveDistributions(records []types.DistributionRecord) error

	// Close releases backend resources. Idempotent.
	Close() error
}

// Open creates the store described by cfg. warn may be nil, in which case
// recovery notices are dropped.
func Open(cfg types.Config, warn WarnFunc) (Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if warn == nil {
		warn = func(string, error) {}
	}
	switch cfg.Backend {
	case types.BackendJSON:
		return NewJSONStore(cfg.DataDir, warn)
	case types.BackendSQLite:
		return NewSQLiteStore(cfg.DataDir, warn)
	default:
		// Unreachable once Validate passes; kept for exhaustiveness.
		return nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, cfg.Backend)
	}
}
