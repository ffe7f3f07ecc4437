// Package types defines the pantry entity records (inventory items,
// donations, households, distribution records), the storage Config, and the
// standard errors shared by the ledger engine and its presentation layers.
package types
