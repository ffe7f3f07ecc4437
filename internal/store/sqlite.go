package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// dbFileName is the SQLite database file under the data directory.
const dbFileName = "pantry.db"

// schemaSQL creates the three collection tables. seq preserves insertion
// order so loads reproduce the logs in the order they were written.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS inventory (
    seq             INTEGER PRIMARY KEY AUTOINCREMENT,
    name            TEXT NOT NULL,
    quantity        INTEGER NOT NULL,
    expiration_date TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS donations (
    seq     INTEGER PRIMARY KEY AUTOINCREMENT,
    donor   TEXT NOT NULL,
    type    TEXT NOT NULL,
    details TEXT NOT NULL,
    date    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS distributions (
    seq            INTEGER PRIMARY KEY AUTOINCREMENT,
    household_name TEXT NOT NULL,
    household_size INTEGER NOT NULL,
    items          TEXT NOT NULL,
    date           TEXT NOT NULL
);
`

// SQLiteStore persists the collections in an embedded SQLite database. It is
// a drop-in alternative to the JSON file backend for deployments that prefer
// a single database file; the stored shapes are the same, with donation
// details and distribution items kept as JSON text columns.
type SQLiteStore struct {
	db   *sql.DB
	warn WarnFunc
}

// NewSQLiteStore opens (or bootstraps) the database under dataDir.
func NewSQLiteStore(dataDir string, warn WarnFunc) (*SQLiteStore, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	if warn == nil {
		warn = func(string, error) {}
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &SQLiteStore{db: db, warn: warn}, nil
}

// LoadInventory reads all inventory lines in insertion order.
func (s *SQLiteStore) LoadInventory() ([]types.InventoryItem, error) {
	rows, err := s.db.Query(`SELECT name, quantity, expiration_date FROM inventory ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying inventory: %w", err)
	}
	defer rows.Close()

	var items []types.InventoryItem
	for rows.Next() {
		var it types.InventoryItem
		if err := rows.Scan(&it.Name, &it.Quantity, &it.ExpirationDate); err != nil {
			return nil, fmt.Errorf("scanning inventory row: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// SaveInventory replaces the inventory table with the given lines in one
// transaction.
func (s *SQLiteStore) SaveInventory(items []types.InventoryItem) error {
	return s.replace(CollectionInventory,
		`INSERT INTO inventory (name, quantity, expiration_date) VALUES (?, ?, ?)`,
		len(items),
		func(i int) []any {
			return []any{items[i].Name, items[i].Quantity, items[i].ExpirationDate}
		})
}

// LoadDonations reads the donations log in insertion order. Rows whose
// details column does not decode for their type are skipped with a warning
// rather than failing the load.
func (s *SQLiteStore) LoadDonations() ([]types.Donation, error) {
	rows, err := s.db.Query(`SELECT donor, type, details, date FROM donations ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying donations: %w", err)
	}
	defer rows.Close()

	var donations []types.Donation
	for rows.Next() {
		var (
			d       types.Donation
			details []byte
		)
		if err := rows.Scan(&d.Donor, &d.Type, &details, &d.Date); err != nil {
			return nil, fmt.Errorf("scanning donation row: %w", err)
		}
		d.Details, err = types.UnmarshalDetails(d.Type, details)
		if err != nil {
			s.warn(CollectionDonations, fmt.Errorf("skipping donation from %q: %w", d.Donor, err))
			continue
		}
		donations = append(donations, d)
	}
	return donations, rows.Err()
}

// SaveDonations replaces the donations table with the given log.
func (s *SQLiteStore) SaveDonations(donations []types.Donation) error {
	details := make([][]byte, len(donations))
	for i, d := range donations {
		data, err := json.Marshal(d.Details)
		if err != nil {
			return fmt.Errorf("encoding %s donation details: %w", d.Type, err)
		}
		details[i] = data
	}
	return s.replace(CollectionDonations,
		`INSERT INTO donations (donor, type, details, date) VALUES (?, ?, ?, ?)`,
		len(donations),
		func(i int) []any {
			return []any{donations[i].Donor, donations[i].Type, string(details[i]), donations[i].Date}
		})
}

// LoadDistributions reads the distributions log in insertion order. Rows
// whose items column does not decode are skipped with a warning.
func (s *SQLiteStore) LoadDistributions() ([]types.DistributionRecord, error) {
	rows, err := s.db.Query(`SELECT household_name, household_size, items, date FROM distributions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying distributions: %w", err)
	}
	defer rows.Close()

	var records []types.DistributionRecord
	for rows.Next() {
		var (
			r     types.DistributionRecord
			items []byte
		)
		if err := rows.Scan(&r.HouseholdName, &r.HouseholdSize, &items, &r.Date); err != nil {
			return nil, fmt.Errorf("scanning distribution row: %w", err)
		}
		if err := json.Unmarshal(items, &r.Items); err != nil {
			s.warn(CollectionDistributions, fmt.Errorf("skipping distribution to %q: %w", r.HouseholdName, err))
			continue
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// SaveDistributions replaces the distributions table with the given log.
func (s *SQLiteStore) SaveDistributions(records []types.DistributionRecord) error {
	items := make([][]byte, len(records))
	for i, r := range records {
		data, err := json.Marshal(r.Items)
		if err != nil {
			return fmt.Errorf("encoding distribution items: %w", err)
		}
		items[i] = data
	}
	return s.replace(CollectionDistributions,
		`INSERT INTO distributions (household_name, household_size, items, date) VALUES (?, ?, ?, ?)`,
		len(records),
		func(i int) []any {
			return []any{records[i].HouseholdName, records[i].HouseholdSize, string(items[i]), records[i].Date}
		})
}

// Close closes the database. Idempotent.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// replace rewrites one collection table inside a transaction: delete all
// rows, then insert the new set. args returns the bind values for row i.
func (s *SQLiteStore) replace(table, insertSQL string, n int, args func(i int) []any) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning %s save: %w", table, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if _, err := stmt.Exec(args(i)...); err != nil {
			return fmt.Errorf("inserting %s row: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s save: %w", table, err)
	}
	return nil
}
