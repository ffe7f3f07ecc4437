package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Collection file names under the data directory.
const (
	inventoryFile     = CollectionInventory + ".json"
	donationsFile     = CollectionDonations + ".json"
	distributionsFile = CollectionDistributions + ".json"
)

// jsonIndent keeps the files human-diffable.
const jsonIndent = "    "

// JSONStore persists each collection as one indented JSON array file.
// This is the primary backend: the files are the source of truth and are
// meant to be readable and diffable by hand.
type JSONStore struct {
	dataDir string
	warn    WarnFunc
}

// NewJSONStore creates a JSON file store rooted at dataDir, creating the
// directory if needed.
func NewJSONStore(dataDir string, warn WarnFunc) (*JSONStore, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	if warn == nil {
		warn = func(string, error) {}
	}
	return &JSONStore{dataDir: dataDir, warn: warn}, nil
}

// LoadInventory reads inventory.json. Missing or corrupt files yield an
// empty slice; corrupt files are quarantined first.
func (s *JSONStore) LoadInventory() ([]types.InventoryItem, error) {
	var items []types.InventoryItem
	if err := s.readCollection(CollectionInventory, inventoryFile, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SaveInventory overwrites inventory.json with the full collection.
func (s *JSONStore) SaveInventory(items []types.InventoryItem) error {
	if items == nil {
		items = []types.InventoryItem{}
	}
	return s.writeCollection(inventoryFile, items)
}

// LoadDonations reads donations.json, reconstituting food details as item
// lists and money details as amounts.
func (s *JSONStore) LoadDonations() ([]types.Donation, error) {
	var donations []types.Donation
	if err := s.readCollection(CollectionDonations, donationsFile, &donations); err != nil {
		return nil, err
	}
	return donations, nil
}

// SaveDonations overwrites donations.json with the full log.
func (s *JSONStore) SaveDonations(donations []types.Donation) error {
	if donations == nil {
		donations = []types.Donation{}
	}
	return s.writeCollection(donationsFile, donations)
}

// LoadDistributions reads distributions.json.
func (s *JSONStore) LoadDistributions() ([]types.DistributionRecord, error) {
	var records []types.DistributionRecord
	if err := s.readCollection(CollectionDistributions, distributionsFile, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// SaveDistributions overwrites distributions.json with the full log.
func (s *JSONStore) SaveDistributions(records []types.DistributionRecord) error {
	if records == nil {
		records = []types.DistributionRecord{}
	}
	return s.writeCollection(distributionsFile, records)
}

// Close is a no-op for the file backend.
func (s *JSONStore) Close() error {
	return nil
}

// readCollection reads and decodes one collection file into v. A missing file
// leaves v untouched (empty collection). An unparseable file is moved aside
// to <file>.corrupt-<uuid>, reported via the warning callback, and treated as
// empty, so a bad file never takes the pantry down. Other I/O failures
// (permissions, disk) are returned to the caller.
func (s *JSONStore) readCollection(collection, file string, v any) error {
	path := filepath.Join(s.dataDir, file)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		s.quarantine(collection, path, err)
		return nil
	}
	return nil
}

// quarantine moves an unreadable collection file aside so its contents are
// preserved for inspection instead of being overwritten by the next save.
func (s *JSONStore) quarantine(collection, path string, cause error) {
	quarantined := path + ".corrupt-" + uuid.NewString()
	if err := os.Rename(path, quarantined); err != nil {
		s.warn(collection, fmt.Errorf("unreadable (%v); quarantine failed: %w", cause, err))
		return
	}
	s.warn(collection, fmt.Errorf("unreadable, moved to %s: %w", filepath.Base(quarantined), cause))
}

// writeCollection encodes v and writes it atomically: temp file in the same
// directory, fsync, then rename over the target. A crash mid-write leaves
// the previous file intact.
func (s *JSONStore) writeCollection(file string, v any) error {
	data, err := json.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", file, err)
	}

	path := filepath.Join(s.dataDir, file)
	tmp, err := os.CreateTemp(s.dataDir, "."+file+"-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", file, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing %s: %w", file, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
