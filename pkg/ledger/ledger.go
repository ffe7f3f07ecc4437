// Package ledger implements the pantry ledger engine: the in-memory
// inventory, donation log, distribution log, and session-scoped household
// queue, with transactional mutating operations and write-through
// persistence.
//
// The engine assumes a single caller at a time. It holds no lock; a
// concurrent host must serialize access to one in-flight operation. Every
// mutating operation validates its whole input before touching state, then
// mutates and persists the affected collections before returning. The engine
// never prints or logs; failures surface as errors wrapping the sentinels in
// pkg/types, and presentation layers own all user-facing text.
package ledger

import (
	"time"

	"github.com/mesh-intelligence/pantry/internal/store"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Ledger owns all pantry state. Create one with Open.
type Ledger struct {
	store store.Store
	now   func() time.Time

	inventory     []types.InventoryItem
	donations     []types.Donation
	distributions []types.DistributionRecord

	// queue is session-only: never persisted, IDs restart at 1 each process.
	queue           []types.Household
	nextHouseholdID int
}

// Option configures a Ledger at Open time.
type Option func(*Ledger)

// WithNow overrides the clock used to stamp donation and distribution dates.
func WithNow(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// Open loads the three persisted collections from st and returns a ready
// engine with an empty household queue. Missing or corrupt collections come
// back empty from the store (with a warning on its callback), so Open only
// fails on real I/O errors.
func Open(st store.Store, opts ...Option) (*Ledger, error) {
	l := &Ledger{
		store:           st,
		now:             time.Now,
		nextHouseholdID: 1,
	}
	for _, opt := range opts {
		opt(l)
	}

	var err error
	if l.inventory, err = st.LoadInventory(); err != nil {
		return nil, err
	}
	if l.donations, err = st.LoadDonations(); err != nil {
		return nil, err
	}
	if l.distributions, err = st.LoadDistributions(); err != nil {
		return nil, err
	}
	return l, nil
}

// Save persists all three collections. Mutating operations already persist
// write-through; Save is the explicit flush for hosts that want one.
func (l *Ledger) Save() error {
	return l.persistAll()
}

// today returns the current date as an ISO date string.
func (l *Ledger) today() string {
	return types.FormatISODate(l.now())
}

// persistAll writes inventory, donations, and distributions.
func (l *Ledger) persistAll() error {
	if err := l.store.SaveInventory(l.inventory); err != nil {
		return err
	}
	if err := l.store.SaveDonations(l.donations); err != nil {
		return err
	}
	return l.store.SaveDistributions(l.distributions)
}

// persistDistribution writes the collections a distribution touches:
// inventory and the distributions log.
func (l *Ledger) persistDistribution() error {
	if err := l.store.SaveInventory(l.inventory); err != nil {
		return err
	}
	return l.store.SaveDistributions(l.distributions)
}
