// Package integration exercises the full ledger workflow against each
// storage backend and checks that both backends agree on the results.
package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/pantry/internal/store"
	"github.com/mesh-intelligence/pantry/pkg/ledger"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// corruptFile overwrites a file with bytes that are not valid JSON.
func corruptFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("corrupt %s: %v", path, err)
	}
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2025, 11, 2, 9, 30, 0, 0, time.UTC)
	}
}

// openBackend creates a store for the given backend in an isolated temp dir.
func openBackend(t *testing.T, backend, dir string) store.Store {
	t.Helper()
	cfg := types.Config{Backend: backend, DataDir: dir}
	st, err := store.Open(cfg, nil)
	if err != nil {
		t.Fatalf("open %s store: %v", backend, err)
	}
	return st
}

// runWorkflow drives a donation, a sign-in, and a distribution through a
// ledger and returns the ledger for inspection.
func runWorkflow(t *testing.T, st store.Store) *ledger.Ledger {
	t.Helper()
	l, err := ledger.Open(st, ledger.WithNow(fixedClock()))
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}

	_, err = l.AddFoodDonation("Community Drive", []ledger.FoodItemInput{
		{Name: "Rice", Quantity: 20, ExpirationDate: "2026-03-01"},
		{Name: "Beans", Quantity: 10, ExpirationDate: "2026-01-15"},
	})
	if err != nil {
		t.Fatalf("food donation: %v", err)
	}

	_, err = l.AddMoneyDonation("Anonymous", decimal.NewFromFloat(150.00))
	if err != nil {
		t.Fatalf("money donation: %v", err)
	}

	h, err := l.SignInHousehold("Garcia Family", 4)
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	_, err = l.RecordDistribution(h.ID, []ledger.DistributionItemInput{
		{Name: "Rice", Quantity: 5},
	})
	if err != nil {
		t.Fatalf("distribution: %v", err)
	}
	return l
}

func TestWorkflowRoundTrip(t *testing.T) {
	for _, backend := range []string{types.BackendJSON, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()

			st := openBackend(t, backend, dir)
			runWorkflow(t, st)
			if err := st.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			// Reopen and verify everything survived except the queue.
			st2 := openBackend(t, backend, dir)
			defer st2.Close()
			l2, err := ledger.Open(st2, ledger.WithNow(fixedClock()))
			if err != nil {
				t.Fatalf("reopen ledger: %v", err)
			}

			inv := l2.Inventory()
			if len(inv) != 2 {
				t.Fatalf("inventory lines = %d, want 2", len(inv))
			}
			for _, item := range inv {
				switch item.Name {
				case "Rice":
					if item.Quantity != 15 {
						t.Errorf("Rice quantity = %d, want 15", item.Quantity)
					}
				case "Beans":
					if item.Quantity != 10 {
						t.Errorf("Beans quantity = %d, want 10", item.Quantity)
					}
				default:
					t.Errorf("unexpected inventory item %q", item.Name)
				}
			}

			if got := len(l2.Donations()); got != 2 {
				t.Errorf("donations = %d, want 2", got)
			}
			if got := len(l2.Distributions()); got != 1 {
				t.Errorf("distributions = %d, want 1", got)
			}
			if got := len(l2.Queue()); got != 0 {
				t.Errorf("queue = %d, want 0 after reopen", got)
			}

			status := l2.Status()
			if status.UniqueItems != 2 {
				t.Errorf("unique items = %d, want 2", status.UniqueItems)
			}
			if status.HouseholdsWaiting != 0 {
				t.Errorf("households waiting = %d, want 0", status.HouseholdsWaiting)
			}
		})
	}
}

// TestBackendParity runs the same workflow on both backends and compares
// the reloaded state field by field.
func TestBackendParity(t *testing.T) {
	root := t.TempDir()
	ledgers := make(map[string]*ledger.Ledger, 2)

	for _, backend := range []string{types.BackendJSON, types.BackendSQLite} {
		dir := filepath.Join(root, backend)
		st := openBackend(t, backend, dir)
		runWorkflow(t, st)
		if err := st.Close(); err != nil {
			t.Fatalf("close %s: %v", backend, err)
		}

		st2 := openBackend(t, backend, dir)
		defer st2.Close()
		l, err := ledger.Open(st2, ledger.WithNow(fixedClock()))
		if err != nil {
			t.Fatalf("open %s ledger: %v", backend, err)
		}
		ledgers[backend] = l
	}

	jl := ledgers[types.BackendJSON]
	sl := ledgers[types.BackendSQLite]

	jInv, sInv := jl.Inventory(), sl.Inventory()
	if len(jInv) != len(sInv) {
		t.Fatalf("inventory length mismatch: json=%d sqlite=%d", len(jInv), len(sInv))
	}
	for i := range jInv {
		if jInv[i] != sInv[i] {
			t.Errorf("inventory[%d]: json=%+v sqlite=%+v", i, jInv[i], sInv[i])
		}
	}

	jDon, sDon := jl.Donations(), sl.Donations()
	if len(jDon) != len(sDon) {
		t.Fatalf("donations length mismatch: json=%d sqlite=%d", len(jDon), len(sDon))
	}
	for i := range jDon {
		if jDon[i].Donor != sDon[i].Donor || jDon[i].Type != sDon[i].Type || jDon[i].Date != sDon[i].Date {
			t.Errorf("donation[%d] header: json=%+v sqlite=%+v", i, jDon[i], sDon[i])
		}
	}

	jDist, sDist := jl.Distributions(), sl.Distributions()
	if len(jDist) != len(sDist) {
		t.Fatalf("distributions length mismatch: json=%d sqlite=%d", len(jDist), len(sDist))
	}
	for i := range jDist {
		if jDist[i].HouseholdName != sDist[i].HouseholdName ||
			jDist[i].HouseholdSize != sDist[i].HouseholdSize ||
			jDist[i].Date != sDist[i].Date ||
			len(jDist[i].Items) != len(sDist[i].Items) {
			t.Errorf("distribution[%d]: json=%+v sqlite=%+v", i, jDist[i], sDist[i])
		}
	}

	jTotals, sTotals := jl.Analytics(), sl.Analytics()
	if len(jTotals) != len(sTotals) {
		t.Fatalf("analytics length mismatch: json=%d sqlite=%d", len(jTotals), len(sTotals))
	}
	for i := range jTotals {
		if jTotals[i] != sTotals[i] {
			t.Errorf("analytics[%d]: json=%+v sqlite=%+v", i, jTotals[i], sTotals[i])
		}
	}
}

// TestCorruptFileRecovery verifies the JSON backend quarantines a corrupt
// collection file and continues with an empty collection.
func TestCorruptFileRecovery(t *testing.T) {
	dir := t.TempDir()

	st := openBackend(t, types.BackendJSON, dir)
	runWorkflow(t, st)
	if err := st.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	corruptFile(t, filepath.Join(dir, "inventory.json"))

	var warned []string
	cfg := types.Config{Backend: types.BackendJSON, DataDir: dir}
	st2, err := store.Open(cfg, func(collection string, err error) {
		warned = append(warned, collection)
	})
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer st2.Close()

	l2, err := ledger.Open(st2, ledger.WithNow(fixedClock()))
	if err != nil {
		t.Fatalf("reopen ledger: %v", err)
	}
	if got := len(l2.Inventory()); got != 0 {
		t.Errorf("inventory = %d lines after corruption, want 0", got)
	}
	if len(warned) != 1 || warned[0] != "inventory" {
		t.Errorf("warnings = %v, want [inventory]", warned)
	}
	// Donations were untouched and must still load.
	if got := len(l2.Donations()); got != 2 {
		t.Errorf("donations = %d, want 2", got)
	}

	quarantined, err := filepath.Glob(filepath.Join(dir, "inventory.json.corrupt-*"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(quarantined) != 1 {
		t.Errorf("quarantined files = %d, want 1", len(quarantined))
	}
}
