package ledger

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// Status summarizes the pantry for a front-page display.
type Status struct {
	HouseholdsWaiting int `json:"households_waiting"`
	UniqueItems       int `json:"unique_items_in_inventory"`
}

// ItemTotal is one row of the distribution analytics: an item and the total
// quantity ever distributed under that name.
type ItemTotal struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// Activity kinds for RecentActivity.
const (
	ActivityDonation     = "donation"
	ActivityDistribution = "distribution"
)

// Activity is one merged log event, donation or distribution, for an
// activity feed. Donation fields are set for donations, Household for
// distributions; ItemCount counts the food items or distributed lines.
type Activity struct {
	Date         string          `json:"date"`
	Kind         string          `json:"kind"`
	Donor        string          `json:"donor,omitempty"`
	DonationType string          `json:"donation_type,omitempty"`
	Amount       decimal.Decimal `json:"amount,omitempty"`
	Household    string          `json:"household,omitempty"`
	ItemCount    int             `json:"item_count,omitempty"`
}

// Inventory returns a copy of every inventory line, zero-quantity history
// lines included.
func (l *Ledger) Inventory() []types.InventoryItem {
	items := make([]types.InventoryItem, len(l.inventory))
	copy(items, l.inventory)
	return items
}

// VisibleInventory returns the display view: lines with quantity above zero.
func (l *Ledger) VisibleInventory() []types.InventoryItem {
	return l.SearchInventory("")
}

// SearchInventory returns in-stock lines whose name contains term,
// case-insensitively. An empty term matches everything in stock.
func (l *Ledger) SearchInventory(term string) []types.InventoryItem {
	term = strings.ToLower(term)
	items := make([]types.InventoryItem, 0, len(l.inventory))
	for _, item := range l.inventory {
		if item.Quantity > 0 && strings.Contains(strings.ToLower(item.Name), term) {
			items = append(items, item)
		}
	}
	return items
}

// Donations returns a copy of the donations log in append order.
func (l *Ledger) Donations() []types.Donation {
	log := make([]types.Donation, len(l.donations))
	copy(log, l.donations)
	return log
}

// Distributions returns a copy of the distributions log in append order.
func (l *Ledger) Distributions() []types.DistributionRecord {
	log := make([]types.DistributionRecord, len(l.distributions))
	copy(log, l.distributions)
	return log
}

// Status reports how many households are waiting and how many distinct items
// are in stock. Zero-quantity lines do not count as stocked.
func (l *Ledger) Status() Status {
	unique := 0
	for _, item := range l.inventory {
		if item.Quantity > 0 {
			unique++
		}
	}
	return Status{
		HouseholdsWaiting: len(l.queue),
		UniqueItems:       unique,
	}
}

// Analytics aggregates distributed quantities per item across the whole
// distributions log, case-insensitively, keyed by the first spelling seen.
// Rows sort by total descending; ties keep discovery order.
func (l *Ledger) Analytics() []ItemTotal {
	totals := make(map[string]int)
	display := make(map[string]string)
	var order []string

	for _, record := range l.distributions {
		for _, item := range record.Items {
			key := strings.ToLower(item.Name)
			if _, seen := totals[key]; !seen {
				order = append(order, key)
				display[key] = item.Name
			}
			totals[key] += item.Quantity
		}
	}

	rows := make([]ItemTotal, len(order))
	for i, key := range order {
		rows[i] = ItemTotal{Name: display[key], Total: totals[key]}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total > rows[j].Total
	})
	return rows
}

// RecentActivity merges the donation and distribution logs into one feed
// sorted by date descending (ties keep log order: donations before
// distributions of the same day). A positive limit caps the result;
// limit <= 0 returns everything.
func (l *Ledger) RecentActivity(limit int) []Activity {
	feed := make([]Activity, 0, len(l.donations)+len(l.distributions))
	for _, d := range l.donations {
		a := Activity{
			Date:         d.Date,
			Kind:         ActivityDonation,
			Donor:        d.Donor,
			DonationType: d.Type,
		}
		switch det := d.Details.(type) {
		case types.FoodDetails:
			a.ItemCount = len(det)
		case types.MoneyDetails:
			a.Amount = det.Amount()
		}
		feed = append(feed, a)
	}
	for _, r := range l.distributions {
		feed = append(feed, Activity{
			Date:      r.Date,
			Kind:      ActivityDistribution,
			Household: r.HouseholdName,
			ItemCount: len(r.Items),
		})
	}

	sort.SliceStable(feed, func(i, j int) bool {
		return feed[i].Date > feed[j].Date
	})
	if limit > 0 && len(feed) > limit {
		feed = feed[:limit]
	}
	return feed
}
