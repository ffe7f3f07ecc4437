package ledger

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// DistributionItemInput is one requested item line of a distribution.
type DistributionItemInput struct {
	Name     string
	Quantity int
}

// RecordDistribution hands inventory to a queued household. The call is
// atomic in two phases.
//
// Validation phase, no mutation: the household must be in the queue
// (types.ErrNotFound), every requested item must match an inventory line by
// case-insensitive name (types.ErrNotFound), and the line must cover the
// requested total (types.ErrInsufficientStock). Requests naming the same item
// more than once are aggregated before the stock check, so duplicate lines
// cannot pass separately while failing in sum. Any failure aborts with zero
// side effects: a household never receives a subset of its request.
//
// Commit phase: decrement each matched line, append a distribution record
// holding the items as submitted and today's date, remove the household from
// the queue, and persist inventory and the distributions log.
func (l *Ledger) RecordDistribution(householdID int, items []DistributionItemInput) (*types.DistributionRecord, error) {
	queueIdx := l.findQueued(householdID)
	if queueIdx < 0 {
		return nil, fmt.Errorf("%w: household %d is not in the queue", types.ErrNotFound, householdID)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: a distribution needs at least one item", types.ErrValidation)
	}
	for _, in := range items {
		if strings.TrimSpace(in.Name) == "" {
			return nil, fmt.Errorf("%w: item name must not be empty", types.ErrValidation)
		}
		if in.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity %d for %q must be at least 1", types.ErrValidation, in.Quantity, in.Name)
		}
	}

	// Aggregate requested quantities per item, then check each aggregate
	// against its inventory line before any decrement.
	totals := make(map[string]int, len(items))
	order := make([]string, 0, len(items))
	for _, in := range items {
		key := strings.ToLower(in.Name)
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += in.Quantity
	}

	lines := make(map[string]int, len(order))
	for _, key := range order {
		idx := l.findInventoryByName(key)
		if idx < 0 {
			return nil, fmt.Errorf("%w: item %q is not in inventory", types.ErrNotFound, key)
		}
		if l.inventory[idx].Quantity < totals[key] {
			return nil, fmt.Errorf("%w: %d of %q requested, %d available",
				types.ErrInsufficientStock, totals[key], l.inventory[idx].Name, l.inventory[idx].Quantity)
		}
		lines[key] = idx
	}

	for _, key := range order {
		l.inventory[lines[key]].Quantity -= totals[key]
	}

	household := l.queue[queueIdx]
	taken := make([]types.DistributionItem, len(items))
	for i, in := range items {
		taken[i] = types.DistributionItem{Name: in.Name, Quantity: in.Quantity}
	}
	record := types.DistributionRecord{
		HouseholdName: household.Name,
		HouseholdSize: household.Size,
		Items:         taken,
		Date:          l.today(),
	}
	l.distributions = append(l.distributions, record)
	l.queue = append(l.queue[:queueIdx], l.queue[queueIdx+1:]...)

	if err := l.persistDistribution(); err != nil {
		return nil, err
	}
	return &record, nil
}

// findInventoryByName returns the index of the first inventory line whose
// lowercased name equals key, or -1. Distribution matches by name only; when
// several lines share a name with different expiration dates, the earliest
// stocked line is the one drawn from.
func (l *Ledger) findInventoryByName(key string) int {
	for i, item := range l.inventory {
		if strings.ToLower(item.Name) == key {
			return i
		}
	}
	return -1
}
