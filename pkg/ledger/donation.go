package ledger

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// FoodItemInput is one donated item line as submitted by the caller.
type FoodItemInput struct {
	Name           string
	Quantity       int
	ExpirationDate string
}

// AddFoodDonation records a food donation from donor and folds the items into
// inventory. Items merge case-insensitively on (name, expiration date):
// an existing line is incremented, otherwise a new line is appended. The
// returned donation's details hold the items as submitted, independent of how
// they merged.
//
// Validation is all-or-nothing: an empty donor, an empty item list, or any
// item with an empty name, a quantity below one, or a malformed expiration
// date fails the whole call with types.ErrValidation before any state
// changes. On success all three collections are persisted.
func (l *Ledger) AddFoodDonation(donor string, items []FoodItemInput) (*types.Donation, error) {
	if strings.TrimSpace(donor) == "" {
		return nil, fmt.Errorf("%w: donor name must not be empty", types.ErrValidation)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: a food donation needs at least one item", types.ErrValidation)
	}

	donated := make([]types.InventoryItem, 0, len(items))
	for _, in := range items {
		if in.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity %d for %q must be at least 1", types.ErrValidation, in.Quantity, in.Name)
		}
		item := types.InventoryItem{
			Name:           in.Name,
			Quantity:       in.Quantity,
			ExpirationDate: in.ExpirationDate,
		}
		if err := item.Validate(); err != nil {
			return nil, err
		}
		donated = append(donated, item)
	}

	for _, item := range donated {
		if idx := l.findInventoryLine(item.Key()); idx >= 0 {
			l.inventory[idx].Quantity += item.Quantity
		} else {
			l.inventory = append(l.inventory, item)
		}
	}

	details := make(types.FoodDetails, len(donated))
	copy(details, donated)
	donation := types.Donation{
		Donor:   donor,
		Type:    types.DonationFood,
		Details: details,
		Date:    l.today(),
	}
	l.donations = append(l.donations, donation)

	if err := l.persistAll(); err != nil {
		return nil, err
	}
	return &donation, nil
}

// AddMoneyDonation records a monetary donation. The amount must be positive
// and is rounded to two decimals before logging. Inventory is untouched.
func (l *Ledger) AddMoneyDonation(donor string, amount decimal.Decimal) (*types.Donation, error) {
	if strings.TrimSpace(donor) == "" {
		return nil, fmt.Errorf("%w: donor name must not be empty", types.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount %s must be positive", types.ErrValidation, amount)
	}

	donation := types.Donation{
		Donor:   donor,
		Type:    types.DonationMoney,
		Details: types.MoneyDetails(amount.Round(2)),
		Date:    l.today(),
	}
	l.donations = append(l.donations, donation)

	if err := l.persistAll(); err != nil {
		return nil, err
	}
	return &donation, nil
}

// findInventoryLine returns the index of the inventory line with the given
// merge key, or -1.
func (l *Ledger) findInventoryLine(key string) int {
	for i, item := range l.inventory {
		if item.Key() == key {
			return i
		}
	}
	return -1
}
