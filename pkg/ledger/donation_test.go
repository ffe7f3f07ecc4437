package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func TestAddFoodDonationEmptyStore(t *testing.T) {
	l, _ := newTestLedger(t)

	donation, err := l.AddFoodDonation("Alice", []FoodItemInput{
		{Name: "Rice", Quantity: 10, ExpirationDate: "2025-12-01"},
	})
	require.NoError(t, err)

	inventory := l.Inventory()
	require.Len(t, inventory, 1)
	assert.Equal(t, types.InventoryItem{Name: "Rice", Quantity: 10, ExpirationDate: "2025-12-01"}, inventory[0])

	log := l.Donations()
	require.Len(t, log, 1)
	assert.Equal(t, "Alice", log[0].Donor)
	assert.Equal(t, types.DonationFood, log[0].Type)
	assert.Equal(t, testDate, log[0].Date)
	assert.Equal(t, *donation, log[0])
}

func TestAddFoodDonationMergesCaseInsensitively(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.AddFoodDonation("Alice", []FoodItemInput{
		{Name: "Rice", Quantity: 10, ExpirationDate: "2025-12-01"},
	})
	require.NoError(t, err)

	_, err = l.AddFoodDonation("Bob", []FoodItemInput{
		{Name: "rice", Quantity: 5, ExpirationDate: "2025-12-01"},
	})
	require.NoError(t, err)

	inventory := l.Inventory()
	require.Len(t, inventory, 1, "same name and date must merge into one line")
	assert.Equal(t, "Rice", inventory[0].Name, "the first-stocked spelling wins")
	assert.Equal(t, 15, inventory[0].Quantity)
}

func TestAddFoodDonationDistinctDatesStaySeparate(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.AddFoodDonation("Alice", []FoodItemInput{
		{Name: "Rice", Quantity: 10, ExpirationDate: "2025-12-01"},
		{Name: "Rice", Quantity: 4, ExpirationDate: "2026-02-01"},
	})
	require.NoError(t, err)

	inventory := l.Inventory()
	require.Len(t, inventory, 2, "same name with different expiration dates is two lines")
	assert.Equal(t, 10, inventory[0].Quantity)
	assert.Equal(t, 4, inventory[1].Quantity)
}

func TestAddFoodDonationDetailsAreAsSubmitted(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.AddFoodDonation("Alice", []FoodItemInput{
		{Name: "Rice", Quantity: 10, ExpirationDate: "2025-12-01"},
	})
	require.NoError(t, err)

	// The second donation merges into the existing line, but its own record
	// must keep the submitted item list, not the merged totals.
	donation, err := l.AddFoodDonation("Bob", []FoodItemInput{
		{Name: "rice", Quantity: 5, ExpirationDate: "2025-12-01"},
	})
	require.NoError(t, err)

	details, ok := donation.Details.(types.FoodDetails)
	require.True(t, ok)
	require.Len(t, details, 1)
	assert.Equal(t, "rice", details[0].Name)
	assert.Equal(t, 5, details[0].Quantity)
}

func TestAddFoodDonationNeverDecreasesInventory(t *testing.T) {
	l, _ := newTestLedger(t)

	_, err := l.AddFoodDonation("Alice", []FoodItemInput{
		{Name: "Rice", Quantity: 10, ExpirationDate: "2025-12-01"},
		{Name: "Beans", Quantity: 3, ExpirationDate: "2026-01-15"},
	})
	require.NoError(t, err)
	before := l.Inventory()

	_, err = l.AddFoodDonation("Bob", []FoodItemInput{
		{Name: "rice", Quantity: 1, ExpirationDate: "2025-12-01"},
		{Name: "Pasta", Quantity: 7, ExpirationDate: "2026-03-01"},
	})
	require.NoError(t, err)

	after := l.Inventory()
	for _, prev := range before {
		for _, cur := range after {
			if cur.Key() == prev.Key() {
				assert.GreaterOrEqual(t, cur.Quantity, prev.Quantity)
			}
		}
	}
}

func TestAddFoodDonationValidationIsAllOrNothing(t *testing.T) {
	tests := []struct {
		name  string
		donor string
		items []FoodItemInput
	}{
		{
			name:  "empty donor",
			donor: "",
			items: []FoodItemInput{{Name: "Rice", Quantity: 1, ExpirationDate: "2025-12-01"}},
		},
		{
			name:  "no items",
			donor: "Alice",
			items: nil,
		},
		{
			name:  "zero quantity",
			donor: "Alice",
			items: []FoodItemInput{{Name: "Rice", Quantity: 0, ExpirationDate: "2025-12-01"}},
		},
		{
			name:  "second item invalid",
			donor: "Alice",
			items: []FoodItemInput{
				{Name: "Rice", Quantity: 5, ExpirationDate: "2025-12-01"},
				{Name: "Beans", Quantity: 2, ExpirationDate: "not-a-date"},
			},
		},
		{
			name:  "empty item name",
			donor: "Alice",
			items: []FoodItemInput{{Name: "  ", Quantity: 1, ExpirationDate: "2025-12-01"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, _ := newTestLedger(t)

			_, err := l.AddFoodDonation(tt.donor, tt.items)
			require.ErrorIs(t, err, types.ErrValidation)
			assert.Empty(t, l.Inventory(), "a rejected donation must leave inventory untouched")
			assert.Empty(t, l.Donations(), "a rejected donation must not be logged")
		})
	}
}

func TestUniqueInventoryLinesAfterDonations(t *testing.T) {
	l, _ := newTestLedger(t)

	inputs := []FoodItemInput{
		{Name: "Rice", Quantity: 1, ExpirationDate: "2025-12-01"},
		{Name: "RICE", Quantity: 2, ExpirationDate: "2025-12-01"},
		{Name: "rice", Quantity: 3, ExpirationDate: "2026-02-01"},
		{Name: "Beans", Quantity: 4, ExpirationDate: "2025-12-01"},
	}
	_, err := l.AddFoodDonation("Alice", inputs)
	require.NoError(t, err)
	_, err = l.AddFoodDonation("Bob", inputs)
	require.NoError(t, err)

	seen := map[string]bool{}
	for _, item := range l.Inventory() {
		require.False(t, seen[item.Key()], "duplicate inventory line for key %q", item.Key())
		seen[item.Key()] = true
	}
	require.Len(t, seen, 3)
}

func TestAddMoneyDonation(t *testing.T) {
	l, _ := newTestLedger(t)

	donation, err := l.AddMoneyDonation("Bob", decimal.RequireFromString("25.505"))
	require.NoError(t, err)

	assert.Equal(t, types.DonationMoney, donation.Type)
	assert.Equal(t, testDate, donation.Date)

	money, ok := donation.Details.(types.MoneyDetails)
	require.True(t, ok)
	assert.True(t, money.Amount().Equal(decimal.RequireFromString("25.51")),
		"amount should round to two decimals, got %s", money.Amount())

	require.Len(t, l.Donations(), 1)
	assert.Empty(t, l.Inventory(), "money donations must not touch inventory")
}

func TestAddMoneyDonationRejectsNonPositiveAmounts(t *testing.T) {
	l, _ := newTestLedger(t)

	for _, amount := range []string{"0", "-5", "-0.01"} {
		_, err := l.AddMoneyDonation("Bob", decimal.RequireFromString(amount))
		require.ErrorIs(t, err, types.ErrValidation, "amount %s", amount)
	}
	_, err := l.AddMoneyDonation("", decimal.RequireFromString("10"))
	require.ErrorIs(t, err, types.ErrValidation)

	assert.Empty(t, l.Donations())
}
