package types

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Money amounts persist as bare JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Donation types.
const (
	DonationFood  = "Food"
	DonationMoney = "Money"
)

// DonationDetails is the payload of a donation, discriminated by the
// donation's Type field: FoodDetails for "Food", MoneyDetails for "Money".
type DonationDetails interface {
	donationDetails()
}

// FoodDetails lists the items given in a single food donation, exactly as
// submitted. The list is independent of how the items later merged into
// inventory lines.
type FoodDetails []InventoryItem

func (FoodDetails) donationDetails() {}

// MoneyDetails is the amount of a monetary donation, rounded to two decimals.
type MoneyDetails decimal.Decimal

func (MoneyDetails) donationDetails() {}

// Amount returns the donated amount as a decimal.
func (m MoneyDetails) Amount() decimal.Decimal {
	return decimal.Decimal(m)
}

// MarshalJSON encodes the amount as a bare number. Defined types do not pick
// up the underlying decimal's marshaller, so delegate explicitly.
func (m MoneyDetails) MarshalJSON() ([]byte, error) {
	return decimal.Decimal(m).MarshalJSON()
}

// Donation is one logged contribution event. Immutable once appended to the
// donations log.
type Donation struct {
	Donor   string
	Type    string
	Details DonationDetails
	Date    string
}

// donationJSON is the persisted shape: {donor, type, details, date} with
// details an item array for food or a bare number for money.
type donationJSON struct {
	Donor   string          `json:"donor"`
	Type    string          `json:"type"`
	Details json.RawMessage `json:"details"`
	Date    string          `json:"date"`
}

// MarshalJSON encodes the donation in its persisted shape.
func (d Donation) MarshalJSON() ([]byte, error) {
	details, err := json.Marshal(d.Details)
	if err != nil {
		return nil, fmt.Errorf("marshal %s donation details: %w", d.Type, err)
	}
	return json.Marshal(donationJSON{
		Donor:   d.Donor,
		Type:    d.Type,
		Details: details,
		Date:    d.Date,
	})
}

// UnmarshalJSON decodes the persisted shape, reconstituting Details as
// FoodDetails or MoneyDetails based on the type discriminant.
func (d *Donation) UnmarshalJSON(data []byte) error {
	var raw donationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	details, err := UnmarshalDetails(raw.Type, raw.Details)
	if err != nil {
		return err
	}
	d.Donor = raw.Donor
	d.Type = raw.Type
	d.Details = details
	d.Date = raw.Date
	return nil
}

// UnmarshalDetails decodes a donation details payload for the given donation
// type. Food details are an array of inventory items; money details are a
// single number.
func UnmarshalDetails(donationType string, data []byte) (DonationDetails, error) {
	switch donationType {
	case DonationFood:
		var items FoodDetails
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("unmarshal food donation details: %w", err)
		}
		return items, nil
	case DonationMoney:
		var amount decimal.Decimal
		if err := json.Unmarshal(data, &amount); err != nil {
			return nil, fmt.Errorf("unmarshal money donation details: %w", err)
		}
		return MoneyDetails(amount), nil
	default:
		return nil, fmt.Errorf("unknown donation type %q", donationType)
	}
}
