package types

import (
	"fmt"
	"strings"
	"time"
)

// isoDateLayout is the layout for all persisted dates (expiration dates,
// donation dates, distribution dates).
const isoDateLayout = "2006-01-02"

// InventoryItem is one inventory line: a named item with a quantity and an
// expiration date. Lines are merged case-insensitively on (name, expiration
// date), so the inventory holds at most one line per key. Quantity never goes
// negative; lines that reach zero stay in storage as history but are excluded
// from display and search views.
type InventoryItem struct {
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	ExpirationDate string `json:"expiration_date"`
}

// Key returns the merge identity of the line: the lowercased name joined with
// the expiration date. Two lines with equal keys are the same inventory line.
func (i InventoryItem) Key() string {
	return strings.ToLower(i.Name) + "\x00" + i.ExpirationDate
}

// Validate checks that the line is well-formed: non-empty name, non-negative
// quantity, and an ISO (YYYY-MM-DD) expiration date. Returns an error
// wrapping ErrValidation on failure.
func (i InventoryItem) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("%w: item name must not be empty", ErrValidation)
	}
	if i.Quantity < 0 {
		return fmt.Errorf("%w: quantity %d for %q must not be negative", ErrValidation, i.Quantity, i.Name)
	}
	if err := ValidateISODate(i.ExpirationDate); err != nil {
		return fmt.Errorf("expiration date for %q: %w", i.Name, err)
	}
	return nil
}

// ValidateISODate checks that s is a date in YYYY-MM-DD form. Returns an
// error wrapping ErrValidation otherwise.
func ValidateISODate(s string) error {
	if _, err := time.Parse(isoDateLayout, s); err != nil {
		return fmt.Errorf("%w: %q is not an ISO date (YYYY-MM-DD)", ErrValidation, s)
	}
	return nil
}

// FormatISODate formats t as a YYYY-MM-DD date string.
func FormatISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}
