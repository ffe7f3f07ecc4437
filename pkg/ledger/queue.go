package ledger

import (
	"fmt"
	"strings"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

// SignInHousehold appends a household to the waiting queue and assigns it the
// next session ID (monotonically increasing from 1, never reused within a
// process). The queue is not persisted: a waiting list only has meaning
// within the current operating session.
func (l *Ledger) SignInHousehold(name string, size int) (*types.Household, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: household name must not be empty", types.ErrValidation)
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: household size %d must be at least 1", types.ErrValidation, size)
	}

	h := types.Household{
		ID:   l.nextHouseholdID,
		Name: name,
		Size: size,
	}
	l.nextHouseholdID++
	l.queue = append(l.queue, h)
	return &h, nil
}

// RemoveHousehold removes the household with the given ID from the queue, for
// families that leave before being served. Returns types.ErrNotFound if no
// queue entry has that ID. Inventory and logs are untouched.
func (l *Ledger) RemoveHousehold(id int) error {
	idx := l.findQueued(id)
	if idx < 0 {
		return fmt.Errorf("%w: household %d is not in the queue", types.ErrNotFound, id)
	}
	l.queue = append(l.queue[:idx], l.queue[idx+1:]...)
	return nil
}

// Queue returns a copy of the waiting queue in sign-in order.
func (l *Ledger) Queue() []types.Household {
	q := make([]types.Household, len(l.queue))
	copy(q, l.queue)
	return q
}

// findQueued returns the queue index of the household with the given ID,
// or -1.
func (l *Ledger) findQueued(id int) int {
	for i, h := range l.queue {
		if h.ID == id {
			return i
		}
	}
	return -1
}
