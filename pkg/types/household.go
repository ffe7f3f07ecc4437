package types

// Household is a family waiting in the queue. Households live only for the
// current session: they are never persisted, and IDs restart at 1 on every
// process start. A household leaves the queue by being served (a recorded
// distribution) or by manual removal; both are terminal.
type Household struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Size int    `json:"size"`
}
