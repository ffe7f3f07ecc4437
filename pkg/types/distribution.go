package types

// DistributionItem is one line of a distribution: an item name and the
// quantity handed out.
type DistributionItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DistributionRecord is one logged distribution event. A record is only ever
// created for a fully satisfiable request: at the moment of recording, every
// item was in stock at the requested quantity. Immutable once appended to the
// distributions log.
type DistributionRecord struct {
	HouseholdName string             `json:"household_name"`
	HouseholdSize int                `json:"household_size"`
	Items         []DistributionItem `json:"items"`
	Date          string             `json:"date"`
}
