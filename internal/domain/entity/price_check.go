package entity

import "time"

// PriceCheck is one row of the append-only history of successful
// checks, kept for auditing price movement over time.
type PriceCheck struct {
	ID             uint      `json:"id"`
	SubscriptionID string    `json:"subscriptionId"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	Price          float64   `json:"price"`
	BestDate       string    `json:"bestDate,omitempty"`
	CheckedAt      time.Time `json:"checkedAt"`
}
