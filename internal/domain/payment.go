package domain

import "time"

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

// Payment is one checkout submission. Items are frozen at submission
// time; once the payment is approved they become the application's
// purchased products.
type Payment struct {
	ID            string        `json:"id"`
	ApplicationID int64         `json:"application_id"`
	CityID        int64         `json:"city_id"`
	Status        PaymentStatus `json:"status"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	ExternalID    *string       `json:"external_id,omitempty"`
	CheckoutURL   string        `json:"checkout_url,omitempty"`
	Items         []CartItem    `json:"items"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
