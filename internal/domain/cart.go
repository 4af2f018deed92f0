package domain

import "time"

// CartItem is one persisted selection: a product picked for one
// attendee, with the optional quantity and custom amount needed to
// restore the roster exactly.
type CartItem struct {
	AttendeeID   int64    `json:"attendee_id"`
	ProductID    int64    `json:"product_id"`
	Quantity     int      `json:"quantity,omitempty"`
	CustomAmount *float64 `json:"custom_amount,omitempty"`
}

// Cart is the persisted in-progress selection for one application and
// city, so a reload restores state. PendingSince is set when the buyer
// is redirected to the payment provider; a pending cart is not restored
// until the payment resolves or the pending window expires.
type Cart struct {
	ID            string     `json:"id"`
	ApplicationID int64      `json:"application_id"`
	CityID        int64      `json:"city_id"`
	Items         []CartItem `json:"items"`
	Discount      Discount   `json:"discount"`
	PendingSince  *time.Time `json:"pending_since,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// IsPending reports whether a checkout redirect is outstanding.
func (c Cart) IsPending() bool {
	return c.PendingSince != nil
}
