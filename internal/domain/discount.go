package domain

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Discount is an externally-resolved discount (group code, referral or
// coupon). At most one discount is applied per session.
type Discount struct {
	Value  float64      `json:"discount_value"`
	Type   DiscountType `json:"discount_type"`
	Code   string       `json:"discount_code,omitempty"`
	CityID int64        `json:"city_id,omitempty"`
}

// IsZero reports whether no discount is applied.
func (d Discount) IsZero() bool {
	return d.Value == 0
}

// Coupon is a redeemable code stored per city.
type Coupon struct {
	ID            int64   `json:"id"`
	CityID        int64   `json:"city_id"`
	Code          string  `json:"code"`
	DiscountValue float64 `json:"discount_value"`
	Message       string  `json:"message,omitempty"`
	IsActive      bool    `json:"is_active"`
}
