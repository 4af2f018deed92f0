package domain

import "time"

type ProductCategory string

const (
	CategoryWeek       ProductCategory = "week"
	CategoryMonth      ProductCategory = "month"
	CategoryPatron     ProductCategory = "patreon"
	CategorySupporter  ProductCategory = "supporter"
	CategoryLocalWeek  ProductCategory = "local week"
	CategoryLocalMonth ProductCategory = "local month"
	CategoryDay        ProductCategory = "day"
	CategoryHousing    ProductCategory = "housing"
	CategoryMerch      ProductCategory = "merch"
)

// IsSpecial reports whether the category is a patron-tier product.
// Patron and supporter passes are never discounted and never zeroed
// by the patron override.
func (c ProductCategory) IsSpecial() bool {
	return c == CategoryPatron || c == CategorySupporter
}

// Product is a catalog entry: an immutable template for a purchasable pass.
type Product struct {
	ID               int64            `json:"id"`
	CityID           int64            `json:"city_id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	Category         ProductCategory  `json:"category"`
	AttendeeCategory AttendeeCategory `json:"attendee_category"`
	Price            float64          `json:"price"`
	ComparePrice     *float64         `json:"compare_price,omitempty"`
	MinPrice         *float64         `json:"min_price,omitempty"`
	MaxPrice         *float64         `json:"max_price,omitempty"`
	StartDate        *time.Time       `json:"start_date,omitempty"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
	Exclusive        bool             `json:"exclusive"`
	IsActive         bool             `json:"is_active"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// IsVariablePrice reports whether the buyer chooses the amount.
// A product is variable-price iff min_price is set.
func (p Product) IsVariablePrice() bool {
	return p.MinPrice != nil
}

// EligibleFor reports whether the product may be attached to an
// attendee of the given category.
func (p Product) EligibleFor(c AttendeeCategory) bool {
	return p.AttendeeCategory == AttendeeAny || p.AttendeeCategory == c
}

// PassProduct is a Product instance scoped to one attendee for the
// duration of a selection session.
//
// OriginalPrice is the pre-discount baseline captured when the catalog
// is attached to the roster. Every repricing works from this baseline,
// never from the current Price, so recomputation is idempotent.
type PassProduct struct {
	Product

	AttendeeID    int64    `json:"attendee_id"`
	Selected      bool     `json:"selected"`
	Disabled      bool     `json:"disabled"`
	Purchased     bool     `json:"purchased"`
	Quantity      int      `json:"quantity,omitempty"`
	CustomAmount  *float64 `json:"custom_amount,omitempty"`
	OriginalPrice float64  `json:"original_price"`
}

// Baseline returns the price used for the pre-discount original total:
// compare price when the catalog carries one, otherwise the captured
// original price, otherwise the current price.
func (p PassProduct) Baseline() float64 {
	if p.ComparePrice != nil {
		return *p.ComparePrice
	}
	if p.OriginalPrice > 0 {
		return p.OriginalPrice
	}
	return p.Price
}
