package engine

import (
	"fmt"
	"strconv"

	"github.com/popupcity/passes/internal/domain"
)

// ValidateCustomAmount checks a buyer-chosen amount against the
// product's pricing bounds. Non-variable products are always valid. A
// returned error wraps domain.ErrValidation and is safe to surface
// inline next to the input.
func ValidateCustomAmount(p domain.Product, amount *float64) error {
	if !p.IsVariablePrice() {
		return nil
	}

	if amount == nil {
		return fmt.Errorf("%w: amount is required for %s", domain.ErrValidation, p.Name)
	}

	if *amount < *p.MinPrice {
		return fmt.Errorf("%w: amount must be at least $%s", domain.ErrValidation, formatBound(*p.MinPrice))
	}

	if p.MaxPrice != nil && *amount > *p.MaxPrice {
		return fmt.Errorf("%w: amount must be at most $%s", domain.ErrValidation, formatBound(*p.MaxPrice))
	}

	return nil
}

// HasValidCustomAmount reports whether the product's recorded amount
// would pass validation.
func HasValidCustomAmount(p domain.PassProduct) bool {
	return ValidateCustomAmount(p.Product, p.CustomAmount) == nil
}

// EffectivePrice is the price a selection contributes to the total:
// the custom amount for a variable-price product that has one, the
// current price otherwise.
func EffectivePrice(p domain.PassProduct) float64 {
	if p.IsVariablePrice() && p.CustomAmount != nil {
		return *p.CustomAmount
	}
	return p.Price
}

// VariableAmount sums the chosen amounts of selected variable-price
// products.
func VariableAmount(products []domain.PassProduct) float64 {
	var sum float64
	for _, p := range products {
		if !p.Selected || !p.IsVariablePrice() || p.CustomAmount == nil {
			continue
		}
		qty := p.Quantity
		if qty < 1 {
			qty = 1
		}
		sum += *p.CustomAmount * float64(qty)
	}
	return sum
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
