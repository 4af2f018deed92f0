package engine

import (
	"math"

	"github.com/popupcity/passes/internal/domain"
)

// CalculatePrice computes a product's effective price from its
// baseline. It never reads the current Price of a repriced product, so
// repeated application is idempotent and a discount never compounds.
//
// A purchased patron pass subsumes every other pass: any non-special
// product costs 0 while hasPatronPurchased is true. Patron and
// supporter tiers themselves are never discounted.
func CalculatePrice(p domain.PassProduct, hasPatronPurchased bool, d domain.Discount) float64 {
	original := p.OriginalPrice
	if original == 0 {
		original = p.Price
	}

	if p.Category.IsSpecial() {
		return original
	}

	if hasPatronPurchased {
		return 0
	}

	switch d.Type {
	case domain.DiscountPercentage:
		if d.Value > 0 {
			return original * (1 - d.Value/100)
		}
	case domain.DiscountFixed:
		if d.Value > 0 {
			return math.Max(0, original-d.Value)
		}
	}

	return original
}

// BestDiscount keeps the better of the currently applied discount and a
// plain percentage offered to the application. A fixed discount is
// compared by the percentage it represents at the given price.
func BestDiscount(price, applicationDiscount float64, current domain.Discount) domain.Discount {
	offered := domain.Discount{Value: applicationDiscount, Type: domain.DiscountPercentage}

	if current.Type == domain.DiscountPercentage {
		if current.Value > applicationDiscount {
			return current
		}
		return offered
	}

	var fixedPercent float64
	if price > 0 {
		fixedPercent = current.Value / price * 100
	}
	if fixedPercent > applicationDiscount {
		return current
	}
	return offered
}

// Reprice recomputes every non-purchased price in the roster from its
// baseline. The patron override is global: a selected or purchased
// patron pass anywhere in the roster zeroes all other prices.
func Reprice(roster []domain.Attendee, d domain.Discount) []domain.Attendee {
	hasPatron := false
	for _, a := range roster {
		for _, p := range a.Products {
			if p.Category.IsSpecial() && (p.Selected || p.Purchased) {
				hasPatron = true
			}
		}
	}

	out := cloneRoster(roster)
	for ai := range out {
		for i := range out[ai].Products {
			p := &out[ai].Products[i]
			if p.Purchased {
				continue
			}
			p.Price = CalculatePrice(*p, hasPatron, d)
		}
	}
	return out
}
