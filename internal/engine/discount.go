package engine

import (
	"math"

	"github.com/popupcity/passes/internal/domain"
)

// Resolved is the single scalar discount applied to a session, with its
// display label.
type Resolved struct {
	Percent   float64 `json:"percent"`
	Label     string  `json:"label"`
	EarlyBird bool    `json:"early_bird"`
}

const patronLabel = "As a Patron, you are directly supporting the ecosystem."

// ResolveDiscount picks the best-applicable discount for the session.
// Precedence: patron short-circuits everything, then an externally
// assigned discount, then the early-bird gap computed from the
// representative week product's compare price.
func ResolveDiscount(isPatron bool, app domain.Application, week domain.Product, external domain.Discount) Resolved {
	if isPatron {
		return Resolved{Percent: 100, Label: patronLabel}
	}

	hasGap := week.ComparePrice != nil && *week.ComparePrice > 0 && week.Price != *week.ComparePrice

	if !app.DiscountAssigned && !hasGap && external.IsZero() {
		return Resolved{}
	}

	if !external.IsZero() {
		label := "unlocked code discount"
		if app.DiscountAssigned {
			label = "awarded special discount"
		}
		return Resolved{Percent: external.Value, Label: label}
	}

	if !hasGap {
		return Resolved{}
	}

	percent := math.Round(100 - week.Price / *week.ComparePrice * 100)
	return Resolved{Percent: percent, Label: "early bird discount", EarlyBird: true}
}

// RepresentativeWeek picks any week product whose price differs from
// its compare price. When none exists a neutral placeholder yields a
// zero early-bird discount.
func RepresentativeWeek(products []domain.Product) domain.Product {
	for _, p := range products {
		if p.Category == domain.CategoryWeek && p.ComparePrice != nil && p.Price != *p.ComparePrice {
			return p
		}
	}
	neutral := 100.0
	return domain.Product{Price: neutral, ComparePrice: &neutral}
}
