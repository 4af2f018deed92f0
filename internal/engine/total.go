package engine

import (
	"math"
	"strconv"

	"github.com/popupcity/passes/internal/domain"
)

// TotalResult is the derived cart total, recomputed in full on every
// mutation and never treated as a source of truth.
type TotalResult struct {
	Total          float64 `json:"total"`
	OriginalTotal  float64 `json:"original_total"`
	DiscountAmount float64 `json:"discount_amount"`
	Balance        float64 `json:"balance"`
}

// ComputeTotal walks every attendee's selected, non-purchased products
// and reduces the roster to a total. Credit is subtracted after all
// percentage and patron logic; the result never goes negative.
func ComputeTotal(roster []domain.Attendee, credit float64) TotalResult {
	var res TotalResult
	for _, a := range roster {
		total, original := attendeeTotals(a)
		res.Total += total
		res.OriginalTotal += original
	}

	res.DiscountAmount = res.OriginalTotal - res.Total
	if res.DiscountAmount < 0 {
		res.DiscountAmount = 0
	}

	res.Total -= credit
	if res.Total < 0 {
		res.Total = 0
	}
	res.Balance = res.Total

	return res
}

// attendeeTotals sums one attendee's selections. When the month product
// is selected the bundled week prices are excluded from the total so a
// four-week bundle is never double-charged; they still count toward the
// original (pre-discount) total.
func attendeeTotals(a domain.Attendee) (total, original float64) {
	monthSelected := false
	for _, p := range a.Products {
		if p.Category == domain.CategoryMonth && p.Selected && !p.Purchased {
			monthSelected = true
		}
	}

	for _, p := range a.Products {
		if p.Purchased {
			continue
		}
		if !p.Selected && p.Quantity == 0 {
			continue
		}

		qty := p.Quantity
		if qty < 1 {
			qty = 1
		}

		original += p.Baseline() * float64(qty)

		if monthSelected && p.Category == domain.CategoryWeek {
			continue
		}
		total += EffectivePrice(p) * float64(qty)
	}
	return total, original
}

// Round2 rounds to 2 decimals. Strategies never round; this applies
// only at the aggregation/display boundary.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders an amount with fixed 2-decimal formatting.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', 2, 64)
}
