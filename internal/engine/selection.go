// Package engine implements the pass selection and pricing rules: pure
// functions that, given one mutation on one product for one attendee,
// return the transformed roster. Nothing in this package performs I/O
// or mutates its input; every caller gets a fresh roster back.
package engine

import "github.com/popupcity/passes/internal/domain"

// selectionStrategy encapsulates the side effects of toggling one
// product for one attendee.
type selectionStrategy func(roster []domain.Attendee, attendeeID int64, target domain.PassProduct, d domain.Discount) []domain.Attendee

// strategyFor dispatches on (category, exclusive). An exclusive product
// always uses the exclusive strategy; unrecognized categories fall back
// to it as well.
func strategyFor(category domain.ProductCategory, exclusive bool) selectionStrategy {
	if exclusive {
		return applyExclusive
	}
	switch category {
	case domain.CategoryPatron:
		return applyPatron
	case domain.CategoryMonth:
		return applyMonth
	case domain.CategoryWeek:
		return applyWeek
	default:
		return applyExclusive
	}
}

// Toggle flips the selection of one product for one attendee and
// applies the category's side effects. A product id not present in the
// roster, or a purchased product, is a no-op: the roster is returned
// unchanged.
func Toggle(roster []domain.Attendee, attendeeID, productID int64, d domain.Discount) []domain.Attendee {
	target, ok := findProduct(roster, attendeeID, productID)
	if !ok || target.Purchased {
		return roster
	}
	return strategyFor(target.Category, target.Exclusive)(roster, attendeeID, target, d)
}

// applyExclusive toggles the target. When an exclusive product turns
// on, every other exclusive product of the same attendee is deselected
// and disabled until the target turns off again.
func applyExclusive(roster []domain.Attendee, attendeeID int64, target domain.PassProduct, _ domain.Discount) []domain.Attendee {
	willSelect := !target.Selected

	out := cloneRoster(roster)
	for ai := range out {
		if out[ai].ID != attendeeID {
			continue
		}
		for i := range out[ai].Products {
			p := &out[ai].Products[i]
			if p.Purchased {
				continue
			}
			switch {
			case p.ID == target.ID:
				p.Selected = willSelect
				p.Disabled = false
			case target.Exclusive && p.Exclusive:
				if willSelect {
					p.Selected = false
					p.Disabled = true
				} else {
					p.Disabled = false
				}
			}
		}
	}
	return out
}

// applyPatron toggles the patron pass for the target attendee and
// reprices every product of every attendee. This is deliberately a
// full-roster rewrite, not a single-attendee mutation: a patron
// purchase anywhere zeroes all other non-patron prices, and turning it
// off restores them from their baselines with the discount reapplied.
func applyPatron(roster []domain.Attendee, attendeeID int64, target domain.PassProduct, d domain.Discount) []domain.Attendee {
	willSelect := !target.Selected

	out := cloneRoster(roster)
	for ai := range out {
		for i := range out[ai].Products {
			p := &out[ai].Products[i]
			if p.Purchased {
				continue
			}
			if out[ai].ID == attendeeID && p.ID == target.ID {
				p.Selected = willSelect
				continue
			}
			p.Price = CalculatePrice(*p, willSelect, d)
		}
	}
	return out
}

// applyMonth toggles the month product and forces every week product of
// the same attendee to the month's new state: selecting the month
// bundles all weeks, deselecting it releases them.
func applyMonth(roster []domain.Attendee, attendeeID int64, target domain.PassProduct, _ domain.Discount) []domain.Attendee {
	willSelect := !target.Selected

	out := cloneRoster(roster)
	for ai := range out {
		if out[ai].ID != attendeeID {
			continue
		}
		for i := range out[ai].Products {
			p := &out[ai].Products[i]
			if p.Purchased {
				continue
			}
			switch {
			case p.ID == target.ID:
				p.Selected = willSelect
			case p.Category == domain.CategoryWeek:
				p.Selected = willSelect
			}
		}
	}
	return out
}

// applyWeek toggles one week and recounts the attendee's selected
// weeks as they will stand after the change. A nonzero count divisible
// by 4 selects the attendee's month product, any other count deselects
// it. Individual week prices are never altered here; the bundle is
// priced by the total aggregator.
func applyWeek(roster []domain.Attendee, attendeeID int64, target domain.PassProduct, _ domain.Discount) []domain.Attendee {
	willSelect := !target.Selected

	var futureWeeks int
	for _, a := range roster {
		if a.ID != attendeeID {
			continue
		}
		for _, p := range a.Products {
			if p.Category != domain.CategoryWeek || p.Purchased {
				continue
			}
			selected := p.Selected
			if p.ID == target.ID {
				selected = willSelect
			}
			if selected {
				futureWeeks++
			}
		}
	}
	monthSelected := futureWeeks != 0 && futureWeeks%4 == 0

	out := cloneRoster(roster)
	for ai := range out {
		if out[ai].ID != attendeeID {
			continue
		}
		for i := range out[ai].Products {
			p := &out[ai].Products[i]
			if p.Purchased {
				continue
			}
			switch {
			case p.ID == target.ID:
				p.Selected = willSelect
			case p.Category == domain.CategoryMonth:
				p.Selected = monthSelected
			}
		}
	}
	return out
}

// SetQuantity sets the unit count of a multi-unit product (merch). The
// product counts as selected while its quantity is positive.
func SetQuantity(roster []domain.Attendee, attendeeID, productID int64, quantity int) []domain.Attendee {
	target, ok := findProduct(roster, attendeeID, productID)
	if !ok || target.Purchased {
		return roster
	}
	if quantity < 0 {
		quantity = 0
	}

	out := cloneRoster(roster)
	for ai := range out {
		if out[ai].ID != attendeeID {
			continue
		}
		for i := range out[ai].Products {
			p := &out[ai].Products[i]
			if p.ID == productID {
				p.Quantity = quantity
				p.Selected = quantity > 0
			}
		}
	}
	return out
}

// SetCustomAmount records the buyer-chosen amount on a variable-price
// product. Validation happens separately; an out-of-bounds amount is
// stored but keeps the product out of a valid total until corrected.
func SetCustomAmount(roster []domain.Attendee, attendeeID, productID int64, amount *float64) []domain.Attendee {
	target, ok := findProduct(roster, attendeeID, productID)
	if !ok || target.Purchased || !target.IsVariablePrice() {
		return roster
	}

	out := cloneRoster(roster)
	for ai := range out {
		if out[ai].ID != attendeeID {
			continue
		}
		for i := range out[ai].Products {
			p := &out[ai].Products[i]
			if p.ID == productID {
				p.CustomAmount = amount
			}
		}
	}
	return out
}

func findProduct(roster []domain.Attendee, attendeeID, productID int64) (domain.PassProduct, bool) {
	for _, a := range roster {
		if a.ID != attendeeID {
			continue
		}
		return a.Product(productID)
	}
	return domain.PassProduct{}, false
}

func cloneRoster(roster []domain.Attendee) []domain.Attendee {
	out := make([]domain.Attendee, len(roster))
	for i, a := range roster {
		out[i] = a
		out[i].Products = append([]domain.PassProduct(nil), a.Products...)
	}
	return out
}
