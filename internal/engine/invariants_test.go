package engine

import (
	"testing"

	"github.com/popupcity/passes/internal/domain"
	"pgregory.net/rapid"
)

// Property: after any sequence of toggles, at most one exclusive
// product per attendee is selected.
func TestExclusivityInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roster := newRoster(
			exclusivePass(1, domain.CategoryDay, 40),
			exclusivePass(2, domain.CategoryDay, 50),
			exclusivePass(3, domain.CategoryDay, 60),
			newPass(4, domain.CategoryWeek, 100),
		)
		roster = withAttendee(roster, 2, domain.AttendeeSpouse,
			exclusivePass(1, domain.CategoryDay, 40),
			exclusivePass(2, domain.CategoryDay, 50),
		)

		steps := rapid.IntRange(1, 30).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			attendeeID := rapid.Int64Range(1, 2).Draw(t, "attendee")
			productID := rapid.Int64Range(1, 4).Draw(t, "product")
			roster = Toggle(roster, attendeeID, productID, domain.Discount{})
		}

		for _, a := range roster {
			selected := 0
			for _, p := range a.Products {
				if p.Exclusive && p.Selected {
					selected++
				}
			}
			if selected > 1 {
				t.Fatalf("attendee %d has %d exclusive products selected", a.ID, selected)
			}
		}
	})
}

// Property: pricing is idempotent — recomputing from the result never
// compounds a discount.
func TestPricingIdempotence(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := newPass(1, domain.CategoryWeek, rapid.Float64Range(0, 10000).Draw(t, "price"))
		d := domain.Discount{
			Value: rapid.Float64Range(0, 100).Draw(t, "discount"),
			Type:  domain.DiscountPercentage,
		}
		hasPatron := rapid.Bool().Draw(t, "patron")

		once := CalculatePrice(p, hasPatron, d)
		p.Price = once
		twice := CalculatePrice(p, hasPatron, d)

		if once != twice {
			t.Fatalf("price not stable: %v then %v", once, twice)
		}
	})
}

// Property: while a patron pass is selected, every non-special product
// in the roster prices at 0; deselecting restores the discounted
// baseline.
func TestPatronOverrideProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		price := rapid.Float64Range(1, 1000).Draw(t, "price")
		discount := rapid.Float64Range(0, 100).Draw(t, "discount")
		d := domain.Discount{Value: discount, Type: domain.DiscountPercentage}

		roster := newRoster(
			newPass(1, domain.CategoryWeek, price),
			newPass(10, domain.CategoryPatron, 3000),
		)
		roster = withAttendee(roster, 2, domain.AttendeeSpouse, newPass(1, domain.CategoryWeek, price))

		on := Toggle(roster, 1, 10, d)
		for _, a := range on {
			for _, p := range a.Products {
				if !p.Category.IsSpecial() && p.Price != 0 {
					t.Fatalf("product %d for attendee %d priced %v under patron", p.ID, a.ID, p.Price)
				}
			}
		}

		off := Toggle(on, 1, 10, d)
		want := price * (1 - discount/100)
		if discount == 0 {
			want = price
		}
		for _, a := range off {
			for _, p := range a.Products {
				if !p.Category.IsSpecial() && p.Price != want {
					t.Fatalf("product %d restored to %v, want %v", p.ID, p.Price, want)
				}
			}
		}
	})
}

// Property: selecting the four weeks in any order selects the month
// product; deselecting any one of them releases it.
func TestWeekMonthBundlingAnyOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		roster := fourWeeksAndMonth()

		order := rapid.Permutation([]int64{1, 2, 3, 4}).Draw(t, "order")
		for _, id := range order {
			roster = Toggle(roster, 1, id, domain.Discount{})
		}

		month, _ := roster[0].Product(5)
		if !month.Selected {
			t.Fatalf("month not selected after weeks %v", order)
		}

		drop := rapid.SampledFrom([]int64{1, 2, 3, 4}).Draw(t, "drop")
		roster = Toggle(roster, 1, drop, domain.Discount{})

		month, _ = roster[0].Product(5)
		if month.Selected {
			t.Fatalf("month still selected after dropping week %d", drop)
		}
	})
}

// Property: toggling a purchased product never changes the roster.
func TestPurchasedImmutability(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		owned := newPass(1, domain.CategoryWeek, 100)
		owned.Purchased = true
		roster := newRoster(owned, newPass(2, domain.CategoryMonth, 350))

		productID := int64(1)
		before := roster[0].Products[0]
		after := Toggle(roster, 1, productID, domain.Discount{})

		if after[0].Products[0] != before {
			t.Fatal("purchased product mutated")
		}
	})
}
