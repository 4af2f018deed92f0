package engine

import (
	"testing"

	"github.com/popupcity/passes/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_UnknownProductIsNoOp(t *testing.T) {
	roster := newRoster(newPass(1, domain.CategoryWeek, 100))

	got := Toggle(roster, 1, 999, domain.Discount{})
	assert.Equal(t, roster, got)

	got = Toggle(roster, 999, 1, domain.Discount{})
	assert.Equal(t, roster, got)
}

func TestToggle_PurchasedProductIsNoOp(t *testing.T) {
	p := newPass(1, domain.CategoryWeek, 100)
	p.Purchased = true
	roster := newRoster(p)

	got := Toggle(roster, 1, 1, domain.Discount{})

	assert.Equal(t, roster, got)
	assert.False(t, got[0].Products[0].Selected)
}

func TestToggle_DoesNotMutateInput(t *testing.T) {
	roster := newRoster(newPass(1, domain.CategoryWeek, 100))

	got := Toggle(roster, 1, 1, domain.Discount{})

	assert.True(t, got[0].Products[0].Selected)
	assert.False(t, roster[0].Products[0].Selected)
}

func TestExclusive_SelectingDisablesOtherExclusives(t *testing.T) {
	other := exclusivePass(2, domain.CategoryDay, 50)
	other.Selected = true
	roster := newRoster(
		exclusivePass(1, domain.CategoryDay, 40),
		other,
		newPass(3, domain.CategoryWeek, 100),
	)

	got := Toggle(roster, 1, 1, domain.Discount{})

	a := got[0]
	assert.True(t, a.Products[0].Selected)
	assert.False(t, a.Products[1].Selected)
	assert.True(t, a.Products[1].Disabled)
	// non-exclusive products are untouched
	assert.False(t, a.Products[2].Selected)
	assert.False(t, a.Products[2].Disabled)
}

func TestExclusive_DeselectingReenablesOthers(t *testing.T) {
	first := exclusivePass(1, domain.CategoryDay, 40)
	first.Selected = true
	second := exclusivePass(2, domain.CategoryDay, 50)
	second.Disabled = true
	roster := newRoster(first, second)

	got := Toggle(roster, 1, 1, domain.Discount{})

	assert.False(t, got[0].Products[0].Selected)
	assert.False(t, got[0].Products[1].Disabled)
}

func TestExclusive_AtMostOneSelectedPerAttendee(t *testing.T) {
	roster := newRoster(
		exclusivePass(1, domain.CategoryDay, 40),
		exclusivePass(2, domain.CategoryDay, 50),
		exclusivePass(3, domain.CategoryDay, 60),
	)

	roster = Toggle(roster, 1, 1, domain.Discount{})
	roster = Toggle(roster, 1, 2, domain.Discount{})
	roster = Toggle(roster, 1, 3, domain.Discount{})

	count := 0
	for _, p := range roster[0].Products {
		if p.Selected {
			count++
		}
	}
	assert.LessOrEqual(t, count, 1)
}

func TestPatron_SelectionZeroesEveryAttendee(t *testing.T) {
	roster := newRoster(
		newPass(1, domain.CategoryWeek, 100),
		newPass(10, domain.CategoryPatron, 3000),
	)
	roster = withAttendee(roster, 2, domain.AttendeeSpouse,
		newPass(1, domain.CategoryWeek, 100),
		newPass(2, domain.CategoryMonth, 350),
	)

	got := Toggle(roster, 1, 10, domain.Discount{})

	require.True(t, got[0].Products[1].Selected)
	assert.Equal(t, 0.0, got[0].Products[0].Price)
	assert.Equal(t, 0.0, got[1].Products[0].Price)
	assert.Equal(t, 0.0, got[1].Products[1].Price)
	assert.Equal(t, 3000.0, got[0].Products[1].Price)
}

func TestPatron_DeselectionRestoresPricesWithDiscount(t *testing.T) {
	patron := newPass(10, domain.CategoryPatron, 3000)
	patron.Selected = true
	week := newPass(1, domain.CategoryWeek, 100)
	week.Price = 0 // zeroed while patron was selected
	roster := newRoster(week, patron)

	d := domain.Discount{Value: 20, Type: domain.DiscountPercentage}
	got := Toggle(roster, 1, 10, d)

	assert.False(t, got[0].Products[1].Selected)
	assert.Equal(t, 80.0, got[0].Products[0].Price)
}

func TestPatron_DoesNotRepricePurchased(t *testing.T) {
	owned := newPass(1, domain.CategoryWeek, 100)
	owned.Purchased = true
	roster := newRoster(owned, newPass(10, domain.CategoryPatron, 3000))

	got := Toggle(roster, 1, 10, domain.Discount{})

	assert.Equal(t, 100.0, got[0].Products[0].Price)
}

func TestMonth_SelectionBundlesAllWeeks(t *testing.T) {
	roster := fourWeeksAndMonth()

	got := Toggle(roster, 1, 5, domain.Discount{})

	for _, p := range got[0].Products {
		assert.True(t, p.Selected, "product %d", p.ID)
	}
}

func TestMonth_DeselectionReleasesAllWeeks(t *testing.T) {
	roster := fourWeeksAndMonth()
	for i := range roster[0].Products {
		roster[0].Products[i].Selected = true
	}

	got := Toggle(roster, 1, 5, domain.Discount{})

	for _, p := range got[0].Products {
		assert.False(t, p.Selected, "product %d", p.ID)
	}
}

func TestMonth_DoesNotCrossAttendeeBoundaries(t *testing.T) {
	roster := fourWeeksAndMonth()
	spouseWeek := newPass(1, domain.CategoryWeek, 100)
	roster = withAttendee(roster, 2, domain.AttendeeSpouse, spouseWeek)

	got := Toggle(roster, 1, 5, domain.Discount{})

	assert.False(t, got[1].Products[0].Selected)
}

func TestWeek_FourSelectedWeeksSelectMonth(t *testing.T) {
	roster := fourWeeksAndMonth()

	for _, id := range []int64{1, 2, 3, 4} {
		roster = Toggle(roster, 1, id, domain.Discount{})
	}

	month, ok := roster[0].Product(5)
	require.True(t, ok)
	assert.True(t, month.Selected)
}

func TestWeek_DeselectingOneWeekReleasesMonth(t *testing.T) {
	roster := fourWeeksAndMonth()
	for _, id := range []int64{1, 2, 3, 4} {
		roster = Toggle(roster, 1, id, domain.Discount{})
	}

	roster = Toggle(roster, 1, 2, domain.Discount{})

	month, _ := roster[0].Product(5)
	assert.False(t, month.Selected)
	assert.ElementsMatch(t, []int64{1, 3, 4}, selectedIDs(roster[0]))
}

func TestWeek_ZeroWeeksDoesNotSelectMonth(t *testing.T) {
	roster := fourWeeksAndMonth()

	roster = Toggle(roster, 1, 1, domain.Discount{})
	roster = Toggle(roster, 1, 1, domain.Discount{})

	month, _ := roster[0].Product(5)
	assert.False(t, month.Selected)
	assert.Empty(t, selectedIDs(roster[0]))
}

func TestWeek_PurchasedWeeksExcludedFromCount(t *testing.T) {
	roster := fourWeeksAndMonth()
	roster[0].Products[0].Purchased = true
	roster[0].Products[0].Selected = true

	// Only 3 mutable weeks can be selected; purchased one must not
	// push the count to 4.
	for _, id := range []int64{2, 3, 4} {
		roster = Toggle(roster, 1, id, domain.Discount{})
	}

	month, _ := roster[0].Product(5)
	assert.False(t, month.Selected)
}

func TestWeek_NoMonthProductInCatalog(t *testing.T) {
	roster := newRoster(
		newPass(1, domain.CategoryWeek, 100),
		newPass(2, domain.CategoryWeek, 100),
		newPass(3, domain.CategoryWeek, 100),
		newPass(4, domain.CategoryWeek, 100),
	)

	for _, id := range []int64{1, 2, 3, 4} {
		roster = Toggle(roster, 1, id, domain.Discount{})
	}

	assert.ElementsMatch(t, []int64{1, 2, 3, 4}, selectedIDs(roster[0]))
}

func TestSetQuantity(t *testing.T) {
	roster := newRoster(newPass(1, domain.CategoryMerch, 25))

	roster = SetQuantity(roster, 1, 1, 3)
	assert.Equal(t, 3, roster[0].Products[0].Quantity)
	assert.True(t, roster[0].Products[0].Selected)

	roster = SetQuantity(roster, 1, 1, 0)
	assert.Equal(t, 0, roster[0].Products[0].Quantity)
	assert.False(t, roster[0].Products[0].Selected)

	roster = SetQuantity(roster, 1, 1, -2)
	assert.Equal(t, 0, roster[0].Products[0].Quantity)
}

func TestSetCustomAmount(t *testing.T) {
	p := newPass(1, domain.CategorySupporter, 100)
	p.MinPrice = fptr(50)
	p.MaxPrice = fptr(200)
	roster := newRoster(p, newPass(2, domain.CategoryWeek, 100))

	roster = SetCustomAmount(roster, 1, 1, fptr(120))
	require.NotNil(t, roster[0].Products[0].CustomAmount)
	assert.Equal(t, 120.0, *roster[0].Products[0].CustomAmount)

	// fixed-price products ignore custom amounts
	roster = SetCustomAmount(roster, 1, 2, fptr(10))
	assert.Nil(t, roster[0].Products[1].CustomAmount)
}
