package engine

import "github.com/popupcity/passes/internal/domain"

func fptr(v float64) *float64 { return &v }

func newPass(id int64, category domain.ProductCategory, price float64) domain.PassProduct {
	return domain.PassProduct{
		Product: domain.Product{
			ID:       id,
			Name:     string(category),
			Category: category,
			Price:    price,
			IsActive: true,
		},
		OriginalPrice: price,
	}
}

func exclusivePass(id int64, category domain.ProductCategory, price float64) domain.PassProduct {
	p := newPass(id, category, price)
	p.Exclusive = true
	return p
}

func newRoster(products ...domain.PassProduct) []domain.Attendee {
	for i := range products {
		products[i].AttendeeID = 1
	}
	return []domain.Attendee{{
		ID:       1,
		Name:     "Alice",
		Category: domain.AttendeeMain,
		Products: products,
	}}
}

func withAttendee(roster []domain.Attendee, id int64, category domain.AttendeeCategory, products ...domain.PassProduct) []domain.Attendee {
	for i := range products {
		products[i].AttendeeID = id
	}
	return append(roster, domain.Attendee{
		ID:       id,
		Category: category,
		Products: products,
	})
}

// fourWeeksAndMonth is the standard bundle fixture: four $100 weeks
// (ids 1-4) and a $0 month product (id 5).
func fourWeeksAndMonth() []domain.Attendee {
	return newRoster(
		newPass(1, domain.CategoryWeek, 100),
		newPass(2, domain.CategoryWeek, 100),
		newPass(3, domain.CategoryWeek, 100),
		newPass(4, domain.CategoryWeek, 100),
		newPass(5, domain.CategoryMonth, 0),
	)
}

func selectedIDs(a domain.Attendee) []int64 {
	var ids []int64
	for _, p := range a.Products {
		if p.Selected {
			ids = append(ids, p.ID)
		}
	}
	return ids
}
