package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/popupcity/passes/internal/domain"
	"github.com/popupcity/passes/internal/engine"
	"github.com/popupcity/passes/internal/service/ports"
)

// session is the fully assembled selection state for one application
// and city: the catalog attached to the roster, purchases reconciled,
// the persisted cart restored and every price recomputed. Strategies
// only ever run against a session roster.
type session struct {
	app      *domain.Application
	catalog  []domain.Product
	roster   []domain.Attendee
	cart     *domain.Cart
	resolved engine.Resolved
}

func (s *session) discount() domain.Discount {
	if s.cart == nil {
		return domain.Discount{}
	}
	return s.cart.Discount
}

type rosterAssembler struct {
	applicationRepo ports.ApplicationRepo
	productRepo     ports.ProductRepo
	attendeeRepo    ports.AttendeeRepo
	cartRepo        ports.CartRepo
	paymentRepo     ports.PaymentRepo
}

func newRosterAssembler(
	applicationRepo ports.ApplicationRepo,
	productRepo ports.ProductRepo,
	attendeeRepo ports.AttendeeRepo,
	cartRepo ports.CartRepo,
	paymentRepo ports.PaymentRepo,
) *rosterAssembler {
	return &rosterAssembler{
		applicationRepo: applicationRepo,
		productRepo:     productRepo,
		attendeeRepo:    attendeeRepo,
		cartRepo:        cartRepo,
		paymentRepo:     paymentRepo,
	}
}

func (ra *rosterAssembler) load(ctx context.Context, cityID, applicationID int64) (*session, error) {
	app, err := ra.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}
	if app.Status != domain.ApplicationAccepted {
		return nil, domain.ErrApplicationNotAccepted
	}

	catalog, err := ra.productRepo.ListByCity(ctx, cityID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	catalog = activeOnly(catalog)

	attendees, err := ra.attendeeRepo.ListByApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	purchased, err := ra.paymentRepo.ListPurchasedItems(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("list purchased items: %w", err)
	}

	cart, err := ra.cartRepo.GetByApplication(ctx, applicationID, cityID)
	if err != nil {
		if !errors.Is(err, domain.ErrCartNotFound) {
			return nil, fmt.Errorf("get cart: %w", err)
		}
		cart = nil
	}

	byID := make(map[int64]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}
	ownedByAttendee := make(map[int64][]domain.Product)
	for _, it := range purchased {
		if p, ok := byID[it.ProductID]; ok {
			ownedByAttendee[it.AttendeeID] = append(ownedByAttendee[it.AttendeeID], p)
		}
	}

	roster := make([]domain.Attendee, 0, len(attendees))
	for _, a := range attendees {
		a.Products = engine.ReconcilePurchases(attachCatalog(a, catalog), ownedByAttendee[a.ID])
		roster = append(roster, a)
	}

	var external domain.Discount
	if cart != nil {
		external = cart.Discount
		// A pending cart is not restored: the buyer was redirected to
		// the payment provider and the server response will decide.
		if !cart.IsPending() {
			roster = restoreSelections(roster, cart.Items)
		}
	}

	resolved := engine.ResolveDiscount(
		hasPatronPurchased(roster),
		*app,
		engine.RepresentativeWeek(catalog),
		external,
	)

	return &session{
		app:      app,
		catalog:  catalog,
		roster:   engine.Reprice(roster, external),
		cart:     cart,
		resolved: resolved,
	}, nil
}

// attachCatalog scopes the catalog to one attendee, capturing the
// pre-discount baseline price each product will be repriced from.
func attachCatalog(a domain.Attendee, catalog []domain.Product) []domain.PassProduct {
	var passes []domain.PassProduct
	for _, p := range catalog {
		if !p.EligibleFor(a.Category) {
			continue
		}
		passes = append(passes, domain.PassProduct{
			Product:       p,
			AttendeeID:    a.ID,
			OriginalPrice: p.Price,
		})
	}
	return passes
}

// restoreSelections replays a persisted cart snapshot onto the roster.
// The snapshot already carries every strategy side effect that was in
// force when it was taken, so selections are restored verbatim.
func restoreSelections(roster []domain.Attendee, items []domain.CartItem) []domain.Attendee {
	for ai := range roster {
		for _, it := range items {
			if it.AttendeeID != roster[ai].ID {
				continue
			}
			for pi := range roster[ai].Products {
				p := &roster[ai].Products[pi]
				if p.ID != it.ProductID || p.Purchased {
					continue
				}
				p.Selected = true
				if it.Quantity > 0 {
					p.Quantity = it.Quantity
				}
				p.CustomAmount = it.CustomAmount
			}
		}
	}
	return roster
}

// snapshotItems is the inverse of restoreSelections: the normalized
// cart entries for every live selection.
func snapshotItems(roster []domain.Attendee) []domain.CartItem {
	var items []domain.CartItem
	for _, a := range roster {
		for _, p := range a.Products {
			if p.Purchased || (!p.Selected && p.Quantity == 0) {
				continue
			}
			items = append(items, domain.CartItem{
				AttendeeID:   a.ID,
				ProductID:    p.ID,
				Quantity:     p.Quantity,
				CustomAmount: p.CustomAmount,
			})
		}
	}
	return items
}

func hasPatronPurchased(roster []domain.Attendee) bool {
	for _, a := range roster {
		for _, p := range a.Products {
			if p.Category.IsSpecial() && p.Purchased {
				return true
			}
		}
	}
	return false
}

func activeOnly(products []domain.Product) []domain.Product {
	out := products[:0:0]
	for _, p := range products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}
