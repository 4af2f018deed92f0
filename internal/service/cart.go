package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/popupcity/passes/internal/domain"
	"github.com/popupcity/passes/internal/engine"
	"github.com/popupcity/passes/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// CartView is the complete selection state returned after every
// mutation: the roster, the derived totals and the discount banner.
type CartView struct {
	Attendees        []domain.Attendee  `json:"attendees"`
	Totals           engine.TotalResult `json:"totals"`
	Discount         engine.Resolved    `json:"discount"`
	PurchaseDisabled bool               `json:"purchase_disabled"`
}

type CartService struct {
	assembler  *rosterAssembler
	cartRepo   ports.CartRepo
	logger     logger.Logger
	pendingTTL time.Duration
}

func NewCartService(
	applicationRepo ports.ApplicationRepo,
	productRepo ports.ProductRepo,
	attendeeRepo ports.AttendeeRepo,
	cartRepo ports.CartRepo,
	paymentRepo ports.PaymentRepo,
	logger logger.Logger,
	pendingTTL time.Duration,
) *CartService {
	return &CartService{
		assembler:  newRosterAssembler(applicationRepo, productRepo, attendeeRepo, cartRepo, paymentRepo),
		cartRepo:   cartRepo,
		logger:     logger,
		pendingTTL: pendingTTL,
	}
}

// View assembles the current selection state without mutating it.
func (s *CartService) View(ctx context.Context, cityID, applicationID int64) (*CartView, error) {
	sess, err := s.assembler.load(ctx, cityID, applicationID)
	if err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// Toggle processes one selection event: the category strategy
// transforms the roster, every price is recomputed and the snapshot is
// persisted. One complete, synchronous pass per mutation.
func (s *CartService) Toggle(ctx context.Context, cityID, applicationID, attendeeID, productID int64) (*CartView, error) {
	sess, err := s.assembler.load(ctx, cityID, applicationID)
	if err != nil {
		return nil, err
	}

	sess.roster = engine.Toggle(sess.roster, attendeeID, productID, sess.discount())
	sess.roster = engine.Reprice(sess.roster, sess.discount())

	if err := s.persist(ctx, sess, cityID, applicationID); err != nil {
		return nil, err
	}

	s.logger.Info("product toggled",
		logger.Int64("application_id", applicationID),
		logger.Int64("attendee_id", attendeeID),
		logger.Int64("product_id", productID),
	)

	return s.view(sess), nil
}

// SetQuantity handles multi-unit products such as merch: the mutation
// is a quantity change, not a boolean toggle.
func (s *CartService) SetQuantity(ctx context.Context, cityID, applicationID, attendeeID, productID int64, quantity int) (*CartView, error) {
	sess, err := s.assembler.load(ctx, cityID, applicationID)
	if err != nil {
		return nil, err
	}

	sess.roster = engine.SetQuantity(sess.roster, attendeeID, productID, quantity)

	if err := s.persist(ctx, sess, cityID, applicationID); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// SetCustomAmount records a buyer-chosen amount on a variable-price
// product. Out-of-bounds amounts are rejected with a validation error
// and leave the cart untouched.
func (s *CartService) SetCustomAmount(ctx context.Context, cityID, applicationID, attendeeID, productID int64, amount *float64) (*CartView, error) {
	sess, err := s.assembler.load(ctx, cityID, applicationID)
	if err != nil {
		return nil, err
	}

	product, ok := findCatalogProduct(sess.catalog, productID)
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	if err := engine.ValidateCustomAmount(product, amount); err != nil {
		return nil, err
	}

	sess.roster = engine.SetCustomAmount(sess.roster, attendeeID, productID, amount)

	if err := s.persist(ctx, sess, cityID, applicationID); err != nil {
		return nil, err
	}
	return s.view(sess), nil
}

// ReleaseStalePending clears the pending flag of carts whose checkout
// redirect never resolved, so their selections restore again.
func (s *CartService) ReleaseStalePending(ctx context.Context) (int64, error) {
	released, err := s.cartRepo.ReleaseStalePending(ctx, time.Now().UTC().Add(-s.pendingTTL))
	if err != nil {
		return 0, fmt.Errorf("release stale pending carts: %w", err)
	}
	return released, nil
}

func (s *CartService) persist(ctx context.Context, sess *session, cityID, applicationID int64) error {
	now := time.Now().UTC()
	if sess.cart == nil {
		sess.cart = &domain.Cart{
			ID:            uuid.New().String(),
			ApplicationID: applicationID,
			CityID:        cityID,
			CreatedAt:     now,
		}
	}
	sess.cart.Items = snapshotItems(sess.roster)
	sess.cart.UpdatedAt = now

	if err := s.cartRepo.Save(ctx, sess.cart); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *CartService) view(sess *session) *CartView {
	return &CartView{
		Attendees:        sess.roster,
		Totals:           engine.ComputeTotal(sess.roster, sess.app.Credit),
		Discount:         sess.resolved,
		PurchaseDisabled: !anySelected(sess.roster),
	}
}

func anySelected(roster []domain.Attendee) bool {
	for _, a := range roster {
		for _, p := range a.Products {
			if !p.Purchased && (p.Selected || p.Quantity > 0) {
				return true
			}
		}
	}
	return false
}

func findCatalogProduct(catalog []domain.Product, productID int64) (domain.Product, bool) {
	for _, p := range catalog {
		if p.ID == productID {
			return p, true
		}
	}
	return domain.Product{}, false
}
