package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/popupcity/passes/internal/domain"
	"github.com/popupcity/passes/internal/engine"
	"github.com/popupcity/passes/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CheckoutService struct {
	assembler   *rosterAssembler
	cartRepo    ports.CartRepo
	paymentRepo ports.PaymentRepo
	appRepo     ports.ApplicationRepo
	notifier    ports.PurchaseNotifier
	logger      logger.Logger
	currency    string
	providerURL string
}

func NewCheckoutService(
	applicationRepo ports.ApplicationRepo,
	productRepo ports.ProductRepo,
	attendeeRepo ports.AttendeeRepo,
	cartRepo ports.CartRepo,
	paymentRepo ports.PaymentRepo,
	notifier ports.PurchaseNotifier,
	logger logger.Logger,
	currency, providerURL string,
) *CheckoutService {
	return &CheckoutService{
		assembler:   newRosterAssembler(applicationRepo, productRepo, attendeeRepo, cartRepo, paymentRepo),
		cartRepo:    cartRepo,
		paymentRepo: paymentRepo,
		appRepo:     applicationRepo,
		notifier:    notifier,
		logger:      logger,
		currency:    currency,
		providerURL: providerURL,
	}
}

// Submit turns the submitted selection into a pending payment. The
// total is recomputed server-side from the payload and must match the
// client's figure; a mismatch rejects the submission and leaves the
// cart untouched so the buyer can retry.
func (s *CheckoutService) Submit(ctx context.Context, cityID, applicationID int64, items []domain.CartItem, expectedTotal float64) (*domain.Payment, error) {
	sess, err := s.assembler.load(ctx, cityID, applicationID)
	if err != nil {
		return nil, err
	}

	for _, it := range items {
		product, ok := findCatalogProduct(sess.catalog, it.ProductID)
		if !ok {
			return nil, domain.ErrProductNotFound
		}
		if err := engine.ValidateCustomAmount(product, it.CustomAmount); err != nil {
			return nil, err
		}
	}

	roster := restoreSelections(clearSelections(sess.roster), items)
	roster = engine.Reprice(roster, sess.discount())

	totals := engine.ComputeTotal(roster, sess.app.Credit)
	if engine.Round2(totals.Total) != engine.Round2(expectedTotal) {
		return nil, domain.ErrTotalMismatch
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		ID:            uuid.New().String(),
		ApplicationID: applicationID,
		CityID:        cityID,
		Status:        domain.PaymentPending,
		Amount:        engine.Round2(totals.Total),
		Currency:      s.currency,
		Items:         items,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	payment.CheckoutURL = fmt.Sprintf("%s/checkout/%s", s.providerURL, payment.ID)

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	if sess.cart == nil {
		sess.cart = &domain.Cart{
			ID:            uuid.New().String(),
			ApplicationID: applicationID,
			CityID:        cityID,
			CreatedAt:     now,
		}
	}
	sess.cart.Items = items
	sess.cart.UpdatedAt = now
	if err := s.cartRepo.Save(ctx, sess.cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}
	if err := s.cartRepo.MarkPending(ctx, sess.cart.ID, now); err != nil {
		return nil, fmt.Errorf("mark cart pending: %w", err)
	}

	s.logger.Info("checkout submitted",
		logger.Int64("application_id", applicationID),
		logger.String("payment_id", payment.ID),
		logger.String("amount", engine.FormatAmount(payment.Amount)),
	)

	return payment, nil
}

// Confirm is driven by the payment provider's callback. Purchased
// status is only ever set here, after a confirmed server response,
// never optimistically.
func (s *CheckoutService) Confirm(ctx context.Context, paymentID, externalID string, amount float64) error {
	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}
	if payment.Status != domain.PaymentPending {
		return domain.ErrPaymentNotPending
	}
	if engine.Round2(amount) != engine.Round2(payment.Amount) {
		return domain.ErrAmountMismatch
	}

	if err := s.paymentRepo.Approve(ctx, paymentID, externalID); err != nil {
		return fmt.Errorf("approve payment: %w", err)
	}

	cart, err := s.cartRepo.GetByApplication(ctx, payment.ApplicationID, payment.CityID)
	if err == nil {
		if err := s.cartRepo.Clear(ctx, cart.ID); err != nil {
			return fmt.Errorf("clear cart: %w", err)
		}
	} else if !errors.Is(err, domain.ErrCartNotFound) {
		return fmt.Errorf("get cart: %w", err)
	}

	s.logger.Info("payment confirmed",
		logger.String("payment_id", paymentID),
		logger.Int64("application_id", payment.ApplicationID),
		logger.String("amount", engine.FormatAmount(payment.Amount)),
	)

	app, err := s.appRepo.GetByID(ctx, payment.ApplicationID)
	if err != nil {
		s.logger.Error("failed to get application for notification",
			logger.Int64("application_id", payment.ApplicationID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	go s.notifier.NotifyPurchaseConfirmed(context.WithoutCancel(ctx), app, payment.Amount)

	return nil
}

func clearSelections(roster []domain.Attendee) []domain.Attendee {
	for ai := range roster {
		for pi := range roster[ai].Products {
			p := &roster[ai].Products[pi]
			if p.Purchased {
				continue
			}
			p.Selected = false
			p.Quantity = 0
			p.CustomAmount = nil
		}
	}
	return roster
}
