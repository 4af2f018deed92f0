package service

import (
	"context"
	"testing"
	"time"

	"github.com/popupcity/passes/internal/domain"
	"github.com/popupcity/passes/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutDeps struct {
	cartDeps
	notifier *mocks.MockPurchaseNotifier
}

func newCheckoutService(t *testing.T) (*CheckoutService, checkoutDeps) {
	deps := checkoutDeps{
		cartDeps: cartDeps{
			appRepo:      mocks.NewMockApplicationRepo(t),
			productRepo:  mocks.NewMockProductRepo(t),
			attendeeRepo: mocks.NewMockAttendeeRepo(t),
			cartRepo:     mocks.NewMockCartRepo(t),
			paymentRepo:  mocks.NewMockPaymentRepo(t),
		},
		notifier: mocks.NewMockPurchaseNotifier(t),
	}
	svc := NewCheckoutService(
		deps.appRepo, deps.productRepo, deps.attendeeRepo, deps.cartRepo, deps.paymentRepo,
		deps.notifier, newTestLogger(t), "USD", "https://pay.example.com",
	)
	return svc, deps
}

func TestCheckoutService_Submit_Success(t *testing.T) {
	svc, deps := newCheckoutService(t)
	expectLoad(deps.cartDeps, acceptedApp(), []domain.Product{weekProduct(2, 100)}, oneAttendee(), nil)

	var created *domain.Payment
	deps.paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, p *domain.Payment) {
		created = p
	}).Return(nil)
	deps.cartRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	deps.cartRepo.EXPECT().MarkPending(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	items := []domain.CartItem{{AttendeeID: 1, ProductID: 2}}
	payment, err := svc.Submit(context.Background(), 1, 10, items, 100)

	require.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, payment.Status)
	assert.InDelta(t, 100, payment.Amount, 1e-9)
	assert.Equal(t, "USD", payment.Currency)
	assert.Contains(t, payment.CheckoutURL, "https://pay.example.com/checkout/")
	assert.NotEmpty(t, payment.ID)

	require.NotNil(t, created)
	assert.Equal(t, payment.ID, created.ID)
}

func TestCheckoutService_Submit_TotalMismatch(t *testing.T) {
	svc, deps := newCheckoutService(t)
	expectLoad(deps.cartDeps, acceptedApp(), []domain.Product{weekProduct(2, 100)}, oneAttendee(), nil)

	items := []domain.CartItem{{AttendeeID: 1, ProductID: 2}}
	_, err := svc.Submit(context.Background(), 1, 10, items, 95)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTotalMismatch)
}

func TestCheckoutService_Submit_AppliesCredit(t *testing.T) {
	svc, deps := newCheckoutService(t)

	app := acceptedApp()
	app.Credit = 30
	expectLoad(deps.cartDeps, app, []domain.Product{weekProduct(2, 100)}, oneAttendee(), nil)

	deps.paymentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	deps.cartRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	deps.cartRepo.EXPECT().MarkPending(mock.Anything, mock.Anything, mock.Anything).Return(nil)

	items := []domain.CartItem{{AttendeeID: 1, ProductID: 2}}
	payment, err := svc.Submit(context.Background(), 1, 10, items, 70)

	require.NoError(t, err)
	assert.InDelta(t, 70, payment.Amount, 1e-9)
}

func TestCheckoutService_Submit_UnknownProduct(t *testing.T) {
	svc, deps := newCheckoutService(t)
	expectLoad(deps.cartDeps, acceptedApp(), []domain.Product{weekProduct(2, 100)}, oneAttendee(), nil)

	items := []domain.CartItem{{AttendeeID: 1, ProductID: 999}}
	_, err := svc.Submit(context.Background(), 1, 10, items, 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestCheckoutService_Submit_InvalidCustomAmount(t *testing.T) {
	svc, deps := newCheckoutService(t)

	min, max := 50.0, 200.0
	donation := domain.Product{
		ID:               7,
		CityID:           1,
		Name:             "Supporter",
		Category:         domain.CategorySupporter,
		AttendeeCategory: domain.AttendeeAny,
		Price:            50,
		MinPrice:         &min,
		MaxPrice:         &max,
		IsActive:         true,
	}
	expectLoad(deps.cartDeps, acceptedApp(), []domain.Product{donation}, oneAttendee(), nil)

	amount := 500.0
	items := []domain.CartItem{{AttendeeID: 1, ProductID: 7, CustomAmount: &amount}}
	_, err := svc.Submit(context.Background(), 1, 10, items, 500)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCheckoutService_Confirm_Success(t *testing.T) {
	svc, deps := newCheckoutService(t)

	payment := &domain.Payment{
		ID:            "p1",
		ApplicationID: 10,
		CityID:        1,
		Status:        domain.PaymentPending,
		Amount:        100,
		Currency:      "USD",
	}
	app := acceptedApp()

	deps.paymentRepo.EXPECT().GetByID(mock.Anything, "p1").Return(payment, nil)
	deps.paymentRepo.EXPECT().Approve(mock.Anything, "p1", "ext-1").Return(nil)
	deps.cartRepo.EXPECT().GetByApplication(mock.Anything, int64(10), int64(1)).Return(&domain.Cart{ID: "c1"}, nil)
	deps.cartRepo.EXPECT().Clear(mock.Anything, "c1").Return(nil)
	deps.appRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(app, nil)
	deps.notifier.EXPECT().NotifyPurchaseConfirmed(mock.Anything, app, 100.0).Return()

	err := svc.Confirm(context.Background(), "p1", "ext-1", 100)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestCheckoutService_Confirm_NoCartToClear(t *testing.T) {
	svc, deps := newCheckoutService(t)

	payment := &domain.Payment{
		ID:            "p1",
		ApplicationID: 10,
		CityID:        1,
		Status:        domain.PaymentPending,
		Amount:        100,
	}
	app := acceptedApp()

	deps.paymentRepo.EXPECT().GetByID(mock.Anything, "p1").Return(payment, nil)
	deps.paymentRepo.EXPECT().Approve(mock.Anything, "p1", "ext-1").Return(nil)
	deps.cartRepo.EXPECT().GetByApplication(mock.Anything, int64(10), int64(1)).Return(nil, domain.ErrCartNotFound)
	deps.appRepo.EXPECT().GetByID(mock.Anything, int64(10)).Return(app, nil)
	deps.notifier.EXPECT().NotifyPurchaseConfirmed(mock.Anything, app, 100.0).Return()

	err := svc.Confirm(context.Background(), "p1", "ext-1", 100)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestCheckoutService_Confirm_NotPending(t *testing.T) {
	svc, deps := newCheckoutService(t)

	payment := &domain.Payment{
		ID:            "p1",
		ApplicationID: 10,
		Status:        domain.PaymentApproved,
		Amount:        100,
	}
	deps.paymentRepo.EXPECT().GetByID(mock.Anything, "p1").Return(payment, nil)

	err := svc.Confirm(context.Background(), "p1", "ext-1", 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentNotPending)
}

func TestCheckoutService_Confirm_AmountMismatch(t *testing.T) {
	svc, deps := newCheckoutService(t)

	payment := &domain.Payment{
		ID:            "p1",
		ApplicationID: 10,
		Status:        domain.PaymentPending,
		Amount:        100,
	}
	deps.paymentRepo.EXPECT().GetByID(mock.Anything, "p1").Return(payment, nil)

	err := svc.Confirm(context.Background(), "p1", "ext-1", 90)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmountMismatch)
}

func TestCheckoutService_Confirm_PaymentNotFound(t *testing.T) {
	svc, deps := newCheckoutService(t)

	deps.paymentRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrPaymentNotFound)

	err := svc.Confirm(context.Background(), "missing", "ext-1", 100)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
}
