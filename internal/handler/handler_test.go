package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/popupcity/passes/internal/domain"
	"github.com/popupcity/passes/internal/engine"
	"github.com/popupcity/passes/internal/handler/dto"
	hmocks "github.com/popupcity/passes/internal/handler/mocks"
	"github.com/popupcity/passes/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockCatalogSvc, *hmocks.MockCartSvc, *hmocks.MockCouponSvc, *hmocks.MockCheckoutSvc, http.Handler) {
	t.Helper()
	catalogSvc := hmocks.NewMockCatalogSvc(t)
	cartSvc := hmocks.NewMockCartSvc(t)
	couponSvc := hmocks.NewMockCouponSvc(t)
	checkoutSvc := hmocks.NewMockCheckoutSvc(t)

	h := NewHandler(catalogSvc, cartSvc, couponSvc, checkoutSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		cities := api.Group("/cities/:id")
		{
			cities.GET("/products", h.ListProducts)
			cities.GET("/cart", h.GetCart)
			cities.POST("/cart/toggle", h.ToggleProduct)
			cities.POST("/cart/quantity", h.SetQuantity)
			cities.POST("/cart/amount", h.SetCustomAmount)
			cities.POST("/coupon", h.ApplyCoupon)
			cities.POST("/checkout", h.SubmitCheckout)
		}
		api.POST("/payments/:id/confirm", h.ConfirmPayment)
	}

	return catalogSvc, cartSvc, couponSvc, checkoutSvc, r
}

func sampleView() *service.CartView {
	return &service.CartView{
		Attendees: []domain.Attendee{
			{
				ID:       1,
				Name:     "Alice",
				Category: domain.AttendeeMain,
				Products: []domain.PassProduct{
					{
						Product:    domain.Product{ID: 2, Name: "Week Pass", Category: domain.CategoryWeek, Price: 100},
						AttendeeID: 1,
						Selected:   true,
					},
				},
			},
		},
		Totals:   engine.TotalResult{Total: 100, OriginalTotal: 100, Balance: 100},
		Discount: engine.Resolved{},
	}
}

// --- Catalog ---

func TestHandler_ListProducts_Success(t *testing.T) {
	catalogSvc, _, _, _, r := setupRouter(t)

	products := []domain.Product{
		{ID: 1, Name: "Week Pass", Category: domain.CategoryWeek, Price: 100},
		{ID: 2, Name: "Month Pass", Category: domain.CategoryMonth, Price: 350},
	}
	catalogSvc.EXPECT().ListProducts(mock.Anything, int64(1)).Return(products, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities/1/products", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "Week Pass", resp[0].Name)
}

func TestHandler_ListProducts_InvalidCityID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities/not-a-number/products", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Cart ---

func TestHandler_GetCart_Success(t *testing.T) {
	_, cartSvc, _, _, r := setupRouter(t)

	cartSvc.EXPECT().View(mock.Anything, int64(1), int64(10)).Return(sampleView(), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities/1/cart?application_id=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Attendees, 1)
	assert.True(t, resp.Attendees[0].Products[0].Selected)
	assert.Equal(t, "100.00", resp.Totals.Balance)
}

func TestHandler_GetCart_MissingApplicationID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities/1/cart", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCart_NotAccepted(t *testing.T) {
	_, cartSvc, _, _, r := setupRouter(t)

	cartSvc.EXPECT().View(mock.Anything, int64(1), int64(10)).Return(nil, domain.ErrApplicationNotAccepted)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities/1/cart?application_id=10", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ToggleProduct_Success(t *testing.T) {
	_, cartSvc, _, _, r := setupRouter(t)

	cartSvc.EXPECT().Toggle(mock.Anything, int64(1), int64(10), int64(1), int64(2)).Return(sampleView(), nil)

	body, _ := json.Marshal(dto.ToggleRequest{ApplicationID: 10, AttendeeID: 1, ProductID: 2})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities/1/cart/toggle", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ToggleProduct_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"application_id":10}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities/1/cart/toggle", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ToggleProduct_ApplicationNotFound(t *testing.T) {
	_, cartSvc, _, _, r := setupRouter(t)

	cartSvc.EXPECT().Toggle(mock.Anything, int64(1), int64(10), int64(1), int64(2)).Return(nil, domain.ErrApplicationNotFound)

	body, _ := json.Marshal(dto.ToggleRequest{ApplicationID: 10, AttendeeID: 1, ProductID: 2})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities/1/cart/toggle", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_SetQuantity_Success(t *testing.T) {
	_, cartSvc, _, _, r := setupRouter(t)

	cartSvc.EXPECT().SetQuantity(mock.Anything, int64(1), int64(10), int64(1), int64(5), 3).Return(sampleView(), nil)

	body, _ := json.Marshal(dto.QuantityRequest{ApplicationID: 10, AttendeeID: 1, ProductID: 5, Quantity: 3})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities/1/cart/quantity", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_SetCustomAmount_ValidationError(t *testing.T) {
	_, cartSvc, _, _, r := setupRouter(t)

	amount := 20.0
	cartSvc.EXPECT().SetCustomAmount(mock.Anything, int64(1), int64(10), int64(1), int64(7), &amount).
		Return(nil, domain.ErrValidation)

	body, _ := json.Marshal(dto.AmountRequest{ApplicationID: 10, AttendeeID: 1, ProductID: 7, Amount: &amount})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities/1/cart/amount", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Coupons ---

func TestHandler_ApplyCoupon_Success(t *testing.T) {
	_, _, couponSvc, _, r := setupRouter(t)

	discount := &domain.Discount{Value: 20, Type: domain.DiscountPercentage, Code: "SAVE20"}
	couponSvc.EXPECT().Apply(mock.Anything, int64(1), int64(10), "SAVE20").Return(discount, nil)

	body, _ := json.Marshal(dto.CouponRequest{ApplicationID: 10, Code: "SAVE20"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities/1/coupon", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CouponResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SAVE20", resp.Code)
	assert.Equal(t, 20.0, resp.DiscountValue)
}

func TestHandler_ApplyCoupon_NotBetter(t *testing.T) {
	_, _, couponSvc, _, r := setupRouter(t)

	couponSvc.EXPECT().Apply(mock.Anything, int64(1), int64(10), "WEAK").Return(nil, domain.ErrCouponNotBetter)

	body, _ := json.Marshal(dto.CouponRequest{ApplicationID: 10, Code: "WEAK"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities/1/coupon", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Checkout ---

func TestHandler_SubmitCheckout_Success(t *testing.T) {
	_, _, _, checkoutSvc, r := setupRouter(t)

	payment := &domain.Payment{
		ID:          uuid.New().String(),
		Status:      domain.PaymentPending,
		Amount:      100,
		Currency:    "USD",
		CheckoutURL: "https://pay.example.com/checkout/x",
	}
	checkoutSvc.EXPECT().Submit(mock.Anything, int64(1), int64(10), mock.Anything, 100.0).Return(payment, nil)

	body, _ := json.Marshal(dto.CheckoutRequest{
		ApplicationID: 10,
		Items:         []dto.CheckoutItem{{AttendeeID: 1, ProductID: 2}},
		Total:         100,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities/1/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.PaymentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "100.00", resp.Amount)
}

func TestHandler_SubmitCheckout_TotalMismatch(t *testing.T) {
	_, _, _, checkoutSvc, r := setupRouter(t)

	checkoutSvc.EXPECT().Submit(mock.Anything, int64(1), int64(10), mock.Anything, 95.0).Return(nil, domain.ErrTotalMismatch)

	body, _ := json.Marshal(dto.CheckoutRequest{
		ApplicationID: 10,
		Items:         []dto.CheckoutItem{{AttendeeID: 1, ProductID: 2}},
		Total:         95,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities/1/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_SubmitCheckout_EmptyItems(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"application_id":10,"items":[],"total":0}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/cities/1/checkout", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmPayment_Success(t *testing.T) {
	_, _, _, checkoutSvc, r := setupRouter(t)

	paymentID := uuid.New().String()
	checkoutSvc.EXPECT().Confirm(mock.Anything, paymentID, "ext-1", 100.0).Return(nil)

	body, _ := json.Marshal(dto.ConfirmPaymentRequest{ExternalID: "ext-1", Amount: 100})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/"+paymentID+"/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ConfirmPayment_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.ConfirmPaymentRequest{ExternalID: "ext-1", Amount: 100})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/not-a-uuid/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmPayment_AmountMismatch(t *testing.T) {
	_, _, _, checkoutSvc, r := setupRouter(t)

	paymentID := uuid.New().String()
	checkoutSvc.EXPECT().Confirm(mock.Anything, paymentID, "ext-1", 90.0).Return(domain.ErrAmountMismatch)

	body, _ := json.Marshal(dto.ConfirmPaymentRequest{ExternalID: "ext-1", Amount: 90})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/payments/"+paymentID+"/confirm", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	catalogSvc, _, _, _, r := setupRouter(t)

	catalogSvc.EXPECT().ListProducts(mock.Anything, int64(1)).Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/cities/1/products", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
