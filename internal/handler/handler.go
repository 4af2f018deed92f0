package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/popupcity/passes/internal/domain"
	"github.com/popupcity/passes/internal/handler/dto"
	"github.com/popupcity/passes/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type CatalogSvc interface {
	ListProducts(ctx context.Context, cityID int64) ([]domain.Product, error)
}

type CartSvc interface {
	View(ctx context.Context, cityID, applicationID int64) (*service.CartView, error)
	Toggle(ctx context.Context, cityID, applicationID, attendeeID, productID int64) (*service.CartView, error)
	SetQuantity(ctx context.Context, cityID, applicationID, attendeeID, productID int64, quantity int) (*service.CartView, error)
	SetCustomAmount(ctx context.Context, cityID, applicationID, attendeeID, productID int64, amount *float64) (*service.CartView, error)
}

type CouponSvc interface {
	Apply(ctx context.Context, cityID, applicationID int64, code string) (*domain.Discount, error)
}

type CheckoutSvc interface {
	Submit(ctx context.Context, cityID, applicationID int64, items []domain.CartItem, expectedTotal float64) (*domain.Payment, error)
	Confirm(ctx context.Context, paymentID, externalID string, amount float64) error
}

type Handler struct {
	catalogService  CatalogSvc
	cartService     CartSvc
	couponService   CouponSvc
	checkoutService CheckoutSvc
}

func NewHandler(catalogService CatalogSvc, cartService CartSvc, couponService CouponSvc, checkoutService CheckoutSvc) *Handler {
	return &Handler{
		catalogService:  catalogService,
		cartService:     cartService,
		couponService:   couponService,
		checkoutService: checkoutService,
	}
}

// Catalog

func (h *Handler) ListProducts(c *ginext.Context) {
	cityID, ok := cityParam(c)
	if !ok {
		return
	}

	products, err := h.catalogService.ListProducts(c.Request.Context(), cityID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, dto.ToProductResponse(p))
	}

	c.JSON(http.StatusOK, resp)
}

// Cart

func (h *Handler) GetCart(c *ginext.Context) {
	cityID, ok := cityParam(c)
	if !ok {
		return
	}
	applicationID, err := strconv.ParseInt(c.Query("application_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid application_id"})
		return
	}

	view, err := h.cartService.View(c.Request.Context(), cityID, applicationID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(view))
}

func (h *Handler) ToggleProduct(c *ginext.Context) {
	cityID, ok := cityParam(c)
	if !ok {
		return
	}

	var req dto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.cartService.Toggle(c.Request.Context(), cityID, req.ApplicationID, req.AttendeeID, req.ProductID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(view))
}

func (h *Handler) SetQuantity(c *ginext.Context) {
	cityID, ok := cityParam(c)
	if !ok {
		return
	}

	var req dto.QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.cartService.SetQuantity(c.Request.Context(), cityID, req.ApplicationID, req.AttendeeID, req.ProductID, req.Quantity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(view))
}

func (h *Handler) SetCustomAmount(c *ginext.Context) {
	cityID, ok := cityParam(c)
	if !ok {
		return
	}

	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	view, err := h.cartService.SetCustomAmount(c.Request.Context(), cityID, req.ApplicationID, req.AttendeeID, req.ProductID, req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCartResponse(view))
}

// Coupons

func (h *Handler) ApplyCoupon(c *ginext.Context) {
	cityID, ok := cityParam(c)
	if !ok {
		return
	}

	var req dto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	discount, err := h.couponService.Apply(c.Request.Context(), cityID, req.ApplicationID, req.Code)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCouponResponse(discount))
}

// Checkout

func (h *Handler) SubmitCheckout(c *ginext.Context) {
	cityID, ok := cityParam(c)
	if !ok {
		return
	}

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	items := make([]domain.CartItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, domain.CartItem{
			AttendeeID:   it.AttendeeID,
			ProductID:    it.ProductID,
			Quantity:     it.Quantity,
			CustomAmount: it.CustomAmount,
		})
	}

	payment, err := h.checkoutService.Submit(c.Request.Context(), cityID, req.ApplicationID, items, req.Total)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *Handler) ConfirmPayment(c *ginext.Context) {
	paymentID := c.Param("id")
	if _, err := uuid.Parse(paymentID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid payment id"})
		return
	}

	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.checkoutService.Confirm(c.Request.Context(), paymentID, req.ExternalID, req.Amount); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "confirmed"})
}

func cityParam(c *ginext.Context) (int64, bool) {
	cityID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid city id"})
		return 0, false
	}
	return cityID, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrAttendeeNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrCouponNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrCartNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrApplicationNotAccepted):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrCouponNotBetter),
		errors.Is(err, domain.ErrTotalMismatch),
		errors.Is(err, domain.ErrPaymentNotPending),
		errors.Is(err, domain.ErrAmountMismatch):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
