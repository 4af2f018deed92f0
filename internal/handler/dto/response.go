package dto

import (
	"github.com/popupcity/passes/internal/domain"
	"github.com/popupcity/passes/internal/engine"
	"github.com/popupcity/passes/internal/service"
)

type ProductResponse struct {
	ID               int64    `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	Category         string   `json:"category"`
	AttendeeCategory string   `json:"attendee_category"`
	Price            float64  `json:"price"`
	ComparePrice     *float64 `json:"compare_price,omitempty"`
	MinPrice         *float64 `json:"min_price,omitempty"`
	MaxPrice         *float64 `json:"max_price,omitempty"`
	Exclusive        bool     `json:"exclusive"`
}

type PassResponse struct {
	ProductResponse

	Selected     bool     `json:"selected"`
	Disabled     bool     `json:"disabled"`
	Purchased    bool     `json:"purchased"`
	Quantity     int      `json:"quantity,omitempty"`
	CustomAmount *float64 `json:"custom_amount,omitempty"`
}

type AttendeeResponse struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Category string         `json:"category"`
	Products []PassResponse `json:"products"`
}

type TotalsResponse struct {
	Total          float64 `json:"total"`
	OriginalTotal  float64 `json:"original_total"`
	DiscountAmount float64 `json:"discount_amount"`
	Balance        string  `json:"balance"`
}

type DiscountResponse struct {
	Percent   float64 `json:"percent"`
	Label     string  `json:"label,omitempty"`
	EarlyBird bool    `json:"early_bird,omitempty"`
}

type CartResponse struct {
	Attendees        []AttendeeResponse `json:"attendees"`
	Totals           TotalsResponse     `json:"totals"`
	Discount         DiscountResponse   `json:"discount"`
	PurchaseDisabled bool               `json:"purchase_disabled"`
}

type CouponResponse struct {
	Code          string  `json:"code"`
	DiscountValue float64 `json:"discount_value"`
	DiscountType  string  `json:"discount_type"`
}

type PaymentResponse struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	CheckoutURL string `json:"checkout_url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Description:      p.Description,
		Category:         string(p.Category),
		AttendeeCategory: string(p.AttendeeCategory),
		Price:            engine.Round2(p.Price),
		ComparePrice:     p.ComparePrice,
		MinPrice:         p.MinPrice,
		MaxPrice:         p.MaxPrice,
		Exclusive:        p.Exclusive,
	}
}

func ToPassResponse(p domain.PassProduct) PassResponse {
	return PassResponse{
		ProductResponse: ToProductResponse(p.Product),
		Selected:        p.Selected,
		Disabled:        p.Disabled,
		Purchased:       p.Purchased,
		Quantity:        p.Quantity,
		CustomAmount:    p.CustomAmount,
	}
}

func ToAttendeeResponse(a domain.Attendee) AttendeeResponse {
	products := make([]PassResponse, 0, len(a.Products))
	for _, p := range a.Products {
		products = append(products, ToPassResponse(p))
	}

	return AttendeeResponse{
		ID:       a.ID,
		Name:     a.Name,
		Category: string(a.Category),
		Products: products,
	}
}

func ToCartResponse(v *service.CartView) CartResponse {
	attendees := make([]AttendeeResponse, 0, len(v.Attendees))
	for _, a := range v.Attendees {
		attendees = append(attendees, ToAttendeeResponse(a))
	}

	return CartResponse{
		Attendees: attendees,
		Totals: TotalsResponse{
			Total:          engine.Round2(v.Totals.Total),
			OriginalTotal:  engine.Round2(v.Totals.OriginalTotal),
			DiscountAmount: engine.Round2(v.Totals.DiscountAmount),
			Balance:        engine.FormatAmount(v.Totals.Balance),
		},
		Discount: DiscountResponse{
			Percent:   v.Discount.Percent,
			Label:     v.Discount.Label,
			EarlyBird: v.Discount.EarlyBird,
		},
		PurchaseDisabled: v.PurchaseDisabled,
	}
}

func ToCouponResponse(d *domain.Discount) CouponResponse {
	return CouponResponse{
		Code:          d.Code,
		DiscountValue: d.Value,
		DiscountType:  string(d.Type),
	}
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		Status:      string(p.Status),
		Amount:      engine.FormatAmount(p.Amount),
		Currency:    p.Currency,
		CheckoutURL: p.CheckoutURL,
	}
}
