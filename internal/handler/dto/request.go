package dto

type ToggleRequest struct {
	ApplicationID int64 `json:"application_id" binding:"required"`
	AttendeeID    int64 `json:"attendee_id" binding:"required"`
	ProductID     int64 `json:"product_id" binding:"required"`
}

type QuantityRequest struct {
	ApplicationID int64 `json:"application_id" binding:"required"`
	AttendeeID    int64 `json:"attendee_id" binding:"required"`
	ProductID     int64 `json:"product_id" binding:"required"`
	Quantity      int   `json:"quantity" binding:"gte=0"`
}

type AmountRequest struct {
	ApplicationID int64    `json:"application_id" binding:"required"`
	AttendeeID    int64    `json:"attendee_id" binding:"required"`
	ProductID     int64    `json:"product_id" binding:"required"`
	Amount        *float64 `json:"amount"`
}

type CouponRequest struct {
	ApplicationID int64  `json:"application_id" binding:"required"`
	Code          string `json:"code" binding:"required"`
}

type CheckoutItem struct {
	AttendeeID   int64    `json:"attendee_id" binding:"required"`
	ProductID    int64    `json:"product_id" binding:"required"`
	Quantity     int      `json:"quantity"`
	CustomAmount *float64 `json:"custom_amount"`
}

type CheckoutRequest struct {
	ApplicationID int64          `json:"application_id" binding:"required"`
	Items         []CheckoutItem `json:"items" binding:"required,min=1"`
	Total         float64        `json:"total"`
}

type ConfirmPaymentRequest struct {
	ExternalID string  `json:"external_id" binding:"required"`
	Amount     float64 `json:"amount"`
}
