package domain

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrAttendeeNotFound    = errors.New("attendee not found")
	ErrProductNotFound     = errors.New("product not found")
	ErrCartNotFound        = errors.New("cart not found")
	ErrCouponNotFound      = errors.New("coupon code not found")
	ErrPaymentNotFound     = errors.New("payment not found")
)

var (
	ErrApplicationNotAccepted = errors.New("application is not accepted")
	ErrCouponNotBetter        = errors.New("a higher discount is already applied")
	ErrTotalMismatch          = errors.New("submitted total does not match computed total")
	ErrPaymentNotPending      = errors.New("payment is not in pending status")
	ErrAmountMismatch         = errors.New("confirmed amount does not match payment amount")
)

var (
	ErrValidation = errors.New("validation error")
)
