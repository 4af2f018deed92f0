package domain

import "time"

type ApplicationStatus string

const (
	ApplicationDraft     ApplicationStatus = "draft"
	ApplicationSubmitted ApplicationStatus = "in review"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

// Application is the accepted registration that owns a roster of
// attendees. Passes are only purchasable on accepted applications.
type Application struct {
	ID               int64             `json:"id"`
	CityID           int64             `json:"city_id"`
	Email            string            `json:"email"`
	Status           ApplicationStatus `json:"status"`
	DiscountAssigned bool              `json:"discount_assigned"`
	Credit           float64           `json:"credit"`
	TelegramChatID   *int64            `json:"telegram_chat_id,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}
