package dto

import "time"

// BookingDTO expõe a reserva pelo código de confirmação, nunca pelo ID
// interno.
type BookingDTO struct {
	ConfirmationCode string `json:"confirmation_code"`

	EventID    uint      `json:"event_id"`
	EventTitle string    `json:"event_title,omitempty"`
	EventStart time.Time `json:"event_start,omitempty"`

	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Quantity int    `json:"quantity"`

	Cancelled bool      `json:"cancelled"`
	CreatedAt time.Time `json:"created_at"`
}
