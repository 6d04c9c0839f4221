package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	EventID uint  `json:"event_id"`
	Event   Event `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name     string `gorm:"size:150;not null" json:"name"`
	Email    string `gorm:"size:100" json:"email"`
	Phone    string `gorm:"size:50" json:"phone"`
	Quantity int    `gorm:"default:1" json:"quantity"`

	Cancelled bool `gorm:"default:false" json:"cancelled"`

	// identificador público da reserva; o ID interno nunca é exposto
	ConfirmationCode string `gorm:"size:36;uniqueIndex;not null" json:"confirmation_code"`

	CreatedAt time.Time `json:"created_at"`
}
