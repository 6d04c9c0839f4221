package models

import "time"

// Tipo de evento: dado de referência imutável. Não pode ser removido
// enquanto existir evento apontando para ele (RESTRICT).
type EventType struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Name            string `gorm:"size:100;not null" json:"name"`
	DurationMinutes int    `gorm:"default:60" json:"duration_minutes"`

	CreatedAt time.Time `json:"created_at"`
}

type Event struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TypeID uint      `json:"type_id"`
	Type   EventType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"type"`

	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Start       time.Time `json:"start"`
	Capacity    int       `gorm:"default:1" json:"capacity"`

	OrganizerID *uint `json:"organizer_id"`
	Organizer   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"organizer,omitempty"`

	AllowGroupBooking    bool `json:"allow_group_booking"`
	MaxTicketsPerBooking int  `gorm:"default:1" json:"max_tickets_per_booking"`

	Status string `gorm:"size:20;default:'active'" json:"status"`

	// evento original, quando este é uma reprogramação
	ReferenceEventID *uint  `json:"reference_event_id"`
	ReferenceEvent   *Event `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Bookings []Booking `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
