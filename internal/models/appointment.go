package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	StaffID uint  `json:"staff_id"`
	Staff   Staff `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"staff"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	Start time.Time `json:"start"`
	Notes string    `gorm:"type:text" json:"notes"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	History []AppointmentStatusHistory `gorm:"constraint:OnDelete:CASCADE;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Registro imutável: criado junto com cada mudança de status, nunca
// alterado ou removido depois (apenas em cascata com a cita).
type AppointmentStatusHistory struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `json:"appointment_id"`

	OldStatus string `gorm:"size:20;not null" json:"old_status"`
	NewStatus string `gorm:"size:20;not null" json:"new_status"`

	ChangedAt time.Time `gorm:"autoCreateTime" json:"changed_at"`

	ChangedByID *uint `json:"changed_by_id"`
	ChangedBy   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`
}
