package dto

import "time"

type AppointmentListDTO struct {
	ID         uint      `json:"id"`
	Start      time.Time `json:"start"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes"`
	ClientName string    `json:"client_name"`
	StaffName  string    `json:"staff_name"`
}
