package dto

import "time"

type EventListDTO struct {
	ID          uint      `json:"id"`
	TypeName    string    `json:"type_name"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Start       time.Time `json:"start"`
	Status      string    `json:"status"`

	Capacity       int     `json:"capacity"`
	SeatsTaken     int     `json:"seats_taken"`
	SeatsAvailable int     `json:"seats_available"`
	OccupancyRate  float64 `json:"occupancy_rate"`

	AllowGroupBooking    bool `json:"allow_group_booking"`
	MaxTicketsPerBooking int  `json:"max_tickets_per_booking"`
}
