package event

import (
	"context"

	"github.com/chimeco/agenda-api/internal/models"
)

type Repository interface {
	// -------- Event --------
	GetEventByID(
		ctx context.Context,
		id uint,
	) (*models.Event, error)

	ListEvents(
		ctx context.Context,
	) ([]models.Event, error)

	SeatsTakenForEvent(
		ctx context.Context,
		eventID uint,
	) (int, error)

	// -------- Booking (create sob lock de capacidade) --------
	CreateBookingChecked(
		ctx context.Context,
		eventID uint,
		booking *models.Booking,
	) error

	FindBookingByCode(
		ctx context.Context,
		code string,
	) (*models.Booking, error)

	ListBookingsForEvent(
		ctx context.Context,
		eventID uint,
	) ([]models.Booking, error)

	CancelBooking(
		ctx context.Context,
		bookingID uint,
	) error
}
