package event

import (
	"math"

	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/models"
)

// ===============================
// Contagem de assentos
// ===============================

// SeatsTaken soma as quantidades das reservas não canceladas.
func SeatsTaken(bookings []models.Booking) int {
	taken := 0
	for _, b := range bookings {
		if !b.Cancelled {
			taken += b.Quantity
		}
	}
	return taken
}

func SeatsAvailable(capacity, taken int) int {
	if available := capacity - taken; available > 0 {
		return available
	}
	return 0
}

// OccupancyRate retorna a ocupação em porcentagem, com uma casa decimal.
// Capacidade zero retorna 0 (evita divisão por zero).
func OccupancyRate(capacity, taken int) float64 {
	if capacity == 0 {
		return 0
	}
	rate := float64(taken) / float64(capacity) * 100
	return math.Round(rate*10) / 10
}

// ===============================
// Admissão de reservas
// ===============================

// CheckAdmission valida uma nova reserva contra o evento e os assentos
// já ocupados. O evento é obrigatório em toda chamada: não existe
// validação "sem contexto".
func CheckAdmission(ev *models.Event, taken, quantity int) error {
	if quantity < 1 {
		return httperr.ErrBusinessField("invalid_quantity", "quantity")
	}

	if !ev.AllowGroupBooking && quantity > 1 {
		return httperr.ErrBusinessField("group_booking_not_allowed", "quantity")
	}

	if ev.AllowGroupBooking && quantity > ev.MaxTicketsPerBooking {
		return httperr.ErrBusinessField("group_limit_exceeded", "quantity")
	}

	if quantity > SeatsAvailable(ev.Capacity, taken) {
		return httperr.ErrBusinessField("capacity_exceeded", "quantity")
	}

	return nil
}
