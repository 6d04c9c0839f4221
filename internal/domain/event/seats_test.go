package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/models"
)

func activeEvent(capacity int, allowGroup bool, maxTickets int) *models.Event {
	return &models.Event{
		Title:                "Oficina de cerâmica",
		Capacity:             capacity,
		AllowGroupBooking:    allowGroup,
		MaxTicketsPerBooking: maxTickets,
		Status:               string(StatusActive),
	}
}

func TestSeatsTakenIgnoresCancelled(t *testing.T) {
	bookings := []models.Booking{
		{Quantity: 2},
		{Quantity: 3, Cancelled: true},
		{Quantity: 1},
	}

	assert.Equal(t, 3, SeatsTaken(bookings))
	assert.Equal(t, 0, SeatsTaken(nil))
}

func TestSeatsAvailableNeverNegative(t *testing.T) {
	assert.Equal(t, 7, SeatsAvailable(10, 3))
	assert.Equal(t, 0, SeatsAvailable(10, 10))
	assert.Equal(t, 0, SeatsAvailable(10, 15))
}

func TestOccupancyRate(t *testing.T) {
	assert.Equal(t, 0.0, OccupancyRate(0, 5))
	assert.Equal(t, 50.0, OccupancyRate(10, 5))
	assert.Equal(t, 100.0, OccupancyRate(10, 10))

	// uma casa decimal
	assert.Equal(t, 33.3, OccupancyRate(3, 1))
	assert.Equal(t, 66.7, OccupancyRate(3, 2))
}

func TestCheckAdmission(t *testing.T) {
	tests := []struct {
		name     string
		event    *models.Event
		taken    int
		quantity int
		errCode  string
	}{
		{"reserva simples cabe", activeEvent(10, false, 1), 0, 1, ""},
		{"quantidade zero", activeEvent(10, false, 1), 0, 0, "invalid_quantity"},
		{"quantidade negativa", activeEvent(10, false, 1), 0, -2, "invalid_quantity"},

		{"grupo em evento individual", activeEvent(10, false, 1), 0, 2, "group_booking_not_allowed"},
		{"grupo dentro do limite", activeEvent(10, true, 4), 0, 4, ""},
		{"grupo acima do limite", activeEvent(10, true, 4), 0, 5, "group_limit_exceeded"},

		{"último assento", activeEvent(10, false, 1), 9, 1, ""},
		{"evento lotado", activeEvent(10, false, 1), 10, 1, "capacity_exceeded"},
		{"grupo maior que a sobra", activeEvent(10, true, 5), 8, 3, "capacity_exceeded"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckAdmission(tc.event, tc.taken, tc.quantity)

			if tc.errCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tc.errCode),
				"esperava %s, veio %v", tc.errCode, err)
		})
	}
}

// Dez reservas unitárias enchem o evento; a décima primeira não entra.
func TestCheckAdmissionSequentialFill(t *testing.T) {
	ev := activeEvent(10, false, 1)

	taken := 0
	for i := 0; i < 10; i++ {
		assert.NoError(t, CheckAdmission(ev, taken, 1))
		taken++
	}

	err := CheckAdmission(ev, taken, 1)
	assert.True(t, httperr.IsBusiness(err, "capacity_exceeded"))
}

func TestValidate(t *testing.T) {
	ev := activeEvent(10, true, 4)
	assert.NoError(t, Validate(ev))

	ev.Capacity = 0
	err := Validate(ev)
	assert.True(t, httperr.IsBusiness(err, "invalid_capacity"))

	ev = activeEvent(10, true, 0)
	err = Validate(ev)
	assert.True(t, httperr.IsBusiness(err, "invalid_group_booking_limit"))

	ev = activeEvent(10, false, 1)
	ev.Status = "draft"
	err = Validate(ev)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestDuplicate(t *testing.T) {
	ev := activeEvent(10, true, 4)
	ev.ID = 42
	ev.Start = time.Date(2025, 7, 1, 19, 0, 0, 0, time.UTC)

	copy := Duplicate(ev, nil)

	assert.Equal(t, ev.Start.AddDate(0, 0, 7), copy.Start)
	assert.Equal(t, "Oficina de cerâmica (Reagendado)", copy.Title)
	assert.Equal(t, string(StatusPostponed), copy.Status)
	assert.NotNil(t, copy.ReferenceEventID)
	assert.Equal(t, uint(42), *copy.ReferenceEventID)

	// original permanece intacto
	assert.Equal(t, string(StatusActive), ev.Status)
	assert.Equal(t, "Oficina de cerâmica", ev.Title)
}
