package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/models"
)

func newAppointment(status Status, start time.Time) *models.Appointment {
	return &models.Appointment{
		StaffID:  1,
		ClientID: 1,
		Start:    start,
		Status:   string(status),
	}
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("pending"))
	assert.True(t, IsValidStatus("confirmed"))
	assert.True(t, IsValidStatus("cancelled"))
	assert.True(t, IsValidStatus("done"))

	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("finished"))
	assert.False(t, IsValidStatus("Pending"))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}

func TestCanTransitionTable(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)

	tests := []struct {
		name    string
		current Status
		target  Status
		errCode string
	}{
		{"pending para confirmed", StatusPending, StatusConfirmed, ""},
		{"pending para cancelled", StatusPending, StatusCancelled, ""},
		{"pending direto para done", StatusPending, StatusDone, "transition_not_permitted"},

		{"confirmed volta para pending", StatusConfirmed, StatusPending, ""},
		{"confirmed para cancelled", StatusConfirmed, StatusCancelled, ""},
		{"confirmed para done", StatusConfirmed, StatusDone, ""},

		{"cancelled reabre para pending", StatusCancelled, StatusPending, ""},
		{"cancelled para confirmed", StatusCancelled, StatusConfirmed, "transition_not_permitted"},
		{"cancelled para done", StatusCancelled, StatusDone, "transition_not_permitted"},

		{"done para pending", StatusDone, StatusPending, "appointment_done"},
		{"done para confirmed", StatusDone, StatusConfirmed, "appointment_done"},
		{"done para cancelled", StatusDone, StatusCancelled, "appointment_done"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.current, tc.target, now, future)

			if tc.errCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsBusiness(err, tc.errCode),
				"esperava %s, veio %v", tc.errCode, err)
		})
	}
}

func TestCanTransitionPendingRequiresFutureStart(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// início no passado: não volta para pending
	err := CanTransition(StatusConfirmed, StatusPending, now, now.Add(-time.Hour))
	assert.True(t, httperr.IsBusiness(err, "past_appointment"))

	// início exatamente agora também conta como passado
	err = CanTransition(StatusConfirmed, StatusPending, now, now)
	assert.True(t, httperr.IsBusiness(err, "past_appointment"))

	// início futuro libera
	err = CanTransition(StatusConfirmed, StatusPending, now, now.Add(time.Minute))
	assert.NoError(t, err)
}

func TestCanTransitionPastGuardComesBeforeDoneGuard(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	// done + destino pending + cita no passado: a guarda de passado
	// responde primeiro
	err := CanTransition(StatusDone, StatusPending, now, now.Add(-time.Hour))
	assert.True(t, httperr.IsBusiness(err, "past_appointment"))
}

func TestChangeStatusAppliesInMemory(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)

	ap := newAppointment(StatusPending, now.Add(24*time.Hour))

	err := ChangeStatus(ap, StatusConfirmed, now)
	assert.NoError(t, err)
	assert.Equal(t, string(StatusConfirmed), ap.Status)

	// transição recusada não altera o status
	err = ChangeStatus(ap, StatusDone, now)
	assert.NoError(t, err)

	err = ChangeStatus(ap, StatusConfirmed, now)
	assert.Error(t, err)
	assert.Equal(t, string(StatusDone), ap.Status)
}
