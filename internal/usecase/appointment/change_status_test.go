package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domain "github.com/chimeco/agenda-api/internal/domain/appointment"
	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/models"
	"github.com/chimeco/agenda-api/internal/timezone"
)

// ======================================================
// FAKE EM MEMÓRIA
// ======================================================

type fakeRepo struct {
	appointments map[uint]*models.Appointment
	history      []models.AppointmentStatusHistory
	staff        map[uint]*models.Staff
	clients      map[uint]*models.Client
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		appointments: map[uint]*models.Appointment{},
		staff:        map[uint]*models.Staff{},
		clients:      map[uint]*models.Client{},
	}
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	ap, ok := f.appointments[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return ap, nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	f.nextID++
	ap.ID = f.nextID
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	f.appointments[ap.ID] = ap
	return nil
}

func (f *fakeRepo) DeleteAppointment(_ context.Context, id uint) error {
	delete(f.appointments, id)
	return nil
}

func (f *fakeRepo) ApplyTransition(
	_ context.Context,
	ap *models.Appointment,
	oldStatus domain.Status,
	newStatus domain.Status,
	changedBy *uint,
) error {
	ap.Status = string(newStatus)
	f.history = append(f.history, models.AppointmentStatusHistory{
		AppointmentID: ap.ID,
		OldStatus:     string(oldStatus),
		NewStatus:     string(newStatus),
		ChangedByID:   changedBy,
	})
	return nil
}

func (f *fakeRepo) ListHistory(_ context.Context, appointmentID uint) ([]models.AppointmentStatusHistory, error) {
	var out []models.AppointmentStatusHistory
	for _, h := range f.history {
		if h.AppointmentID == appointmentID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeRepo) AssertStaffFree(_ context.Context, staffID uint, start time.Time) error {
	for _, ap := range f.appointments {
		if ap.StaffID == staffID &&
			ap.Status != string(domain.StatusCancelled) &&
			ap.Start.Equal(start) {
			return httperr.ErrBusiness("staff_not_available")
		}
	}
	return nil
}

func (f *fakeRepo) ListForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if !ap.Start.Before(start) && ap.Start.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListActiveStaff(_ context.Context) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range f.staff {
		if s.Active {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetStaff(_ context.Context, id uint) (*models.Staff, error) {
	s, ok := f.staff[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (f *fakeRepo) GetClient(_ context.Context, id uint) (*models.Client, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (f *fakeRepo) seedPeople(allowMultiple bool) {
	f.staff[1] = &models.Staff{
		ID:            1,
		Person:        models.Person{Name: "Carlos", Active: true},
		AllowMultiple: allowMultiple,
	}
	f.clients[1] = &models.Client{
		ID:     1,
		Person: models.Person{Name: "Maria", Active: true},
	}
}

func (f *fakeRepo) seedAppointment(status domain.Status, start time.Time) *models.Appointment {
	f.nextID++
	ap := &models.Appointment{
		ID:       f.nextID,
		StaffID:  1,
		ClientID: 1,
		Start:    start,
		Status:   string(status),
	}
	f.appointments[ap.ID] = ap
	return ap
}

// ======================================================
// CHANGE STATUS
// ======================================================

func TestChangeStatusLifecycle(t *testing.T) {
	repo := newFakeRepo()
	uc := NewChangeStatus(repo, nil)

	future := timezone.Now().Add(48 * time.Hour)
	ap := repo.seedAppointment(domain.StatusPending, future)

	actor := uint(9)

	// pending → confirmed
	got, err := uc.Execute(context.Background(), ap.ID, domain.StatusConfirmed, &actor)
	assert.NoError(t, err)
	assert.Equal(t, "confirmed", got.Status)

	// confirmed → done
	got, err = uc.Execute(context.Background(), ap.ID, domain.StatusDone, &actor)
	assert.NoError(t, err)
	assert.Equal(t, "done", got.Status)

	// cada mudança gera exatamente um registro de histórico
	history, err := repo.ListHistory(context.Background(), ap.ID)
	assert.NoError(t, err)
	assert.Len(t, history, 2)

	assert.Equal(t, "pending", history[0].OldStatus)
	assert.Equal(t, "confirmed", history[0].NewStatus)
	assert.Equal(t, "confirmed", history[1].OldStatus)
	assert.Equal(t, "done", history[1].NewStatus)
	assert.Equal(t, &actor, history[0].ChangedByID)
}

func TestChangeStatusDoneIsTerminal(t *testing.T) {
	repo := newFakeRepo()
	uc := NewChangeStatus(repo, nil)

	future := timezone.Now().Add(48 * time.Hour)
	ap := repo.seedAppointment(domain.StatusDone, future)

	for _, target := range []domain.Status{
		domain.StatusPending,
		domain.StatusConfirmed,
		domain.StatusCancelled,
	} {
		_, err := uc.Execute(context.Background(), ap.ID, target, nil)
		assert.True(t, httperr.IsBusiness(err, "appointment_done"), string(target))
	}

	// nada foi gravado
	history, _ := repo.ListHistory(context.Background(), ap.ID)
	assert.Empty(t, history)
	assert.Equal(t, "done", repo.appointments[ap.ID].Status)
}

func TestChangeStatusPendingNeedsFutureStart(t *testing.T) {
	repo := newFakeRepo()
	uc := NewChangeStatus(repo, nil)

	past := timezone.Now().Add(-time.Hour)
	ap := repo.seedAppointment(domain.StatusConfirmed, past)

	_, err := uc.Execute(context.Background(), ap.ID, domain.StatusPending, nil)
	assert.True(t, httperr.IsBusiness(err, "past_appointment"))

	// com início futuro a volta é permitida
	future := timezone.Now().Add(time.Hour)
	ap2 := repo.seedAppointment(domain.StatusConfirmed, future)

	got, err := uc.Execute(context.Background(), ap2.ID, domain.StatusPending, nil)
	assert.NoError(t, err)
	assert.Equal(t, "pending", got.Status)
}

func TestChangeStatusRejectsUnknownTargets(t *testing.T) {
	repo := newFakeRepo()
	uc := NewChangeStatus(repo, nil)

	ap := repo.seedAppointment(domain.StatusPending, timezone.Now().Add(time.Hour))

	_, err := uc.Execute(context.Background(), ap.ID, domain.Status("archived"), nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))

	_, err = uc.Execute(context.Background(), 999, domain.StatusConfirmed, nil)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

// ======================================================
// CREATE
// ======================================================

func TestCreateAppointment(t *testing.T) {
	repo := newFakeRepo()
	repo.seedPeople(true)
	uc := NewCreateAppointment(repo, nil)

	ap, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1,
		StaffID:  1,
		Date:     "2030-03-15",
		Time:     "14:30",
		Notes:    "primeira visita",
	})

	assert.NoError(t, err)
	assert.Equal(t, "pending", ap.Status)
	assert.Equal(t, 15, ap.Start.Day())
	assert.Equal(t, 14, ap.Start.Hour())
	assert.NotZero(t, ap.ID)
}

func TestCreateAppointmentValidations(t *testing.T) {
	repo := newFakeRepo()
	repo.seedPeople(true)
	uc := NewCreateAppointment(repo, nil)

	_, err := uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, StaffID: 1, Date: "15/03/2030", Time: "14:30",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_date_or_time"))

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 99, StaffID: 1, Date: "2030-03-15", Time: "14:30",
	})
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))

	_, err = uc.Execute(context.Background(), CreateAppointmentInput{
		ClientID: 1, StaffID: 99, Date: "2030-03-15", Time: "14:30",
	})
	assert.True(t, httperr.IsBusiness(err, "staff_not_found"))
}

func TestCreateAppointmentStaffConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.seedPeople(false) // sem atendimento simultâneo
	uc := NewCreateAppointment(repo, nil)

	in := CreateAppointmentInput{
		ClientID: 1, StaffID: 1, Date: "2030-03-15", Time: "14:30",
	}

	_, err := uc.Execute(context.Background(), in)
	assert.NoError(t, err)

	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "staff_not_available"))

	// profissional com atendimento simultâneo aceita o mesmo horário
	repo2 := newFakeRepo()
	repo2.seedPeople(true)
	uc2 := NewCreateAppointment(repo2, nil)

	_, err = uc2.Execute(context.Background(), in)
	assert.NoError(t, err)
	_, err = uc2.Execute(context.Background(), in)
	assert.NoError(t, err)
}
