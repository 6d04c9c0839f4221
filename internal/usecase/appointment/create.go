package appointment

import (
	"context"
	"time"

	"github.com/chimeco/agenda-api/internal/cache"
	domain "github.com/chimeco/agenda-api/internal/domain/appointment"
	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/models"
	"github.com/chimeco/agenda-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID uint
	StaffID  uint

	Date  string // YYYY-MM-DD
	Time  string // HH:mm
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	cache *cache.AgendaCache
}

func NewCreateAppointment(
	repo domain.Repository,
	cache *cache.AgendaCache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		cache: cache,
	}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Data/hora no fuso configurado
	// --------------------------------------------------
	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	// --------------------------------------------------
	// 2. Cliente e profissional
	// --------------------------------------------------
	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	staff, err := uc.repo.GetStaff(ctx, in.StaffID)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	// --------------------------------------------------
	// 3. Profissional sem atendimento simultâneo
	// --------------------------------------------------
	if !staff.AllowMultiple {
		if err := uc.repo.AssertStaffFree(ctx, staff.ID, start); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 4. Criação (status inicial centralizado)
	// --------------------------------------------------
	ap := &models.Appointment{
		StaffID:  staff.ID,
		ClientID: client.ID,
		Start:    start,
		Notes:    in.Notes,
		Status:   string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.InvalidateYear(ctx, start.Year())

	return ap, nil
}
