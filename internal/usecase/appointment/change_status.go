package appointment

import (
	"context"

	"github.com/chimeco/agenda-api/internal/cache"
	domain "github.com/chimeco/agenda-api/internal/domain/appointment"
	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/models"
	"github.com/chimeco/agenda-api/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type ChangeStatus struct {
	repo  domain.Repository
	cache *cache.AgendaCache
}

func NewChangeStatus(
	repo domain.Repository,
	cache *cache.AgendaCache,
) *ChangeStatus {
	return &ChangeStatus{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ChangeStatus) Execute(
	ctx context.Context,
	appointmentID uint,
	target domain.Status,
	changedBy *uint,
) (*models.Appointment, error) {

	if !domain.IsValidStatus(string(target)) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	// --------------------------------------------------
	// 1. Cita atual
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	old := domain.Status(ap.Status)

	// --------------------------------------------------
	// 2. Guardas + tabela (função pura, sem persistência)
	// --------------------------------------------------
	now := timezone.Now()
	if err := domain.CanTransition(old, target, now, ap.Start); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Status + histórico na mesma transação
	// --------------------------------------------------
	if err := uc.repo.ApplyTransition(ctx, ap, old, target, changedBy); err != nil {
		return nil, err
	}

	uc.cache.InvalidateYear(ctx, ap.Start.In(timezone.Location()).Year())

	return ap, nil
}
