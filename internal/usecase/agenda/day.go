package agenda

import (
	"context"
	"time"

	"github.com/chimeco/agenda-api/internal/calendar"
	domain "github.com/chimeco/agenda-api/internal/domain/appointment"
	"github.com/chimeco/agenda-api/internal/timezone"
)

// DayAgenda monta o tablero diário: citas agrupadas por profissional
// com contadores done/total, mais estatísticas globais por status.
type DayAgenda struct {
	repo domain.Repository
}

func NewDayAgenda(
	repo domain.Repository,
) *DayAgenda {
	return &DayAgenda{
		repo: repo,
	}
}

func (uc *DayAgenda) Execute(
	ctx context.Context,
	dateStr string,
) (calendar.DayView, error) {

	loc := timezone.Location()

	// data ausente ou inválida cai para hoje
	day := timezone.Today()
	if dateStr != "" {
		if d, err := time.ParseInLocation("2006-01-02", dateStr, loc); err == nil {
			day = d
		}
	}

	appointments, err := uc.repo.ListForPeriod(
		ctx,
		day,
		day.AddDate(0, 0, 1),
	)
	if err != nil {
		return calendar.DayView{}, err
	}

	staff, err := uc.repo.ListActiveStaff(ctx)
	if err != nil {
		return calendar.DayView{}, err
	}

	return calendar.BuildDayView(day, staff, appointments, loc), nil
}
