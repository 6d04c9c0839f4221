package agenda

import (
	"context"
	"time"

	"github.com/chimeco/agenda-api/internal/calendar"
	domain "github.com/chimeco/agenda-api/internal/domain/appointment"
	"github.com/chimeco/agenda-api/internal/timezone"
)

// WeekAgenda monta a grade semanal (segunda a domingo) com deslocamento
// de semanas em relação à âncora.
type WeekAgenda struct {
	repo domain.Repository
}

func NewWeekAgenda(
	repo domain.Repository,
) *WeekAgenda {
	return &WeekAgenda{
		repo: repo,
	}
}

func (uc *WeekAgenda) Execute(
	ctx context.Context,
	dateStr string,
	offset int,
) (calendar.WeekView, error) {

	loc := timezone.Location()

	anchor := timezone.Today()
	if dateStr != "" {
		if d, err := time.ParseInLocation("2006-01-02", dateStr, loc); err == nil {
			anchor = d
		}
	}

	days := calendar.WeekDays(anchor, offset, loc)

	appointments, err := uc.repo.ListForPeriod(
		ctx,
		days[0],
		days[6].AddDate(0, 0, 1),
	)
	if err != nil {
		return calendar.WeekView{}, err
	}

	return calendar.BuildWeekView(anchor, offset, appointments, loc), nil
}
