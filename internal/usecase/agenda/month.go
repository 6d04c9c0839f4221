package agenda

import (
	"context"
	"time"

	"github.com/chimeco/agenda-api/internal/calendar"
	domain "github.com/chimeco/agenda-api/internal/domain/appointment"
	"github.com/chimeco/agenda-api/internal/timezone"
)

type MonthAgenda struct {
	repo domain.Repository
}

func NewMonthAgenda(
	repo domain.Repository,
) *MonthAgenda {
	return &MonthAgenda{
		repo: repo,
	}
}

func (uc *MonthAgenda) Execute(
	ctx context.Context,
	year int,
	month int,
) (calendar.MonthView, error) {

	loc := timezone.Location()

	// parâmetros inválidos caem para o mês corrente
	today := timezone.Today()
	if year < 1 {
		year = today.Year()
	}
	if month < 1 || month > 12 {
		month = int(today.Month())
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)

	appointments, err := uc.repo.ListForPeriod(
		ctx,
		first,
		first.AddDate(0, 1, 0),
	)
	if err != nil {
		return calendar.MonthView{}, err
	}

	return calendar.BuildMonthView(year, time.Month(month), appointments, loc), nil
}
