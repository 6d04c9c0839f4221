package agenda

import (
	"context"
	"encoding/json"
	"time"

	"github.com/chimeco/agenda-api/internal/cache"
	"github.com/chimeco/agenda-api/internal/calendar"
	domain "github.com/chimeco/agenda-api/internal/domain/appointment"
	"github.com/chimeco/agenda-api/internal/timezone"
)

// YearAgenda agrega o ano inteiro em 12 baldes mensais. É a visão mais
// cara, então passa pelo cache (invalidado a cada escrita de cita).
type YearAgenda struct {
	repo  domain.Repository
	cache *cache.AgendaCache
}

func NewYearAgenda(
	repo domain.Repository,
	cache *cache.AgendaCache,
) *YearAgenda {
	return &YearAgenda{
		repo:  repo,
		cache: cache,
	}
}

func (uc *YearAgenda) Execute(
	ctx context.Context,
	year int,
) (calendar.YearView, error) {

	loc := timezone.Location()

	if year < 1 {
		year = timezone.Today().Year()
	}

	if payload, ok := uc.cache.GetYear(ctx, year); ok {
		var view calendar.YearView
		if err := json.Unmarshal(payload, &view); err == nil {
			return view, nil
		}
	}

	first := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)

	appointments, err := uc.repo.ListForPeriod(
		ctx,
		first,
		first.AddDate(1, 0, 0),
	)
	if err != nil {
		return calendar.YearView{}, err
	}

	view := calendar.BuildYearView(year, appointments, loc)

	if payload, err := json.Marshal(view); err == nil {
		uc.cache.SetYear(ctx, year, payload)
	}

	return view, nil
}
