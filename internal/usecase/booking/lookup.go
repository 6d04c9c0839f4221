package booking

import (
	"context"

	domain "github.com/chimeco/agenda-api/internal/domain/event"
	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/models"
)

// LookupBooking resolve o código de confirmação público. O ID interno
// da reserva nunca é usado como chave de consulta externa.
type LookupBooking struct {
	repo domain.Repository
}

func NewLookupBooking(
	repo domain.Repository,
) *LookupBooking {
	return &LookupBooking{
		repo: repo,
	}
}

func (uc *LookupBooking) Execute(
	ctx context.Context,
	code string,
) (*models.Booking, error) {

	if code == "" {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	b, err := uc.repo.FindBookingByCode(ctx, code)
	if err != nil {
		return nil, httperr.ErrBusiness("booking_not_found")
	}

	return b, nil
}
