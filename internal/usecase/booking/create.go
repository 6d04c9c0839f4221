package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/chimeco/agenda-api/internal/domain/event"
	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/models"
	"github.com/chimeco/agenda-api/internal/notify"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	EventID uint

	Name  string
	Email string
	Phone string

	Quantity int
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	notify *notify.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:   repo,
		notify: notify,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Evento
	// --------------------------------------------------
	ev, err := uc.repo.GetEventByID(ctx, in.EventID)
	if err != nil {
		return nil, httperr.ErrBusiness("event_not_found")
	}

	if domain.Status(ev.Status) != domain.StatusActive {
		return nil, httperr.ErrBusiness("event_not_active")
	}

	if in.Quantity < 1 {
		return nil, httperr.ErrBusinessField("invalid_quantity", "quantity")
	}

	// --------------------------------------------------
	// 2. Reserva com código público
	// --------------------------------------------------
	b := &models.Booking{
		EventID:          ev.ID,
		Name:             in.Name,
		Email:            in.Email,
		Phone:            in.Phone,
		Quantity:         in.Quantity,
		ConfirmationCode: uuid.NewString(),
	}

	// capacidade validada sob lock, dentro da transação do repositório
	if err := uc.repo.CreateBookingChecked(ctx, ev.ID, b); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Boleto por e-mail (nunca falha a reserva)
	// --------------------------------------------------
	uc.notify.Dispatch(notify.Ticket{
		Code:       b.ConfirmationCode,
		Name:       b.Name,
		Email:      b.Email,
		Quantity:   b.Quantity,
		EventTitle: ev.Title,
		EventStart: ev.Start,
	})

	return b, nil
}
