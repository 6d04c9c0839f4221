package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/chimeco/agenda-api/internal/domain/event"
	"github.com/chimeco/agenda-api/internal/dto"
	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/httpresp"
	"github.com/chimeco/agenda-api/internal/models"
	ucBooking "github.com/chimeco/agenda-api/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	createUC  *ucBooking.CreateBooking
	lookupUC  *ucBooking.LookupBooking
	eventRepo domain.Repository
}

func NewPublicHandler(
	createUC *ucBooking.CreateBooking,
	lookupUC *ucBooking.LookupBooking,
	eventRepo domain.Repository,
) *PublicHandler {
	return &PublicHandler{
		createUC:  createUC,
		lookupUC:  lookupUC,
		eventRepo: eventRepo,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone"`

	// ausente = 1 ingresso
	Quantity *int `json:"quantity"`
}

////////////////////////////////////////////////////////
// EVENTS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListEvents(c *gin.Context) {
	events, err := h.eventRepo.ListEvents(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_events", "Erro ao listar eventos.")
		return
	}

	out := make([]dto.EventListDTO, 0, len(events))
	for _, ev := range events {
		taken, err := h.eventRepo.SeatsTakenForEvent(c.Request.Context(), ev.ID)
		if err != nil {
			httperr.Internal(c, "failed_to_list_events", "Erro ao listar eventos.")
			return
		}
		out = append(out, eventToDTO(&ev, taken))
	}

	httpresp.List(c, out)
}

func (h *PublicHandler) GetEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_event_id", "Evento inválido.")
		return
	}

	ev, err := h.eventRepo.GetEventByID(c.Request.Context(), uint(id))
	if err != nil {
		httperr.NotFound(c, "event_not_found", "Evento não encontrado.")
		return
	}

	taken, err := h.eventRepo.SeatsTakenForEvent(c.Request.Context(), ev.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_get_event", "Erro ao consultar evento.")
		return
	}

	httpresp.OK(c, eventToDTO(ev, taken))
}

////////////////////////////////////////////////////////
// BOOKINGS
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_event_id", "Evento inválido.")
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			EventID:  uint(eventID),
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Quantity: quantity,
		},
	)
	if err != nil {
		mapBookingErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"confirmation_code": b.ConfirmationCode,
	})
}

func (h *PublicHandler) LookupBooking(c *gin.Context) {
	b, err := h.lookupUC.Execute(c.Request.Context(), c.Param("code"))
	if err != nil {
		httperr.NotFound(c, "booking_not_found", "Reserva não encontrada.")
		return
	}

	httpresp.OK(c, bookingToDTO(b))
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

func eventToDTO(ev *models.Event, taken int) dto.EventListDTO {
	return dto.EventListDTO{
		ID:          ev.ID,
		TypeName:    ev.Type.Name,
		Title:       ev.Title,
		Description: ev.Description,
		Start:       ev.Start,
		Status:      ev.Status,

		Capacity:       ev.Capacity,
		SeatsTaken:     taken,
		SeatsAvailable: domain.SeatsAvailable(ev.Capacity, taken),
		OccupancyRate:  domain.OccupancyRate(ev.Capacity, taken),

		AllowGroupBooking:    ev.AllowGroupBooking,
		MaxTicketsPerBooking: ev.MaxTicketsPerBooking,
	}
}

func bookingToDTO(b *models.Booking) dto.BookingDTO {
	return dto.BookingDTO{
		ConfirmationCode: b.ConfirmationCode,
		EventID:          b.EventID,
		EventTitle:       b.Event.Title,
		EventStart:       b.Event.Start,
		Name:             b.Name,
		Email:            b.Email,
		Phone:            b.Phone,
		Quantity:         b.Quantity,
		Cancelled:        b.Cancelled,
		CreatedAt:        b.CreatedAt,
	}
}

func mapBookingErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "event_not_found"):
		httperr.NotFound(c, "event_not_found", "Evento não encontrado.")

	case httperr.IsBusiness(err, "event_not_active"):
		httperr.Conflict(c, "event_not_active", "Evento não aceita reservas.")

	case httperr.IsBusiness(err, "invalid_quantity"):
		httperr.WriteField(c, http.StatusBadRequest, "invalid_quantity", "quantity", "Quantidade deve ser ao menos 1.")

	case httperr.IsBusiness(err, "group_booking_not_allowed"):
		httperr.WriteField(c, http.StatusBadRequest, "group_booking_not_allowed", "quantity", "Evento não aceita reserva em grupo.")

	case httperr.IsBusiness(err, "group_limit_exceeded"):
		httperr.WriteField(c, http.StatusBadRequest, "group_limit_exceeded", "quantity", "Quantidade acima do limite por reserva.")

	case httperr.IsBusiness(err, "capacity_exceeded"):
		httperr.WriteField(c, http.StatusConflict, "capacity_exceeded", "quantity", "Não há assentos suficientes.")

	default:
		httperr.Internal(c, "booking_failed", "Erro ao criar reserva.")
	}
}
