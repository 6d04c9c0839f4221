package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/chimeco/agenda-api/internal/domain/event"
	"github.com/chimeco/agenda-api/internal/dto"
	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/httpresp"
	"github.com/chimeco/agenda-api/internal/middleware"
	"github.com/chimeco/agenda-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type EventHandler struct {
	db        *gorm.DB
	eventRepo domain.Repository
}

func NewEventHandler(
	db *gorm.DB,
	eventRepo domain.Repository,
) *EventHandler {
	return &EventHandler{
		db:        db,
		eventRepo: eventRepo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type EventRequest struct {
	TypeID      uint   `json:"type_id" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`

	Date string `json:"date" binding:"required"` // YYYY-MM-DD
	Time string `json:"time" binding:"required"` // HH:mm

	Capacity             int  `json:"capacity" binding:"required,min=1"`
	AllowGroupBooking    bool `json:"allow_group_booking"`
	MaxTicketsPerBooking int  `json:"max_tickets_per_booking"`
}

type DuplicateEventRequest struct {
	Date string `json:"date"` // YYYY-MM-DD, opcional
	Time string `json:"time"` // HH:mm, opcional
}

// ======================================================
// CRUD
// ======================================================

func (h *EventHandler) Create(c *gin.Context) {
	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	var eventType models.EventType
	if err := h.db.First(&eventType, req.TypeID).Error; err != nil {
		httperr.BadRequest(c, "event_type_not_found", "Tipo de evento não encontrado.")
		return
	}

	maxTickets := req.MaxTicketsPerBooking
	if maxTickets < 1 {
		maxTickets = 1
	}

	organizerID := actorFrom(c)

	ev := models.Event{
		TypeID:               eventType.ID,
		Title:                req.Title,
		Description:          req.Description,
		Start:                start,
		Capacity:             req.Capacity,
		OrganizerID:          organizerID,
		AllowGroupBooking:    req.AllowGroupBooking,
		MaxTicketsPerBooking: maxTickets,
		Status:               string(domain.StatusActive),
	}

	// invariantes de escrita (capacidade, limite de grupo)
	if err := domain.Validate(&ev); err != nil {
		mapEventErrors(c, err)
		return
	}

	if err := h.db.Create(&ev).Error; err != nil {
		httperr.Internal(c, "failed_to_create_event", "Erro ao criar evento.")
		return
	}

	httpresp.Created(c, ev)
}

func (h *EventHandler) Update(c *gin.Context) {
	ev, ok := h.loadEvent(c)
	if !ok {
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ev.TypeID = req.TypeID
	ev.Title = req.Title
	ev.Description = req.Description
	ev.Start = start
	ev.Capacity = req.Capacity
	ev.AllowGroupBooking = req.AllowGroupBooking
	if req.MaxTicketsPerBooking >= 1 {
		ev.MaxTicketsPerBooking = req.MaxTicketsPerBooking
	}

	if err := domain.Validate(ev); err != nil {
		mapEventErrors(c, err)
		return
	}

	if err := h.db.Save(ev).Error; err != nil {
		httperr.Internal(c, "failed_to_update_event", "Erro ao atualizar evento.")
		return
	}

	httpresp.OK(c, ev)
}

// ======================================================
// LIFECYCLE (CANCEL / DUPLICATE)
// ======================================================

func (h *EventHandler) Cancel(c *gin.Context) {
	ev, ok := h.loadEvent(c)
	if !ok {
		return
	}

	domain.Cancel(ev)

	if err := h.db.Save(ev).Error; err != nil {
		httperr.Internal(c, "failed_to_cancel_event", "Erro ao cancelar evento.")
		return
	}

	httpresp.OK(c, ev)
}

func (h *EventHandler) Duplicate(c *gin.Context) {
	ev, ok := h.loadEvent(c)
	if !ok {
		return
	}

	var req DuplicateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	dup := domain.Duplicate(ev, nil)
	if req.Date != "" {
		timeStr := req.Time
		if timeStr == "" {
			timeStr = ev.Start.Format("15:04")
		}

		start, err := parseDateTime(req.Date, timeStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
			return
		}
		dup = domain.Duplicate(ev, &start)
	}

	if err := h.db.Create(dup).Error; err != nil {
		httperr.Internal(c, "failed_to_duplicate_event", "Erro ao reagendar evento.")
		return
	}

	httpresp.Created(c, dup)
}

// ======================================================
// BOOKINGS DO EVENTO
// ======================================================

func (h *EventHandler) ListBookings(c *gin.Context) {
	ev, ok := h.loadEvent(c)
	if !ok {
		return
	}

	bookings, err := h.eventRepo.ListBookingsForEvent(c.Request.Context(), ev.ID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_bookings", "Erro ao listar reservas.")
		return
	}

	out := make([]dto.BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, dto.BookingDTO{
			ConfirmationCode: b.ConfirmationCode,
			EventID:          b.EventID,
			Name:             b.Name,
			Email:            b.Email,
			Phone:            b.Phone,
			Quantity:         b.Quantity,
			Cancelled:        b.Cancelled,
			CreatedAt:        b.CreatedAt,
		})
	}

	httpresp.List(c, out)
}

// CancelBooking libera os assentos da reserva (flag, não delete).
func (h *EventHandler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("bookingId"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Reserva inválida.")
		return
	}

	if err := h.eventRepo.CancelBooking(c.Request.Context(), uint(id)); err != nil {
		httperr.NotFound(c, "booking_not_found", "Reserva não encontrada.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// EVENT TYPES
// ======================================================

type EventTypeRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"duration_minutes"`
}

func (h *EventHandler) ListTypes(c *gin.Context) {
	var types []models.EventType
	if err := h.db.Order("name ASC").Find(&types).Error; err != nil {
		httperr.Internal(c, "failed_to_list_event_types", "Erro ao listar tipos.")
		return
	}

	httpresp.List(c, types)
}

func (h *EventHandler) CreateType(c *gin.Context) {
	var req EventTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	eventType := models.EventType{
		Name:            req.Name,
		DurationMinutes: duration,
	}

	if err := h.db.Create(&eventType).Error; err != nil {
		httperr.Internal(c, "failed_to_create_event_type", "Erro ao criar tipo.")
		return
	}

	httpresp.Created(c, eventType)
}

// DeleteType é protegido: tipo referenciado por evento não sai.
func (h *EventHandler) DeleteType(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_event_type_id", "Tipo inválido.")
		return
	}

	var count int64
	if err := h.db.
		Model(&models.Event{}).
		Where("type_id = ?", uint(id)).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_event_type", "Erro ao remover tipo.")
		return
	}

	if count > 0 {
		httperr.Conflict(c, "event_type_in_use", "Tipo em uso por eventos.")
		return
	}

	if err := h.db.Delete(&models.EventType{}, uint(id)).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_event_type", "Erro ao remover tipo.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// HELPERS
// ======================================================

func (h *EventHandler) loadEvent(c *gin.Context) (*models.Event, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_event_id", "Evento inválido.")
		return nil, false
	}

	var ev models.Event
	if err := h.db.First(&ev, uint(id)).Error; err != nil {
		httperr.NotFound(c, "event_not_found", "Evento não encontrado.")
		return nil, false
	}

	return &ev, true
}

func mapEventErrors(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.BadRequest(c, code, "Evento inválido.")
		return
	}
	httperr.Internal(c, "event_failed", "Erro ao gravar evento.")
}

func actorFrom(c *gin.Context) *uint {
	v, ok := c.Get(middleware.ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok {
		return nil
	}
	return &id
}
