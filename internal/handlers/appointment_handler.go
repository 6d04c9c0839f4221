package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/chimeco/agenda-api/internal/domain/appointment"
	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/httpresp"
	ucAppointment "github.com/chimeco/agenda-api/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	repo           domain.Repository
	createUC       *ucAppointment.CreateAppointment
	changeStatusUC *ucAppointment.ChangeStatus
}

func NewAppointmentHandler(
	repo domain.Repository,
	createUC *ucAppointment.CreateAppointment,
	changeStatusUC *ucAppointment.ChangeStatus,
) *AppointmentHandler {
	return &AppointmentHandler{
		repo:           repo,
		createUC:       createUC,
		changeStatusUC: changeStatusUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	StaffID  uint   `json:"staff_id" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // HH:mm
	Notes    string `json:"notes"`
}

// ======================================================
// CRUD
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			ClientID: req.ClientID,
			StaffID:  req.StaffID,
			Date:     req.Date,
			Time:     req.Time,
			Notes:    req.Notes,
		},
	)
	if err != nil {
		mapAppointmentErrors(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita não encontrada.")
		return
	}

	httpresp.OK(c, ap)
}

// Update mexe só em horário e observações. Status passa pela
// transição auditada, nunca por aqui.
func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	ap, err := h.repo.GetAppointment(c.Request.Context(), id)
	if err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita não encontrada.")
		return
	}

	var req struct {
		Date  string `json:"date" binding:"required"`
		Time  string `json:"time" binding:"required"`
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	ap.Start = start
	ap.Notes = req.Notes

	if err := h.repo.SaveAppointment(c.Request.Context(), ap); err != nil {
		httperr.Internal(c, "failed_to_update_appointment", "Erro ao atualizar cita.")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if _, err := h.repo.GetAppointment(c.Request.Context(), id); err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita não encontrada.")
		return
	}

	if err := h.repo.DeleteAppointment(c.Request.Context(), id); err != nil {
		httperr.Internal(c, "failed_to_delete_appointment", "Erro ao remover cita.")
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// STATUS + HISTÓRICO
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	target := domain.Status(c.Param("status"))

	ap, err := h.changeStatusUC.Execute(
		c.Request.Context(),
		id,
		target,
		actorFrom(c),
	)
	if err != nil {
		mapAppointmentErrors(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) History(c *gin.Context) {
	id, ok := appointmentID(c)
	if !ok {
		return
	}

	if _, err := h.repo.GetAppointment(c.Request.Context(), id); err != nil {
		httperr.NotFound(c, "appointment_not_found", "Cita não encontrada.")
		return
	}

	history, err := h.repo.ListHistory(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "failed_to_list_history", "Erro ao listar histórico.")
		return
	}

	httpresp.List(c, history)
}

// ======================================================
// HELPERS
// ======================================================

func appointmentID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Cita inválida.")
		return 0, false
	}
	return uint(id), true
}

func mapAppointmentErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "appointment_not_found"):
		httperr.NotFound(c, "appointment_not_found", "Cita não encontrada.")

	case httperr.IsBusiness(err, "client_not_found"):
		httperr.BadRequest(c, "client_not_found", "Cliente não encontrado.")

	case httperr.IsBusiness(err, "staff_not_found"):
		httperr.BadRequest(c, "staff_not_found", "Profissional não encontrado.")

	case httperr.IsBusiness(err, "invalid_date_or_time"):
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")

	case httperr.IsBusiness(err, "invalid_status"):
		httperr.BadRequest(c, "invalid_status", "Status inválido.")

	case httperr.IsBusiness(err, "staff_not_available"):
		httperr.Conflict(c, "staff_not_available", "Profissional já ocupado neste horário.")

	case httperr.IsBusiness(err, "past_appointment"):
		httperr.Conflict(c, "past_appointment", "Cita no passado não volta para pendente.")

	case httperr.IsBusiness(err, "appointment_done"):
		httperr.Conflict(c, "appointment_done", "Cita concluída não muda de status.")

	case httperr.IsBusiness(err, "transition_not_permitted"):
		httperr.Conflict(c, "transition_not_permitted", "Transição de status não permitida.")

	default:
		httperr.Internal(c, "appointment_failed", "Erro ao gravar cita.")
	}
}
