package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/httpresp"
	ucAgenda "github.com/chimeco/agenda-api/internal/usecase/agenda"
)

// ======================================================
// HANDLER
// ======================================================

type AgendaHandler struct {
	dayUC   *ucAgenda.DayAgenda
	weekUC  *ucAgenda.WeekAgenda
	monthUC *ucAgenda.MonthAgenda
	yearUC  *ucAgenda.YearAgenda
}

func NewAgendaHandler(
	dayUC *ucAgenda.DayAgenda,
	weekUC *ucAgenda.WeekAgenda,
	monthUC *ucAgenda.MonthAgenda,
	yearUC *ucAgenda.YearAgenda,
) *AgendaHandler {
	return &AgendaHandler{
		dayUC:   dayUC,
		weekUC:  weekUC,
		monthUC: monthUC,
		yearUC:  yearUC,
	}
}

// ======================================================
// GET /me/agenda
// ======================================================

// Agenda despacha pela query ?view=day|week|month|year. Visão ausente
// ou desconhecida cai para a semanal.
func (h *AgendaHandler) Agenda(c *gin.Context) {
	switch c.Query("view") {
	case "day":
		h.day(c)
	case "month":
		h.month(c)
	case "year":
		h.year(c)
	default:
		h.week(c)
	}
}

func (h *AgendaHandler) day(c *gin.Context) {
	view, err := h.dayUC.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.Internal(c, "failed_to_build_agenda", "Erro ao montar agenda.")
		return
	}

	httpresp.OK(c, view)
}

func (h *AgendaHandler) week(c *gin.Context) {
	offset := atoiDefault(c.Query("week"), 0)

	view, err := h.weekUC.Execute(c.Request.Context(), c.Query("date"), offset)
	if err != nil {
		httperr.Internal(c, "failed_to_build_agenda", "Erro ao montar agenda.")
		return
	}

	httpresp.OK(c, view)
}

func (h *AgendaHandler) month(c *gin.Context) {
	year := atoiDefault(c.Query("year"), 0)
	month := atoiDefault(c.Query("month"), 0)

	view, err := h.monthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_build_agenda", "Erro ao montar agenda.")
		return
	}

	httpresp.OK(c, view)
}

func (h *AgendaHandler) year(c *gin.Context) {
	year := atoiDefault(c.Query("year"), 0)

	view, err := h.yearUC.Execute(c.Request.Context(), year)
	if err != nil {
		httperr.Internal(c, "failed_to_build_agenda", "Erro ao montar agenda.")
		return
	}

	httpresp.OK(c, view)
}
