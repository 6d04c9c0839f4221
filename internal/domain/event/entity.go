package event

import (
	"time"

	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Validate garante os invariantes de escrita do evento.
func Validate(ev *models.Event) error {
	if ev.Capacity < 1 {
		return httperr.ErrBusinessField("invalid_capacity", "capacity")
	}

	if ev.AllowGroupBooking && ev.MaxTicketsPerBooking < 1 {
		return httperr.ErrBusinessField("invalid_group_booking_limit", "max_tickets_per_booking")
	}

	if !IsValidStatus(ev.Status) {
		return httperr.ErrBusinessField("invalid_status", "status")
	}

	return nil
}

func Cancel(ev *models.Event) {
	ev.Status = string(StatusCancelled)
}

// Duplicate cria a reprogramação de um evento: cópia dos campos, status
// postponed, referência ao original e início na data informada (ou
// original + 7 dias).
func Duplicate(ev *models.Event, newDate *time.Time) *models.Event {
	start := ev.Start.AddDate(0, 0, 7)
	if newDate != nil {
		start = *newDate
	}

	return &models.Event{
		TypeID:               ev.TypeID,
		Title:                ev.Title + " (Reagendado)",
		Description:          ev.Description,
		Start:                start,
		Capacity:             ev.Capacity,
		OrganizerID:          ev.OrganizerID,
		AllowGroupBooking:    ev.AllowGroupBooking,
		MaxTicketsPerBooking: ev.MaxTicketsPerBooking,
		Status:               string(StatusPostponed),
		ReferenceEventID:     &ev.ID,
	}
}
