package appointment

import (
	"time"

	"github.com/chimeco/agenda-api/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusDone      Status = "done"
)

func InitialStatus() Status {
	return StatusPending
}

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusDone:
		return true
	}
	return false
}

// ===============================
// Tabela de transições
// ===============================

var allowed = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusPending, StatusCancelled, StatusDone},
	StatusCancelled: {StatusPending},
	StatusDone:      {},
}

// CanTransition valida uma mudança de status. Função pura: recebe o
// relógio e o início da cita, não toca em persistência.
//
// Guardas avaliadas antes da tabela:
//  1. voltar para pending exige cita futura;
//  2. done é terminal e devolve erro próprio.
func CanTransition(current, target Status, now, start time.Time) error {
	if target == StatusPending && !start.After(now) {
		return httperr.ErrBusiness("past_appointment")
	}

	if current == StatusDone {
		return httperr.ErrBusiness("appointment_done")
	}

	for _, status := range allowed[current] {
		if status == target {
			return nil
		}
	}

	return httperr.ErrBusiness("transition_not_permitted")
}
