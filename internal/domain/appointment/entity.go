package appointment

import (
	"time"

	"github.com/chimeco/agenda-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// ChangeStatus aplica a transição no modelo em memória. A gravação
// (status + histórico, na mesma transação) é responsabilidade do
// repositório.
func ChangeStatus(ap *models.Appointment, target Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), target, now, ap.Start); err != nil {
		return err
	}

	ap.Status = string(target)
	return nil
}
