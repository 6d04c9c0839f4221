package appointment

import (
	"context"
	"time"

	"github.com/chimeco/agenda-api/internal/models"
)

type Repository interface {
	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Transição de status (atômica) --------

	// ApplyTransition grava o novo status e o registro de histórico na
	// mesma transação: ou os dois entram, ou nenhum.
	ApplyTransition(
		ctx context.Context,
		ap *models.Appointment,
		oldStatus Status,
		newStatus Status,
		changedBy *uint,
	) error

	ListHistory(
		ctx context.Context,
		appointmentID uint,
	) ([]models.AppointmentStatusHistory, error)

	// -------- Disponibilidade --------

	// AssertStaffFree falha quando já existe cita ativa do mesmo
	// profissional no mesmo horário.
	AssertStaffFree(
		ctx context.Context,
		staffID uint,
		start time.Time,
	) error

	// -------- Consultas de agenda --------

	// ListForPeriod devolve as citas com início dentro do intervalo
	// semiaberto [start, end), com cliente e staff carregados.
	ListForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListActiveStaff(
		ctx context.Context,
	) ([]models.Staff, error)

	// -------- Pessoas --------
	GetStaff(
		ctx context.Context,
		id uint,
	) (*models.Staff, error)

	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)
}
