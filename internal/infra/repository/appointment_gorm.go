package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/chimeco/agenda-api/internal/domain/appointment"
	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Staff").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Create(ap).Error
}

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	// histórico removido junto com a cita (cascade explícito)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("appointment_id = ?", id).
			Delete(&models.AppointmentStatusHistory{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Appointment{}, id).Error
	})
}

// --------------------------------------------------
// Transição de status
// --------------------------------------------------

// ApplyTransition grava status e histórico na mesma transação. Nunca
// existe status novo sem a linha de histórico correspondente.
func (r *AppointmentGormRepository) ApplyTransition(
	ctx context.Context,
	ap *models.Appointment,
	oldStatus domain.Status,
	newStatus domain.Status,
	changedBy *uint,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.
			Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Update("status", string(newStatus)).Error; err != nil {
			return err
		}

		entry := models.AppointmentStatusHistory{
			AppointmentID: ap.ID,
			OldStatus:     string(oldStatus),
			NewStatus:     string(newStatus),
			ChangedByID:   changedBy,
		}

		return tx.Create(&entry).Error
	})

	if err != nil {
		return err
	}

	ap.Status = string(newStatus)
	return nil
}

func (r *AppointmentGormRepository) ListHistory(
	ctx context.Context,
	appointmentID uint,
) ([]models.AppointmentStatusHistory, error) {

	var history []models.AppointmentStatusHistory
	if err := r.db.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Order("changed_at ASC, id ASC").
		Find(&history).Error; err != nil {
		return nil, err
	}
	return history, nil
}

// --------------------------------------------------
// Disponibilidade do profissional
// --------------------------------------------------

// AssertStaffFree barra duas citas ativas no mesmo horário quando o
// profissional não permite atendimentos simultâneos.
func (r *AppointmentGormRepository) AssertStaffFree(
	ctx context.Context,
	staffID uint,
	start time.Time,
) error {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			"staff_id = ? AND status <> 'cancelled' AND start = ?",
			staffID,
			start,
		).
		Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness("staff_not_available")
	}
	return nil
}

// --------------------------------------------------
// Consultas de agenda
// --------------------------------------------------

func (r *AppointmentGormRepository) ListForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var appointments []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Staff").
		Where("start >= ? AND start < ?", start, end).
		Order("start ASC").
		Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *AppointmentGormRepository) ListActiveStaff(
	ctx context.Context,
) ([]models.Staff, error) {

	var staff []models.Staff
	if err := r.db.WithContext(ctx).
		Where("active = true").
		Order("name ASC").
		Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// --------------------------------------------------
// Pessoas (cita referencia cliente e staff existentes)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetStaff(
	ctx context.Context,
	id uint,
) (*models.Staff, error) {

	var s models.Staff
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var c models.Client
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
