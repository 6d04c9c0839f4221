package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/chimeco/agenda-api/internal/domain/event"
	"github.com/chimeco/agenda-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Event
// --------------------------------------------------

func (r *BookingGormRepository) GetEventByID(
	ctx context.Context,
	id uint,
) (*models.Event, error) {

	var ev models.Event
	if err := r.db.WithContext(ctx).
		Preload("Type").
		First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *BookingGormRepository) ListEvents(
	ctx context.Context,
) ([]models.Event, error) {

	var events []models.Event
	if err := r.db.WithContext(ctx).
		Preload("Type").
		Order("start ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (r *BookingGormRepository) SeatsTakenForEvent(
	ctx context.Context,
	eventID uint,
) (int, error) {

	var taken int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("event_id = ? AND cancelled = false", eventID).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&taken).Error; err != nil {
		return 0, err
	}
	return int(taken), nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

// CreateBookingChecked valida capacidade e grava a reserva na mesma
// transação, com lock de linha no evento. Duas reservas concorrentes
// para o mesmo evento serializam aqui: não há overbooking silencioso.
func (r *BookingGormRepository) CreateBookingChecked(
	ctx context.Context,
	eventID uint,
	booking *models.Booking,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var ev models.Event
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ev, eventID).Error; err != nil {
			return err
		}

		var taken int64
		if err := tx.
			Model(&models.Booking{}).
			Where("event_id = ? AND cancelled = false", ev.ID).
			Select("COALESCE(SUM(quantity), 0)").
			Scan(&taken).Error; err != nil {
			return err
		}

		if err := domain.CheckAdmission(&ev, int(taken), booking.Quantity); err != nil {
			return err
		}

		booking.EventID = ev.ID
		return tx.Create(booking).Error
	})
}

func (r *BookingGormRepository) FindBookingByCode(
	ctx context.Context,
	code string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Preload("Event").
		Preload("Event.Type").
		Where("confirmation_code = ?", code).
		First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingGormRepository) ListBookingsForEvent(
	ctx context.Context,
	eventID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingGormRepository) CancelBooking(
	ctx context.Context,
	bookingID uint,
) error {

	result := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", bookingID).
		Update("cancelled", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
