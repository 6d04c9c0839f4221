package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/chimeco/agenda-api/internal/httperr"
	"github.com/chimeco/agenda-api/internal/models"
)

// ======================================================
// MOCK DO REPOSITÓRIO
// ======================================================

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) GetEventByID(ctx context.Context, id uint) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *mockEventRepo) ListEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *mockEventRepo) SeatsTakenForEvent(ctx context.Context, eventID uint) (int, error) {
	args := m.Called(ctx, eventID)
	return args.Int(0), args.Error(1)
}

func (m *mockEventRepo) CreateBookingChecked(ctx context.Context, eventID uint, booking *models.Booking) error {
	args := m.Called(ctx, eventID, booking)
	return args.Error(0)
}

func (m *mockEventRepo) FindBookingByCode(ctx context.Context, code string) (*models.Booking, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *mockEventRepo) ListBookingsForEvent(ctx context.Context, eventID uint) ([]models.Booking, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *mockEventRepo) CancelBooking(ctx context.Context, bookingID uint) error {
	args := m.Called(ctx, bookingID)
	return args.Error(0)
}

// ======================================================
// HELPERS
// ======================================================

func testEvent(status string) *models.Event {
	return &models.Event{
		ID:                   7,
		Title:                "Workshop de barbearia",
		Start:                time.Date(2025, 8, 1, 19, 0, 0, 0, time.UTC),
		Capacity:             10,
		AllowGroupBooking:    true,
		MaxTicketsPerBooking: 4,
		Status:               status,
	}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		EventID:  7,
		Name:     "Maria Souza",
		Email:    "maria@example.com",
		Phone:    "11999990000",
		Quantity: 2,
	}
}

// ======================================================
// TESTES
// ======================================================

func TestCreateBookingSuccess(t *testing.T) {
	repo := new(mockEventRepo)
	uc := NewCreateBooking(repo, nil)

	repo.On("GetEventByID", mock.Anything, uint(7)).
		Return(testEvent("active"), nil)
	repo.On("CreateBookingChecked", mock.Anything, uint(7), mock.Anything).
		Return(nil)

	b, err := uc.Execute(context.Background(), validInput())

	assert.NoError(t, err)
	assert.Equal(t, uint(7), b.EventID)
	assert.Equal(t, 2, b.Quantity)
	assert.NotEmpty(t, b.ConfirmationCode)

	repo.AssertExpectations(t)
}

func TestCreateBookingEventNotFound(t *testing.T) {
	repo := new(mockEventRepo)
	uc := NewCreateBooking(repo, nil)

	repo.On("GetEventByID", mock.Anything, uint(7)).
		Return(nil, assert.AnError)

	b, err := uc.Execute(context.Background(), validInput())

	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, "event_not_found"))
	repo.AssertNotCalled(t, "CreateBookingChecked", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBookingEventNotActive(t *testing.T) {
	for _, status := range []string{"cancelled", "postponed", "finished"} {
		repo := new(mockEventRepo)
		uc := NewCreateBooking(repo, nil)

		repo.On("GetEventByID", mock.Anything, uint(7)).
			Return(testEvent(status), nil)

		b, err := uc.Execute(context.Background(), validInput())

		assert.Nil(t, b)
		assert.True(t, httperr.IsBusiness(err, "event_not_active"), status)
		repo.AssertNotCalled(t, "CreateBookingChecked", mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestCreateBookingInvalidQuantity(t *testing.T) {
	repo := new(mockEventRepo)
	uc := NewCreateBooking(repo, nil)

	repo.On("GetEventByID", mock.Anything, uint(7)).
		Return(testEvent("active"), nil)

	in := validInput()
	in.Quantity = 0

	b, err := uc.Execute(context.Background(), in)

	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))
	repo.AssertNotCalled(t, "CreateBookingChecked", mock.Anything, mock.Anything, mock.Anything)
}

// Erro de capacidade vem do repositório (validado sob lock) e sobe
// intacto; nenhuma reserva é devolvida.
func TestCreateBookingCapacityExceeded(t *testing.T) {
	repo := new(mockEventRepo)
	uc := NewCreateBooking(repo, nil)

	repo.On("GetEventByID", mock.Anything, uint(7)).
		Return(testEvent("active"), nil)
	repo.On("CreateBookingChecked", mock.Anything, uint(7), mock.Anything).
		Return(httperr.ErrBusinessField("capacity_exceeded", "quantity"))

	b, err := uc.Execute(context.Background(), validInput())

	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, "capacity_exceeded"))
}

func TestCreateBookingCodesAreUnique(t *testing.T) {
	repo := new(mockEventRepo)
	uc := NewCreateBooking(repo, nil)

	repo.On("GetEventByID", mock.Anything, uint(7)).
		Return(testEvent("active"), nil)
	repo.On("CreateBookingChecked", mock.Anything, uint(7), mock.Anything).
		Return(nil)

	first, err := uc.Execute(context.Background(), validInput())
	assert.NoError(t, err)

	second, err := uc.Execute(context.Background(), validInput())
	assert.NoError(t, err)

	assert.NotEqual(t, first.ConfirmationCode, second.ConfirmationCode)
}

func TestLookupBooking(t *testing.T) {
	repo := new(mockEventRepo)
	uc := NewLookupBooking(repo)

	stored := &models.Booking{
		EventID:          7,
		Name:             "Maria Souza",
		Quantity:         2,
		ConfirmationCode: "abc-123",
	}

	repo.On("FindBookingByCode", mock.Anything, "abc-123").
		Return(stored, nil)

	b, err := uc.Execute(context.Background(), "abc-123")
	assert.NoError(t, err)
	assert.Equal(t, stored, b)

	// código vazio nem consulta o repositório
	b, err = uc.Execute(context.Background(), "")
	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
	repo.AssertNotCalled(t, "FindBookingByCode", mock.Anything, "")

	// código desconhecido vira o mesmo erro de negócio
	repo.On("FindBookingByCode", mock.Anything, "nope").
		Return(nil, assert.AnError)

	b, err = uc.Execute(context.Background(), "nope")
	assert.Nil(t, b)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
