package service_test

import (
	"context"
	"time"

	"carrent-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// fixedClock pins "now" so presentation statuses are deterministic.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// MockReservationRepo
type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) Update(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}
func (m *MockReservationRepo) ListByCar(ctx context.Context, carID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByRenter(ctx context.Context, renterID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}
func (m *MockReservationRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Reservation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

// MockCarRepo
type MockCarRepo struct {
	mock.Mock
}

func (m *MockCarRepo) Create(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarRepo) Update(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarRepo) List(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarRepo) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Car, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int64, limit, offset int64) ([]domain.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Notification), args.Get(1).(int64), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int64) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockAvailability
type MockAvailability struct {
	mock.Mock
}

func (m *MockAvailability) BlockedDates(ctx context.Context, carID int64) ([]domain.CalendarDate, error) {
	args := m.Called(ctx, carID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CalendarDate), args.Error(1)
}
func (m *MockAvailability) HasConflict(ctx context.Context, carID int64, candidate domain.DateRange, excludeReservationID int64) (bool, error) {
	args := m.Called(ctx, carID, candidate, excludeReservationID)
	return args.Bool(0), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendReservationRequestNotification(ctx context.Context, ownerEmail, renterName, carName string) error {
	args := m.Called(ctx, ownerEmail, renterName, carName)
	return args.Error(0)
}
func (m *MockEmailService) SendReservationApprovalNotification(ctx context.Context, renterEmail, carName, ownerName string) error {
	args := m.Called(ctx, renterEmail, carName, ownerName)
	return args.Error(0)
}
func (m *MockEmailService) SendReservationRejectionNotification(ctx context.Context, renterEmail, carName, ownerName string) error {
	args := m.Called(ctx, renterEmail, carName, ownerName)
	return args.Error(0)
}
func (m *MockEmailService) SendReservationCancellationNotification(ctx context.Context, email, actorName, carName string) error {
	args := m.Called(ctx, email, actorName, carName)
	return args.Error(0)
}
func (m *MockEmailService) SendPickupReminder(ctx context.Context, renterEmail, carName, startDate string) error {
	args := m.Called(ctx, renterEmail, carName, startDate)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, renterEmail, carName, endDate string) error {
	args := m.Called(ctx, renterEmail, carName, endDate)
	return args.Error(0)
}
