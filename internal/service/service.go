package service

import (
	"context"
	"time"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/utils"
)

// DecisionOutcome is the owner's verdict on a pending reservation.
type DecisionOutcome string

const (
	DecisionAccept DecisionOutcome = "ACCEPT"
	DecisionReject DecisionOutcome = "REJECT"
)

// Clock supplies the current instant; tests substitute a fixed one.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// SystemClock is the default wall clock.
var SystemClock Clock = realClock{}

type BookingService interface {
	// CreateReservation stores a new PENDING reservation. Overlapping
	// pending requests are allowed; conflicts are resolved at confirmation.
	CreateReservation(ctx context.Context, carID, renterID int64, rng domain.DateRange, tier domain.InsuranceTier, extras []domain.ExtraKind, paymentMethod string) (*domain.Reservation, error)
	// DecideReservation applies the owner's accept or reject. Accept
	// re-checks availability atomically with the transition.
	DecideReservation(ctx context.Context, reservationID, ownerID int64, outcome DecisionOutcome) (*domain.Reservation, error)
	CancelReservation(ctx context.Context, reservationID, actorID int64) (*domain.Reservation, error)
	GetReservation(ctx context.Context, reservationID, userID int64) (*domain.Reservation, error)
	ListReservationsByRenter(ctx context.Context, renterID int64) ([]domain.Reservation, error)
	ListReservationsByOwner(ctx context.Context, ownerID int64) ([]domain.Reservation, error)
	// Quote prices a prospective reservation without storing anything.
	Quote(ctx context.Context, carID int64, rng domain.DateRange, tier domain.InsuranceTier, extras []domain.ExtraKind) (utils.ReservationCostBreakdown, error)
	// PresentationStatus derives the display status for "now"; it never
	// mutates the reservation.
	PresentationStatus(res *domain.Reservation, now time.Time) domain.PresentationStatus
}

type AvailabilityService interface {
	BlockedDates(ctx context.Context, carID int64) ([]domain.CalendarDate, error)
	// HasConflict is the single authoritative overlap check. Pass
	// excludeReservationID > 0 to re-check a reservation against the rest.
	HasConflict(ctx context.Context, carID int64, candidate domain.DateRange, excludeReservationID int64) (bool, error)
}

type CarService interface {
	AddCar(ctx context.Context, car *domain.Car) error
	GetCar(ctx context.Context, id int64) (*domain.Car, error)
	UpdateCar(ctx context.Context, ownerID int64, car *domain.Car) error
	ListCars(ctx context.Context) ([]domain.Car, error)
	ListMyCars(ctx context.Context, ownerID int64) ([]domain.Car, error)
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int64, limit, offset int64) ([]domain.Notification, int64, error)
	MarkAsRead(ctx context.Context, userID, notificationID int64) error
}

type EmailService interface {
	SendReservationRequestNotification(ctx context.Context, ownerEmail, renterName, carName string) error
	SendReservationApprovalNotification(ctx context.Context, renterEmail, carName, ownerName string) error
	SendReservationRejectionNotification(ctx context.Context, renterEmail, carName, ownerName string) error
	SendReservationCancellationNotification(ctx context.Context, email, actorName, carName string) error
	SendPickupReminder(ctx context.Context, renterEmail, carName, startDate string) error
	SendReturnReminder(ctx context.Context, renterEmail, carName, endDate string) error
}
