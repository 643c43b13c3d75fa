package repository

import (
	"context"

	"carrent-backend/internal/domain"
)

// CarRepository is the car registry the booking engine reads.
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
	Update(ctx context.Context, car *domain.Car) error
	List(ctx context.Context) ([]domain.Car, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Car, error)
}

// ReservationRepository is the reservation store. Reservations are never
// deleted; cancellation is a status update.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	ListByCar(ctx context.Context, carID int64) ([]domain.Reservation, error)
	ListByRenter(ctx context.Context, renterID int64) ([]domain.Reservation, error)
	// ListByOwner returns reservations on any car owned by the given user.
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Reservation, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int64, limit, offset int64) ([]domain.Notification, int64, error)
	MarkAsRead(ctx context.Context, id, userID int64) error
}
