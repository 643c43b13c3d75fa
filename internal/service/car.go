package service

import (
	"context"
	"fmt"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/repository"
)

type carService struct {
	carRepo repository.CarRepository
}

func NewCarService(carRepo repository.CarRepository) CarService {
	return &carService{carRepo: carRepo}
}

func (s *carService) AddCar(ctx context.Context, car *domain.Car) error {
	if car.OwnerID == 0 {
		return fmt.Errorf("owner id is required")
	}
	if car.PricePerDayCents <= 0 {
		return fmt.Errorf("price per day must be positive, got %d", car.PricePerDayCents)
	}
	if car.Availability == "" {
		car.Availability = domain.CarAvailable
	}
	return s.carRepo.Create(ctx, car)
}

func (s *carService) GetCar(ctx context.Context, id int64) (*domain.Car, error) {
	return s.carRepo.GetByID(ctx, id)
}

// UpdateCar lets the owner edit listing details. A price change never
// retroactively alters an existing reservation's stored total.
func (s *carService) UpdateCar(ctx context.Context, ownerID int64, car *domain.Car) error {
	existing, err := s.carRepo.GetByID(ctx, car.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != ownerID {
		return fmt.Errorf("user %d is not the owner of car %d: %w", ownerID, car.ID, domain.ErrForbiddenTransition)
	}
	if car.PricePerDayCents <= 0 {
		return fmt.Errorf("price per day must be positive, got %d", car.PricePerDayCents)
	}
	car.OwnerID = existing.OwnerID
	return s.carRepo.Update(ctx, car)
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *carService) ListMyCars(ctx context.Context, ownerID int64) ([]domain.Car, error) {
	return s.carRepo.ListByOwner(ctx, ownerID)
}
