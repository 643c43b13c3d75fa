package service_test

import (
	"context"
	"testing"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCarService_AddCar(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		carRepo.On("Create", ctx, mock.AnythingOfType("*domain.Car")).Return(nil)
		svc := service.NewCarService(carRepo)

		car := &domain.Car{OwnerID: 10, Name: "Corolla", PricePerDayCents: 10000}
		assert.NoError(t, svc.AddCar(ctx, car))
		assert.Equal(t, domain.CarAvailable, car.Availability)
	})

	t.Run("MissingOwner", func(t *testing.T) {
		svc := service.NewCarService(new(MockCarRepo))
		err := svc.AddCar(ctx, &domain.Car{Name: "Corolla", PricePerDayCents: 10000})
		assert.Error(t, err)
	})

	t.Run("NonPositivePrice", func(t *testing.T) {
		svc := service.NewCarService(new(MockCarRepo))
		err := svc.AddCar(ctx, &domain.Car{OwnerID: 10, Name: "Corolla"})
		assert.Error(t, err)
	})
}

func TestCarService_UpdateCar(t *testing.T) {
	ctx := context.Background()
	existing := &domain.Car{ID: 7, OwnerID: 10, Name: "Corolla", PricePerDayCents: 10000}

	t.Run("OwnerUpdates", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		carRepo.On("GetByID", ctx, int64(7)).Return(existing, nil)
		carRepo.On("Update", ctx, mock.AnythingOfType("*domain.Car")).Return(nil)
		svc := service.NewCarService(carRepo)

		updated := &domain.Car{ID: 7, Name: "Corolla Hybrid", PricePerDayCents: 12000, Availability: domain.CarMaintenance}
		assert.NoError(t, svc.UpdateCar(ctx, 10, updated))
		// Ownership cannot be reassigned through an update.
		assert.Equal(t, int64(10), updated.OwnerID)
	})

	t.Run("NotTheOwner", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		carRepo.On("GetByID", ctx, int64(7)).Return(existing, nil)
		svc := service.NewCarService(carRepo)

		err := svc.UpdateCar(ctx, 99, &domain.Car{ID: 7, PricePerDayCents: 12000})
		assert.ErrorIs(t, err, domain.ErrForbiddenTransition)
		carRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		carRepo := new(MockCarRepo)
		carRepo.On("GetByID", ctx, int64(404)).Return(nil, domain.ErrNotFound)
		svc := service.NewCarService(carRepo)

		err := svc.UpdateCar(ctx, 10, &domain.Car{ID: 404, PricePerDayCents: 12000})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
