package postgres_test

import (
	"context"
	"testing"
	"time"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/repository/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func carRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "owner_id", "name", "brand", "city", "price_per_day_cents", "availability", "seats", "fuel_type", "gearbox", "created_on", "updated_on"})
}

func TestCarRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	car := &domain.Car{
		OwnerID:          10,
		Name:             "Corolla",
		Brand:            "Toyota",
		City:             "Lisbon",
		PricePerDayCents: 10000,
		Availability:     domain.CarAvailable,
		Seats:            5,
		FuelType:         "petrol",
		Gearbox:          "manual",
	}

	mock.ExpectQuery("INSERT INTO cars").
		WithArgs(car.OwnerID, car.Name, car.Brand, car.City, car.PricePerDayCents, car.Availability, car.Seats, car.FuelType, car.Gearbox, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

	err = repo.Create(ctx, car)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), car.ID)
}

func TestCarRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := carRows().
			AddRow(7, 10, "Corolla", "Toyota", "Lisbon", 10000, "available", 5, "petrol", "manual", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		car, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.NotNil(t, car)
		assert.Equal(t, int64(7), car.ID)
		assert.Equal(t, domain.CarAvailable, car.Availability)
		assert.Equal(t, int64(10000), car.PricePerDayCents)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM cars WHERE id = \\$1").
			WithArgs(int64(404)).
			WillReturnRows(carRows())

		car, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, car)
	})
}

func TestCarRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	car := &domain.Car{
		ID:               7,
		OwnerID:          10,
		Name:             "Corolla",
		Brand:            "Toyota",
		City:             "Porto",
		PricePerDayCents: 12000,
		Availability:     domain.CarMaintenance,
		Seats:            5,
		FuelType:         "petrol",
		Gearbox:          "manual",
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE cars SET").
			WithArgs(car.Name, car.Brand, car.City, car.PricePerDayCents, car.Availability, car.Seats, car.FuelType, car.Gearbox, sqlmock.AnyArg(), car.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, car))
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE cars SET").
			WithArgs(car.Name, car.Brand, car.City, car.PricePerDayCents, car.Availability, car.Seats, car.FuelType, car.Gearbox, sqlmock.AnyArg(), car.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, car), domain.ErrNotFound)
	})
}

func TestCarRepository_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewCarRepository(db)
	ctx := context.Background()

	rows := carRows().
		AddRow(7, 10, "Corolla", "Toyota", "Lisbon", 10000, "available", 5, "petrol", "manual", time.Now(), time.Now()).
		AddRow(8, 10, "Model 3", "Tesla", "Lisbon", 18000, "maintenance", 5, "electric", "automatic", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM cars WHERE owner_id = \\$1").
		WithArgs(int64(10)).
		WillReturnRows(rows)

	cars, err := repo.ListByOwner(ctx, 10)
	assert.NoError(t, err)
	assert.Len(t, cars, 2)
	assert.Equal(t, domain.CarMaintenance, cars[1].Availability)
}
