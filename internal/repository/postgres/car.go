package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

const carColumns = `id, owner_id, name, brand, city, price_per_day_cents, availability, seats, fuel_type, gearbox, created_on, updated_on`

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	query := `INSERT INTO cars (owner_id, name, brand, city, price_per_day_cents, availability, seats, fuel_type, gearbox, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	car.CreatedOn = now
	car.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		car.OwnerID, car.Name, car.Brand, car.City, car.PricePerDayCents,
		car.Availability, car.Seats, car.FuelType, car.Gearbox, now, now,
	).Scan(&car.ID)
}

func (r *carRepository) GetByID(ctx context.Context, id int64) (*domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE id = $1`
	car := &domain.Car{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&car.ID, &car.OwnerID, &car.Name, &car.Brand, &car.City,
		&car.PricePerDayCents, &car.Availability, &car.Seats,
		&car.FuelType, &car.Gearbox, &car.CreatedOn, &car.UpdatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("car %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	query := `UPDATE cars SET name = $1, brand = $2, city = $3, price_per_day_cents = $4, availability = $5, seats = $6, fuel_type = $7, gearbox = $8, updated_on = $9 WHERE id = $10`
	car.UpdatedOn = time.Now()
	result, err := r.db.ExecContext(ctx, query,
		car.Name, car.Brand, car.City, car.PricePerDayCents, car.Availability,
		car.Seats, car.FuelType, car.Gearbox, car.UpdatedOn, car.ID,
	)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("car %d: %w", car.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars ORDER BY created_on DESC`
	return r.list(ctx, query)
}

func (r *carRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Car, error) {
	query := `SELECT ` + carColumns + ` FROM cars WHERE owner_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, ownerID)
}

func (r *carRepository) list(ctx context.Context, query string, args ...any) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var car domain.Car
		if err := rows.Scan(
			&car.ID, &car.OwnerID, &car.Name, &car.Brand, &car.City,
			&car.PricePerDayCents, &car.Availability, &car.Seats,
			&car.FuelType, &car.Gearbox, &car.CreatedOn, &car.UpdatedOn,
		); err != nil {
			return nil, err
		}
		cars = append(cars, car)
	}
	return cars, rows.Err()
}
