package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/repository"

	"github.com/lib/pq"
)

type reservationRepository struct {
	db *sql.DB
}

func NewReservationRepository(db *sql.DB) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

// Date columns are cast to text on the way out so only plain yyyy-mm-dd
// strings reach Go; no instant or zone is ever attached.
const reservationColumns = `id, car_id, renter_id, owner_id, start_date::text, end_date::text, insurance_tier, extras, total_price_cents, status, payment_method, created_on, updated_on`

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (car_id, renter_id, owner_id, start_date, end_date, insurance_tier, extras, total_price_cents, status, payment_method, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id`
	now := time.Now()
	res.CreatedOn = now
	res.UpdatedOn = now
	return r.db.QueryRowContext(ctx, query,
		res.CarID, res.RenterID, res.OwnerID,
		res.Range.Start.String(), res.Range.End.String(),
		res.InsuranceTier, pq.Array(extrasToStrings(res.Extras)),
		res.TotalPriceCents, res.Status, res.PaymentMethod, now, now,
	).Scan(&res.ID)
}

func (r *reservationRepository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`
	res, err := scanReservation(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reservation %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *reservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	query := `UPDATE reservations SET status = $1, updated_on = $2 WHERE id = $3`
	res.UpdatedOn = time.Now()
	result, err := r.db.ExecContext(ctx, query, res.Status, res.UpdatedOn, res.ID)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("reservation %d: %w", res.ID, domain.ErrNotFound)
	}
	return nil
}

func (r *reservationRepository) ListByCar(ctx context.Context, carID int64) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE car_id = $1 ORDER BY start_date`
	return r.list(ctx, query, carID)
}

func (r *reservationRepository) ListByRenter(ctx context.Context, renterID int64) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE renter_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, renterID)
}

func (r *reservationRepository) ListByOwner(ctx context.Context, ownerID int64) ([]domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE owner_id = $1 ORDER BY created_on DESC`
	return r.list(ctx, query, ownerID)
}

func (r *reservationRepository) list(ctx context.Context, query string, arg int64) ([]domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reservations []domain.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *res)
	}
	return reservations, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	var startStr, endStr string
	var extras []string
	err := row.Scan(
		&res.ID, &res.CarID, &res.RenterID, &res.OwnerID,
		&startStr, &endStr, &res.InsuranceTier, pq.Array(&extras),
		&res.TotalPriceCents, &res.Status, &res.PaymentMethod,
		&res.CreatedOn, &res.UpdatedOn,
	)
	if err != nil {
		return nil, err
	}

	start, err := domain.ParseDate(startStr)
	if err != nil {
		return nil, fmt.Errorf("stored start_date %q: %w", startStr, err)
	}
	end, err := domain.ParseDate(endStr)
	if err != nil {
		return nil, fmt.Errorf("stored end_date %q: %w", endStr, err)
	}
	res.Range, err = domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}
	res.Extras = stringsToExtras(extras)
	return res, nil
}

func extrasToStrings(extras []domain.ExtraKind) []string {
	out := make([]string, len(extras))
	for i, e := range extras {
		out[i] = string(e)
	}
	return out
}

func stringsToExtras(extras []string) []domain.ExtraKind {
	out := make([]domain.ExtraKind, len(extras))
	for i, e := range extras {
		out[i] = domain.ExtraKind(e)
	}
	return out
}
