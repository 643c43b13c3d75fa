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

func testRange(t *testing.T, start, end string) domain.DateRange {
	t.Helper()
	s, err := domain.ParseDate(start)
	if err != nil {
		t.Fatalf("parsing %q: %v", start, err)
	}
	e, err := domain.ParseDate(end)
	if err != nil {
		t.Fatalf("parsing %q: %v", end, err)
	}
	r, err := domain.NewDateRange(s, e)
	if err != nil {
		t.Fatalf("range %s..%s: %v", start, end, err)
	}
	return r
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "car_id", "renter_id", "owner_id", "start_date", "end_date", "insurance_tier", "extras", "total_price_cents", "status", "payment_method", "created_on", "updated_on"})
}

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		res := &domain.Reservation{
			CarID:           7,
			RenterID:        2,
			OwnerID:         10,
			Range:           testRange(t, "2026-09-10", "2026-09-12"),
			InsuranceTier:   domain.InsuranceBasic,
			Extras:          []domain.ExtraKind{domain.ExtraGPS},
			TotalPriceCents: 35000,
			Status:          domain.ReservationStatusPending,
			PaymentMethod:   "card",
		}

		mock.ExpectQuery("INSERT INTO reservations").
			WithArgs(res.CarID, res.RenterID, res.OwnerID, "2026-09-10", "2026-09-12", res.InsuranceTier, sqlmock.AnyArg(), res.TotalPriceCents, res.Status, res.PaymentMethod, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(55))

		err := repo.Create(ctx, res)
		assert.NoError(t, err)
		assert.Equal(t, int64(55), res.ID)
		assert.False(t, res.CreatedOn.IsZero())
	})
}

func TestReservationRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := reservationRows().
			AddRow(55, 7, 2, 10, "2026-09-10", "2026-09-12", "basic", "{gps,wifi}", 41500, "CONFIRMED", "card", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id = \\$1").
			WithArgs(int64(55)).
			WillReturnRows(rows)

		res, err := repo.GetByID(ctx, 55)
		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, int64(55), res.ID)
		assert.Equal(t, domain.ReservationStatusConfirmed, res.Status)
		assert.Equal(t, testRange(t, "2026-09-10", "2026-09-12"), res.Range)
		assert.Equal(t, []domain.ExtraKind{domain.ExtraGPS, domain.ExtraWiFi}, res.Extras)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id = \\$1").
			WithArgs(int64(404)).
			WillReturnRows(reservationRows())

		res, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, res)
	})
}

func TestReservationRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		res := &domain.Reservation{ID: 55, Status: domain.ReservationStatusConfirmed}

		mock.ExpectExec("UPDATE reservations SET status").
			WithArgs(res.Status, sqlmock.AnyArg(), res.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, res))
	})

	t.Run("NotFound", func(t *testing.T) {
		res := &domain.Reservation{ID: 404, Status: domain.ReservationStatusCancelled}

		mock.ExpectExec("UPDATE reservations SET status").
			WithArgs(res.Status, sqlmock.AnyArg(), res.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(ctx, res), domain.ErrNotFound)
	})
}

func TestReservationRepository_ListByCar(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := reservationRows().
			AddRow(1, 7, 2, 10, "2026-09-10", "2026-09-12", "basic", "{}", 35000, "CONFIRMED", "", time.Now(), time.Now()).
			AddRow(2, 7, 3, 10, "2026-09-20", "2026-09-22", "premium", "{delivery}", 50000, "PENDING", "", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE car_id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		reservations, err := repo.ListByCar(ctx, 7)
		assert.NoError(t, err)
		assert.Len(t, reservations, 2)
		assert.Equal(t, domain.ReservationStatusConfirmed, reservations[0].Status)
		assert.Empty(t, reservations[0].Extras)
		assert.Equal(t, []domain.ExtraKind{domain.ExtraDelivery}, reservations[1].Extras)
	})

	t.Run("Empty", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE car_id = \\$1").
			WithArgs(int64(8)).
			WillReturnRows(reservationRows())

		reservations, err := repo.ListByCar(ctx, 8)
		assert.NoError(t, err)
		assert.Empty(t, reservations)
	})
}

func TestReservationRepository_ListByRenter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewReservationRepository(db)
	ctx := context.Background()

	rows := reservationRows().
		AddRow(1, 7, 2, 10, "2026-09-10", "2026-09-12", "basic", "{}", 35000, "CANCELLED", "", time.Now(), time.Now())

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE renter_id = \\$1").
		WithArgs(int64(2)).
		WillReturnRows(rows)

	reservations, err := repo.ListByRenter(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, reservations, 1)
	assert.Equal(t, int64(2), reservations[0].RenterID)
}
