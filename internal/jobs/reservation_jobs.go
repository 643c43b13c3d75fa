package jobs

import (
	"context"
	"time"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/logger"
)

// reminderRow joins the reservation with the renter and car details needed
// for the email.
type reminderRow struct {
	ReservationID int64
	RenterEmail   string
	CarName       string
	Date          string
}

// SendPickupReminders emails renters whose confirmed rental starts tomorrow.
// Read-only: presentation status stays derived from the clock, so there is
// nothing to sweep or update here.
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() {
		tomorrow := domain.Today(time.Now(), nil).Next()
		query := `
			SELECT r.id, u.email, c.name, r.start_date::text
			FROM reservations r
			JOIN users u ON u.id = r.renter_id
			JOIN cars c ON c.id = r.car_id
			WHERE r.status = 'CONFIRMED'
			  AND r.start_date = $1
		`
		jr.sendReminders(query, tomorrow.String(), func(ctx context.Context, row reminderRow) error {
			return jr.emailSvc.SendPickupReminder(ctx, row.RenterEmail, row.CarName, row.Date)
		})
	})
}

// SendReturnReminders emails renters whose confirmed rental ends today.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		today := domain.Today(time.Now(), nil)
		query := `
			SELECT r.id, u.email, c.name, r.end_date::text
			FROM reservations r
			JOIN users u ON u.id = r.renter_id
			JOIN cars c ON c.id = r.car_id
			WHERE r.status = 'CONFIRMED'
			  AND r.end_date = $1
		`
		jr.sendReminders(query, today.String(), func(ctx context.Context, row reminderRow) error {
			return jr.emailSvc.SendReturnReminder(ctx, row.RenterEmail, row.CarName, row.Date)
		})
	})
}

func (jr *JobRunner) sendReminders(query, date string, send func(context.Context, reminderRow) error) {
	ctx := context.Background()

	rows, err := jr.db.QueryContext(ctx, query, date)
	if err != nil {
		logger.Error("Failed to query reminder reservations", "error", err)
		return
	}
	defer rows.Close()

	count := 0
	for rows.Next() {
		var row reminderRow
		if err := rows.Scan(&row.ReservationID, &row.RenterEmail, &row.CarName, &row.Date); err != nil {
			logger.Error("Failed to scan reminder row", "error", err)
			continue
		}
		if err := send(ctx, row); err != nil {
			logger.Error("Failed to send reminder", "error", err, "reservation_id", row.ReservationID)
			continue
		}
		count++
	}
	if err := rows.Err(); err != nil {
		logger.Error("Error iterating reminder reservations", "error", err)
		return
	}
	logger.Info("Reminders sent", "date", date, "count", count)
}
