package service

import (
	"context"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/repository"
)

type availabilityService struct {
	reservationRepo repository.ReservationRepository
}

func NewAvailabilityService(reservationRepo repository.ReservationRepository) AvailabilityService {
	return &availabilityService{reservationRepo: reservationRepo}
}

// confirmed filters a car's reservations down to the ones that actually
// occupy the calendar. Pending requests never block; historical confirmed
// reservations stay included, which is harmless for future bookings and
// keeps a single source of truth.
func (s *availabilityService) confirmed(ctx context.Context, carID int64) ([]domain.Reservation, error) {
	all, err := s.reservationRepo.ListByCar(ctx, carID)
	if err != nil {
		return nil, err
	}
	out := all[:0]
	for _, res := range all {
		if res.Status == domain.ReservationStatusConfirmed {
			out = append(out, res)
		}
	}
	return out, nil
}

func (s *availabilityService) BlockedDates(ctx context.Context, carID int64) ([]domain.CalendarDate, error) {
	reservations, err := s.confirmed(ctx, carID)
	if err != nil {
		return nil, err
	}

	seen := make(map[domain.CalendarDate]bool)
	var blocked []domain.CalendarDate
	for _, res := range reservations {
		for _, d := range res.Range.Dates() {
			if seen[d] {
				continue
			}
			seen[d] = true
			blocked = append(blocked, d)
		}
	}
	return blocked, nil
}

func (s *availabilityService) HasConflict(ctx context.Context, carID int64, candidate domain.DateRange, excludeReservationID int64) (bool, error) {
	reservations, err := s.confirmed(ctx, carID)
	if err != nil {
		return false, err
	}
	for _, res := range reservations {
		if res.ID == excludeReservationID {
			continue
		}
		if res.Range.Overlaps(candidate) {
			return true, nil
		}
	}
	return false, nil
}
