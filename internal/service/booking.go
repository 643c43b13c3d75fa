package service

import (
	"context"
	"fmt"
	"time"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/logger"
	"carrent-backend/internal/repository"
	"carrent-backend/internal/utils"
)

type bookingService struct {
	reservationRepo repository.ReservationRepository
	carRepo         repository.CarRepository
	userRepo        repository.UserRepository
	noteRepo        repository.NotificationRepository
	availability    AvailabilityService
	emailSvc        EmailService
	clock           Clock
	locks           *carLocks
}

func NewBookingService(
	reservationRepo repository.ReservationRepository,
	carRepo repository.CarRepository,
	userRepo repository.UserRepository,
	noteRepo repository.NotificationRepository,
	availability AvailabilityService,
	emailSvc EmailService,
	clock Clock,
) BookingService {
	if clock == nil {
		clock = SystemClock
	}
	return &bookingService{
		reservationRepo: reservationRepo,
		carRepo:         carRepo,
		userRepo:        userRepo,
		noteRepo:        noteRepo,
		availability:    availability,
		emailSvc:        emailSvc,
		clock:           clock,
		locks:           newCarLocks(),
	}
}

func (s *bookingService) CreateReservation(ctx context.Context, carID, renterID int64, rng domain.DateRange, tier domain.InsuranceTier, extras []domain.ExtraKind, paymentMethod string) (*domain.Reservation, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car.Availability == domain.CarMaintenance {
		return nil, fmt.Errorf("car %d: %w", carID, domain.ErrCarUnavailable)
	}
	if renterID == car.OwnerID {
		return nil, fmt.Errorf("user %d: %w", renterID, domain.ErrSelfBooking)
	}

	today := domain.Today(s.clock.Now(), nil)
	if rng.Start.Before(today) {
		return nil, fmt.Errorf("%w: start %s is in the past", domain.ErrInvalidRange, rng.Start)
	}

	normalized, err := utils.NormalizeExtras(extras)
	if err != nil {
		return nil, err
	}
	total, err := utils.CalculateReservationCost(rng.DaysInclusive(), tier, normalized, car.PricePerDayCents)
	if err != nil {
		return nil, err
	}

	// No availability check here: any number of pending requests may cover
	// the same dates. Only confirmation makes a range binding.
	res := &domain.Reservation{
		CarID:           carID,
		RenterID:        renterID,
		OwnerID:         car.OwnerID,
		Range:           rng,
		InsuranceTier:   tier,
		Extras:          normalized,
		TotalPriceCents: total,
		Status:          domain.ReservationStatusPending,
		PaymentMethod:   paymentMethod,
	}
	if err := s.reservationRepo.Create(ctx, res); err != nil {
		return nil, err
	}

	logger.Info("Reservation requested", "reservation_id", res.ID, "car_id", carID, "renter_id", renterID, "start", rng.Start.String(), "end", rng.End.String(), "total_cents", total)
	s.notifyRequest(ctx, res, car)
	return res, nil
}

func (s *bookingService) DecideReservation(ctx context.Context, reservationID, ownerID int64, outcome DecisionOutcome) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	car, err := s.carRepo.GetByID(ctx, res.CarID)
	if err != nil {
		return nil, err
	}
	if car.OwnerID != ownerID {
		return nil, fmt.Errorf("user %d is not the owner of car %d: %w", ownerID, car.ID, domain.ErrForbiddenTransition)
	}
	if res.Status != domain.ReservationStatusPending {
		return nil, fmt.Errorf("reservation %d is %s, not pending: %w", res.ID, res.Status, domain.ErrForbiddenTransition)
	}

	switch outcome {
	case DecisionAccept:
		return s.accept(ctx, res, car)
	case DecisionReject:
		return s.reject(ctx, res, car)
	default:
		return nil, fmt.Errorf("unknown decision %q: %w", outcome, domain.ErrForbiddenTransition)
	}
}

// accept holds the car's lock across the pending re-read, the conflict
// re-check, and the status write; this is the one place a check-then-act
// race is observable.
func (s *bookingService) accept(ctx context.Context, res *domain.Reservation, car *domain.Car) (*domain.Reservation, error) {
	lock := s.locks.get(car.ID)
	lock.Lock()
	defer lock.Unlock()

	// The pending pre-check ran on a snapshot read outside the lock; a
	// cancel may have committed since. Re-read before acting so a settled
	// cancellation is never overwritten.
	fresh, err := s.reservationRepo.GetByID(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	if fresh.Status != domain.ReservationStatusPending {
		return nil, fmt.Errorf("reservation %d is %s, not pending: %w", fresh.ID, fresh.Status, domain.ErrForbiddenTransition)
	}

	conflict, err := s.availability.HasConflict(ctx, car.ID, fresh.Range, fresh.ID)
	if err != nil {
		return nil, err
	}
	if conflict {
		// The reservation stays pending; the owner can reject it, or retry
		// after the conflicting reservation is cancelled.
		return nil, fmt.Errorf("reservation %d: %w", fresh.ID, domain.ErrConflict)
	}

	if !domain.CanTransition(fresh.Status, domain.ReservationStatusConfirmed) {
		return nil, fmt.Errorf("reservation %d: %w", fresh.ID, domain.ErrForbiddenTransition)
	}
	fresh.Status = domain.ReservationStatusConfirmed
	if err := s.reservationRepo.Update(ctx, fresh); err != nil {
		return nil, err
	}

	logger.Info("Reservation confirmed", "reservation_id", fresh.ID, "car_id", car.ID)
	s.notifyDecision(ctx, fresh, car, true)
	return fresh, nil
}

func (s *bookingService) reject(ctx context.Context, res *domain.Reservation, car *domain.Car) (*domain.Reservation, error) {
	lock := s.locks.get(car.ID)
	lock.Lock()
	defer lock.Unlock()

	fresh, err := s.reservationRepo.GetByID(ctx, res.ID)
	if err != nil {
		return nil, err
	}
	if fresh.Status != domain.ReservationStatusPending {
		return nil, fmt.Errorf("reservation %d is %s, not pending: %w", fresh.ID, fresh.Status, domain.ErrForbiddenTransition)
	}
	if !domain.CanTransition(fresh.Status, domain.ReservationStatusCancelled) {
		return nil, fmt.Errorf("reservation %d: %w", fresh.ID, domain.ErrForbiddenTransition)
	}
	fresh.Status = domain.ReservationStatusCancelled
	if err := s.reservationRepo.Update(ctx, fresh); err != nil {
		return nil, err
	}

	logger.Info("Reservation rejected", "reservation_id", fresh.ID, "car_id", car.ID)
	s.notifyDecision(ctx, fresh, car, false)
	return fresh, nil
}

func (s *bookingService) CancelReservation(ctx context.Context, reservationID, actorID int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if actorID != res.RenterID && actorID != res.OwnerID {
		return nil, fmt.Errorf("user %d is neither renter nor owner of reservation %d: %w", actorID, res.ID, domain.ErrForbiddenTransition)
	}

	// Same car lock as accept: a cancel and an accept racing on the same
	// reservation must serialize, or the loser overwrites a settled status.
	lock := s.locks.get(res.CarID)
	lock.Lock()
	defer lock.Unlock()

	fresh, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}

	switch fresh.PresentationStatusAt(domain.Today(s.clock.Now(), nil)) {
	case domain.PresentationCancelled:
		return nil, fmt.Errorf("reservation %d is already cancelled: %w", fresh.ID, domain.ErrForbiddenTransition)
	case domain.PresentationCompleted:
		return nil, fmt.Errorf("reservation %d is already completed: %w", fresh.ID, domain.ErrForbiddenTransition)
	}

	if !domain.CanTransition(fresh.Status, domain.ReservationStatusCancelled) {
		return nil, fmt.Errorf("reservation %d: %w", fresh.ID, domain.ErrForbiddenTransition)
	}
	fresh.Status = domain.ReservationStatusCancelled
	if err := s.reservationRepo.Update(ctx, fresh); err != nil {
		return nil, err
	}

	logger.Info("Reservation cancelled", "reservation_id", fresh.ID, "actor_id", actorID)
	s.notifyCancellation(ctx, fresh, actorID)
	return fresh, nil
}

func (s *bookingService) GetReservation(ctx context.Context, reservationID, userID int64) (*domain.Reservation, error) {
	res, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res.RenterID != userID && res.OwnerID != userID {
		return nil, fmt.Errorf("user %d cannot view reservation %d: %w", userID, res.ID, domain.ErrForbiddenTransition)
	}
	return res, nil
}

func (s *bookingService) ListReservationsByRenter(ctx context.Context, renterID int64) ([]domain.Reservation, error) {
	return s.reservationRepo.ListByRenter(ctx, renterID)
}

func (s *bookingService) ListReservationsByOwner(ctx context.Context, ownerID int64) ([]domain.Reservation, error) {
	return s.reservationRepo.ListByOwner(ctx, ownerID)
}

func (s *bookingService) Quote(ctx context.Context, carID int64, rng domain.DateRange, tier domain.InsuranceTier, extras []domain.ExtraKind) (utils.ReservationCostBreakdown, error) {
	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return utils.ReservationCostBreakdown{}, err
	}
	return utils.CalculateReservationCostWithBreakdown(rng.DaysInclusive(), tier, extras, car.PricePerDayCents)
}

func (s *bookingService) PresentationStatus(res *domain.Reservation, now time.Time) domain.PresentationStatus {
	return res.PresentationStatusAt(domain.Today(now, nil))
}

// Notification side effects are best effort; a failed email or note never
// fails the booking operation.

func (s *bookingService) notifyRequest(ctx context.Context, res *domain.Reservation, car *domain.Car) {
	owner, err := s.userRepo.GetByID(ctx, car.OwnerID)
	if err != nil {
		logger.Warn("Skipping request notification", "error", err)
		return
	}
	renter, err := s.userRepo.GetByID(ctx, res.RenterID)
	if err != nil {
		logger.Warn("Skipping request notification", "error", err)
		return
	}

	if err := s.emailSvc.SendReservationRequestNotification(ctx, owner.Email, renter.Name, car.Name); err != nil {
		logger.Warn("Failed to email owner about new request", "error", err, "reservation_id", res.ID)
	}
	note := &domain.Notification{
		UserID:  owner.ID,
		Title:   "New Booking Request",
		Message: fmt.Sprintf("%s requested to rent %s from %s to %s", renter.Name, car.Name, res.Range.Start, res.Range.End),
		Attributes: map[string]string{
			"type":           "RESERVATION_REQUEST",
			"reservation_id": fmt.Sprintf("%d", res.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to store request notification", "error", err, "reservation_id", res.ID)
	}
}

func (s *bookingService) notifyDecision(ctx context.Context, res *domain.Reservation, car *domain.Car, accepted bool) {
	renter, err := s.userRepo.GetByID(ctx, res.RenterID)
	if err != nil {
		logger.Warn("Skipping decision notification", "error", err)
		return
	}
	owner, err := s.userRepo.GetByID(ctx, car.OwnerID)
	if err != nil {
		logger.Warn("Skipping decision notification", "error", err)
		return
	}

	var title, message string
	if accepted {
		title = "Booking Confirmed"
		message = fmt.Sprintf("Your booking of %s was confirmed by %s", car.Name, owner.Name)
		if err := s.emailSvc.SendReservationApprovalNotification(ctx, renter.Email, car.Name, owner.Name); err != nil {
			logger.Warn("Failed to email renter about approval", "error", err, "reservation_id", res.ID)
		}
	} else {
		title = "Booking Rejected"
		message = fmt.Sprintf("Your booking of %s was rejected by %s", car.Name, owner.Name)
		if err := s.emailSvc.SendReservationRejectionNotification(ctx, renter.Email, car.Name, owner.Name); err != nil {
			logger.Warn("Failed to email renter about rejection", "error", err, "reservation_id", res.ID)
		}
	}
	note := &domain.Notification{
		UserID:  renter.ID,
		Title:   title,
		Message: message,
		Attributes: map[string]string{
			"type":           "RESERVATION_DECISION",
			"reservation_id": fmt.Sprintf("%d", res.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to store decision notification", "error", err, "reservation_id", res.ID)
	}
}

func (s *bookingService) notifyCancellation(ctx context.Context, res *domain.Reservation, actorID int64) {
	// Notify the counterparty, not the actor.
	recipientID := res.OwnerID
	if actorID == res.OwnerID {
		recipientID = res.RenterID
	}
	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		logger.Warn("Skipping cancellation notification", "error", err)
		return
	}
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		logger.Warn("Skipping cancellation notification", "error", err)
		return
	}
	car, err := s.carRepo.GetByID(ctx, res.CarID)
	if err != nil {
		logger.Warn("Skipping cancellation notification", "error", err)
		return
	}

	if err := s.emailSvc.SendReservationCancellationNotification(ctx, recipient.Email, actor.Name, car.Name); err != nil {
		logger.Warn("Failed to email cancellation", "error", err, "reservation_id", res.ID)
	}
	note := &domain.Notification{
		UserID:  recipient.ID,
		Title:   "Booking Cancelled",
		Message: fmt.Sprintf("%s cancelled the booking of %s for %s to %s", actor.Name, car.Name, res.Range.Start, res.Range.End),
		Attributes: map[string]string{
			"type":           "RESERVATION_CANCELLED",
			"reservation_id": fmt.Sprintf("%d", res.ID),
		},
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		logger.Warn("Failed to store cancellation notification", "error", err, "reservation_id", res.ID)
	}
}
