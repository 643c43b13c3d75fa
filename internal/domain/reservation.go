package domain

import "time"

// ReservationStatus is the persisted status. There is no persisted COMPLETED
// or ACTIVE: those are presentation-only and derived from the clock.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// PresentationStatus is what screens show. Never stored.
type PresentationStatus string

const (
	PresentationPending   PresentationStatus = "PENDING"
	PresentationUpcoming  PresentationStatus = "UPCOMING"
	PresentationActive    PresentationStatus = "ACTIVE"
	PresentationCompleted PresentationStatus = "COMPLETED"
	PresentationCancelled PresentationStatus = "CANCELLED"
)

type InsuranceTier string

const (
	InsuranceBasic   InsuranceTier = "basic"
	InsurancePremium InsuranceTier = "premium"
	InsuranceFull    InsuranceTier = "full"
)

type ExtraKind string

const (
	ExtraGPS       ExtraKind = "gps"
	ExtraWiFi      ExtraKind = "wifi"
	ExtraChildSeat ExtraKind = "childSeat"
	ExtraDelivery  ExtraKind = "delivery"
)

type Reservation struct {
	ID       int64 `json:"id"`
	CarID    int64 `json:"car_id"`
	RenterID int64 `json:"renter_id"`
	// OwnerID is a snapshot of the car's owner at creation time.
	OwnerID       int64             `json:"owner_id"`
	Range         DateRange         `json:"range"`
	InsuranceTier InsuranceTier     `json:"insurance_tier"`
	Extras        []ExtraKind       `json:"extras"`
	// TotalPriceCents is fixed at creation; later car price changes never
	// alter it.
	TotalPriceCents int64             `json:"total_price_cents"`
	Status          ReservationStatus `json:"status"`
	// PaymentMethod is recorded as metadata only, never charged.
	PaymentMethod string    `json:"payment_method,omitempty"`
	CreatedOn     time.Time `json:"created_on"`
	UpdatedOn     time.Time `json:"updated_on"`
}

// validNext is the closed transition table over persisted statuses.
// Guards (actor checks, conflict re-check, completed-by-clock) are enforced
// by the booking service on top of this.
var validNext = map[ReservationStatus]map[ReservationStatus]bool{
	ReservationStatusPending:   {ReservationStatusConfirmed: true, ReservationStatusCancelled: true},
	ReservationStatusConfirmed: {ReservationStatusCancelled: true},
	ReservationStatusCancelled: {},
}

// CanTransition reports whether the persisted-status change is defined.
func CanTransition(from, to ReservationStatus) bool {
	return validNext[from][to]
}

// PresentationStatusAt derives the display status from the persisted status,
// the reservation's date range, and the calendar date of "now". Pure: calling
// it never mutates the reservation, and no background sweep is needed for a
// confirmed reservation to read as COMPLETED once its end date has passed.
func (r *Reservation) PresentationStatusAt(today CalendarDate) PresentationStatus {
	switch r.Status {
	case ReservationStatusPending:
		return PresentationPending
	case ReservationStatusCancelled:
		return PresentationCancelled
	case ReservationStatusConfirmed:
		if today.Before(r.Range.Start) {
			return PresentationUpcoming
		}
		if today.After(r.Range.End) {
			return PresentationCompleted
		}
		return PresentationActive
	default:
		return PresentationPending
	}
}

// Today resolves an instant to its calendar date in the given location. This
// is the single place an instant is turned into a date; everything past this
// boundary works in calendar dates only.
func Today(now time.Time, loc *time.Location) CalendarDate {
	if loc != nil {
		now = now.In(loc)
	}
	y, m, d := now.Date()
	return CalendarDate{Year: y, Month: int(m), Day: d}
}
