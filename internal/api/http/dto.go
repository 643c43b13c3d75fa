package http

import (
	"fmt"
	"time"

	"carrent-backend/internal/domain"
)

type createReservationRequest struct {
	CarID         int64    `json:"car_id"`
	RenterID      int64    `json:"renter_id"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	InsuranceTier string   `json:"insurance_tier"`
	Extras        []string `json:"extras"`
	PaymentMethod string   `json:"payment_method"`
}

type quoteRequest struct {
	CarID         int64    `json:"car_id"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	InsuranceTier string   `json:"insurance_tier"`
	Extras        []string `json:"extras"`
}

type decisionRequest struct {
	OwnerID int64  `json:"owner_id"`
	Outcome string `json:"outcome"` // "ACCEPT" or "REJECT"
}

type cancelRequest struct {
	ActorID int64 `json:"actor_id"`
}

// reservationResponse is the wire form of a reservation. Dates are plain
// yyyy-mm-dd strings; presentation_status is computed at read time.
type reservationResponse struct {
	ID                 int64    `json:"id"`
	CarID              int64    `json:"car_id"`
	RenterID           int64    `json:"renter_id"`
	OwnerID            int64    `json:"owner_id"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	Days               int      `json:"days"`
	InsuranceTier      string   `json:"insurance_tier"`
	Extras             []string `json:"extras"`
	TotalPriceCents    int64    `json:"total_price_cents"`
	Status             string   `json:"status"`
	PresentationStatus string   `json:"presentation_status"`
	PaymentMethod      string   `json:"payment_method,omitempty"`
	CreatedOn          string   `json:"created_on"`
}

func toReservationResponse(res *domain.Reservation, now time.Time) reservationResponse {
	extras := make([]string, len(res.Extras))
	for i, e := range res.Extras {
		extras[i] = string(e)
	}
	return reservationResponse{
		ID:                 res.ID,
		CarID:              res.CarID,
		RenterID:           res.RenterID,
		OwnerID:            res.OwnerID,
		StartDate:          res.Range.Start.String(),
		EndDate:            res.Range.End.String(),
		Days:               res.Range.DaysInclusive(),
		InsuranceTier:      string(res.InsuranceTier),
		Extras:             extras,
		TotalPriceCents:    res.TotalPriceCents,
		Status:             string(res.Status),
		PresentationStatus: string(res.PresentationStatusAt(domain.Today(now, nil))),
		PaymentMethod:      res.PaymentMethod,
		CreatedOn:          res.CreatedOn.Format(time.RFC3339),
	}
}

func parseRange(startDate, endDate string) (domain.DateRange, error) {
	start, err := domain.ParseDate(startDate)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("start_date: %w", err)
	}
	end, err := domain.ParseDate(endDate)
	if err != nil {
		return domain.DateRange{}, fmt.Errorf("end_date: %w", err)
	}
	return domain.NewDateRange(start, end)
}

func parseExtras(extras []string) []domain.ExtraKind {
	out := make([]domain.ExtraKind, len(extras))
	for i, e := range extras {
		out[i] = domain.ExtraKind(e)
	}
	return out
}
