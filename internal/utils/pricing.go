package utils

import (
	"fmt"

	"carrent-backend/internal/domain"
)

// Flat per-booking rates in cents. Insurance and extras are charged once per
// reservation, not per day.
var insuranceCostCents = map[domain.InsuranceTier]int64{
	domain.InsuranceBasic:   5000,
	domain.InsurancePremium: 10000,
	domain.InsuranceFull:    20000,
}

var extraCostCents = map[domain.ExtraKind]int64{
	domain.ExtraGPS:       2500,
	domain.ExtraWiFi:      4000,
	domain.ExtraChildSeat: 3000,
	domain.ExtraDelivery:  15000,
}

// ReservationCostBreakdown itemizes a reservation total.
type ReservationCostBreakdown struct {
	Days               int
	DailyCostCents     int64
	InsuranceCostCents int64
	ExtrasCostCents    int64
	TotalCents         int64
}

// InsuranceCost returns the flat fee for a tier.
func InsuranceCost(tier domain.InsuranceTier) (int64, error) {
	cost, ok := insuranceCostCents[tier]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
	}
	return cost, nil
}

// ExtraCost returns the flat fee for a single extra.
func ExtraCost(extra domain.ExtraKind) (int64, error) {
	cost, ok := extraCostCents[extra]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownExtra, extra)
	}
	return cost, nil
}

// NormalizeExtras collapses duplicates and validates every entry, preserving
// first-seen order. Reordering the input never changes the priced total.
func NormalizeExtras(extras []domain.ExtraKind) ([]domain.ExtraKind, error) {
	seen := make(map[domain.ExtraKind]bool, len(extras))
	out := make([]domain.ExtraKind, 0, len(extras))
	for _, e := range extras {
		if _, err := ExtraCost(e); err != nil {
			return nil, err
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out, nil
}

// CalculateReservationCost computes
// days*pricePerDay + insurance(tier) + sum(extras). Pure and deterministic;
// unknown tiers or extras fail rather than pricing as zero.
func CalculateReservationCost(days int, tier domain.InsuranceTier, extras []domain.ExtraKind, pricePerDayCents int64) (int64, error) {
	breakdown, err := CalculateReservationCostWithBreakdown(days, tier, extras, pricePerDayCents)
	if err != nil {
		return 0, err
	}
	return breakdown.TotalCents, nil
}

// CalculateReservationCostWithBreakdown is the itemized form used by the
// booking summary endpoint.
func CalculateReservationCostWithBreakdown(days int, tier domain.InsuranceTier, extras []domain.ExtraKind, pricePerDayCents int64) (ReservationCostBreakdown, error) {
	if days <= 0 {
		return ReservationCostBreakdown{}, fmt.Errorf("%w: duration must be at least 1 day", domain.ErrInvalidRange)
	}
	if pricePerDayCents <= 0 {
		return ReservationCostBreakdown{}, fmt.Errorf("price per day must be positive, got %d", pricePerDayCents)
	}

	insurance, err := InsuranceCost(tier)
	if err != nil {
		return ReservationCostBreakdown{}, err
	}

	normalized, err := NormalizeExtras(extras)
	if err != nil {
		return ReservationCostBreakdown{}, err
	}
	var extrasTotal int64
	for _, e := range normalized {
		extrasTotal += extraCostCents[e]
	}

	daily := int64(days) * pricePerDayCents
	return ReservationCostBreakdown{
		Days:               days,
		DailyCostCents:     daily,
		InsuranceCostCents: insurance,
		ExtrasCostCents:    extrasTotal,
		TotalCents:         daily + insurance + extrasTotal,
	}, nil
}
