package domain

import "time"

type CarAvailability string

const (
	CarAvailable   CarAvailability = "available"
	CarMaintenance CarAvailability = "maintenance"
)

type Car struct {
	ID      int64  `json:"id"`
	OwnerID int64  `json:"owner_id"`
	Name    string `json:"name"`
	Brand   string `json:"brand"`
	City    string `json:"city"`
	// PricePerDayCents may change between reservations; an existing
	// reservation keeps the total it was priced at.
	PricePerDayCents int64           `json:"price_per_day_cents"`
	Availability     CarAvailability `json:"availability"`
	Seats            int32           `json:"seats"`
	FuelType         string          `json:"fuel_type"`
	Gearbox          string          `json:"gearbox"`
	CreatedOn        time.Time       `json:"created_on"`
	UpdatedOn        time.Time       `json:"updated_on"`
}
