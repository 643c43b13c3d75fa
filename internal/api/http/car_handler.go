package http

import (
	"encoding/json"
	"net/http"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/service"
)

type CarHandler struct {
	carSvc service.CarService
}

func NewCarHandler(carSvc service.CarService) *CarHandler {
	return &CarHandler{carSvc: carSvc}
}

type carRequest struct {
	OwnerID          int64  `json:"owner_id"`
	Name             string `json:"name"`
	Brand            string `json:"brand"`
	City             string `json:"city"`
	PricePerDayCents int64  `json:"price_per_day_cents"`
	Availability     string `json:"availability"`
	Seats            int32  `json:"seats"`
	FuelType         string `json:"fuel_type"`
	Gearbox          string `json:"gearbox"`
}

func (h *CarHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req carRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	car := &domain.Car{
		OwnerID:          req.OwnerID,
		Name:             req.Name,
		Brand:            req.Brand,
		City:             req.City,
		PricePerDayCents: req.PricePerDayCents,
		Availability:     domain.CarAvailability(req.Availability),
		Seats:            req.Seats,
		FuelType:         req.FuelType,
		Gearbox:          req.Gearbox,
	}
	if err := h.carSvc.AddCar(r.Context(), car); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	car, err := h.carSvc.GetCar(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	var req carRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	car := &domain.Car{
		ID:               id,
		Name:             req.Name,
		Brand:            req.Brand,
		City:             req.City,
		PricePerDayCents: req.PricePerDayCents,
		Availability:     domain.CarAvailability(req.Availability),
		Seats:            req.Seats,
		FuelType:         req.FuelType,
		Gearbox:          req.Gearbox,
	}
	if err := h.carSvc.UpdateCar(r.Context(), req.OwnerID, car); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carSvc.ListCars(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	cars, err := h.carSvc.ListMyCars(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}
