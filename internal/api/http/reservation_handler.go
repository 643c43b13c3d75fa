package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"carrent-backend/internal/domain"
	"carrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// ReservationHandler exposes the booking engine over HTTP.
type ReservationHandler struct {
	bookingSvc      service.BookingService
	availabilitySvc service.AvailabilityService
	clock           service.Clock
}

func NewReservationHandler(bookingSvc service.BookingService, availabilitySvc service.AvailabilityService, clock service.Clock) *ReservationHandler {
	if clock == nil {
		clock = service.SystemClock
	}
	return &ReservationHandler{
		bookingSvc:      bookingSvc,
		availabilitySvc: availabilitySvc,
		clock:           clock,
	}
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	rng, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := h.bookingSvc.CreateReservation(r.Context(), req.CarID, req.RenterID, rng, domain.InsuranceTier(req.InsuranceTier), parseExtras(req.Extras), req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReservationResponse(res, h.clock.Now()))
}

func (h *ReservationHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	rng, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, err)
		return
	}

	breakdown, err := h.bookingSvc.Quote(r.Context(), req.CarID, rng, domain.InsuranceTier(req.InsuranceTier), parseExtras(req.Extras))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, breakdown)
}

func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	userID, err := strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "user_id query parameter is required"})
		return
	}

	res, err := h.bookingSvc.GetReservation(r.Context(), id, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(res, h.clock.Now()))
}

func (h *ReservationHandler) Decide(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.bookingSvc.DecideReservation(r.Context(), id, req.OwnerID, service.DecisionOutcome(req.Outcome))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(res, h.clock.Now()))
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	var req cancelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	res, err := h.bookingSvc.CancelReservation(r.Context(), id, req.ActorID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReservationResponse(res, h.clock.Now()))
}

func (h *ReservationHandler) ListByRenter(w http.ResponseWriter, r *http.Request) {
	renterID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	reservations, err := h.bookingSvc.ListReservationsByRenter(r.Context(), renterID)
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeReservationList(w, reservations)
}

func (h *ReservationHandler) ListByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	reservations, err := h.bookingSvc.ListReservationsByOwner(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	h.writeReservationList(w, reservations)
}

func (h *ReservationHandler) writeReservationList(w http.ResponseWriter, reservations []domain.Reservation) {
	now := h.clock.Now()
	out := make([]reservationResponse, len(reservations))
	for i := range reservations {
		out[i] = toReservationResponse(&reservations[i], now)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *ReservationHandler) BlockedDates(w http.ResponseWriter, r *http.Request) {
	carID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	blocked, err := h.availabilitySvc.BlockedDates(r.Context(), carID)
	if err != nil {
		writeError(w, err)
		return
	}

	dates := make([]string, len(blocked))
	for i, d := range blocked {
		dates[i] = d.String()
	}
	writeJSON(w, http.StatusOK, map[string][]string{"blocked_dates": dates})
}

func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	carID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	rng, err := parseRange(r.URL.Query().Get("start"), r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, err)
		return
	}

	conflict, err := h.availabilitySvc.HasConflict(r.Context(), carID, rng, 0)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"available": !conflict})
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
