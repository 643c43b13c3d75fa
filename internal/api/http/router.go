package http

import (
	"net/http"
	"time"

	"carrent-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// NewRouter wires all API routes.
func NewRouter(reservations *ReservationHandler, cars *CarHandler, notifications *NotificationHandler) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Reservation lifecycle
	api.HandleFunc("/reservations", reservations.Create).Methods(http.MethodPost)
	api.HandleFunc("/reservations/quote", reservations.Quote).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}", reservations.Get).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{id:[0-9]+}/decision", reservations.Decide).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{id:[0-9]+}/cancel", reservations.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/users/{id:[0-9]+}/reservations", reservations.ListByRenter).Methods(http.MethodGet)
	api.HandleFunc("/owners/{id:[0-9]+}/reservations", reservations.ListByOwner).Methods(http.MethodGet)

	// Availability
	api.HandleFunc("/cars/{id:[0-9]+}/blocked-dates", reservations.BlockedDates).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id:[0-9]+}/availability", reservations.CheckAvailability).Methods(http.MethodGet)

	// Car registry
	api.HandleFunc("/cars", cars.Add).Methods(http.MethodPost)
	api.HandleFunc("/cars", cars.List).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id:[0-9]+}", cars.Get).Methods(http.MethodGet)
	api.HandleFunc("/cars/{id:[0-9]+}", cars.Update).Methods(http.MethodPut)
	api.HandleFunc("/owners/{id:[0-9]+}/cars", cars.ListByOwner).Methods(http.MethodGet)

	// Notifications
	api.HandleFunc("/users/{id:[0-9]+}/notifications", notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}/notifications/{noteID:[0-9]+}/read", notifications.MarkAsRead).Methods(http.MethodPost)

	return r
}

// requestIDMiddleware tags every request with a uuid and logs the roundtrip.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("Request handled",
			"request_id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
