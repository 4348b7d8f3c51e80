package router

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/vishaal-oss/Airplane-Reservation-System/api-server/internal/handlers"
)

// NewRouter creates and configures the HTTP router. ws serves the live seat
// feed and may be nil.
func NewRouter(h *handlers.Handler, ws http.HandlerFunc) *mux.Router {
	r := mux.NewRouter()

	// CORS middleware
	r.Use(corsMiddleware)

	api := r.PathPrefix("/api").Subrouter()

	// Catalog and inventory
	api.HandleFunc("/flights", h.GetFlights).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/seats", h.GetSeats).Methods(http.MethodGet, http.MethodOptions)

	// Reservation
	api.HandleFunc("/state", h.GetState).Methods(http.MethodGet, http.MethodOptions)
	api.HandleFunc("/select-flight", h.SelectFlight).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/select-seat", h.SelectSeat).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/confirm", h.ConfirmReservation).Methods(http.MethodPost, http.MethodOptions)
	api.HandleFunc("/reset", h.ResetReservation).Methods(http.MethodPost, http.MethodOptions)

	if ws != nil {
		api.HandleFunc("/ws", ws)
	}

	r.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
