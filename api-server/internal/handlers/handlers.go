package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/vishaal-oss/Airplane-Reservation-System/api-server/internal/service"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/reservation"
)

const maxBodyBytes = 1 << 16

// Handler contains HTTP handlers for the API
type Handler struct {
	bookingService service.BookingService
	validate       *validator.Validate
	logger         *slog.Logger
}

// NewHandler creates a new Handler instance
func NewHandler(bookingService service.BookingService, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Handler{
		bookingService: bookingService,
		validate:       v,
		logger:         logger,
	}
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.StatusResponse{Status: models.StatusError, Error: message})
}

// respondServiceError maps reservation errors onto HTTP status codes
func (h *Handler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, reservation.ErrNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, reservation.ErrSeatUnavailable):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, reservation.ErrInvalidState):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeRequest decodes a JSON body into dst and validates it
func (h *Handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.New("Invalid request body")
	}
	if err := h.validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("Invalid %s: failed %q validation", verrs[0].Field(), verrs[0].Tag())
		}
		return errors.New("Invalid request body")
	}
	return nil
}

// GetFlights handles GET /api/flights
func (h *Handler) GetFlights(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookingService.GetFlights(r.Context()))
}

// GetSeats handles GET /api/seats
func (h *Handler) GetSeats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookingService.GetSeats(r.Context()))
}

// GetState handles GET /api/state
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.bookingService.GetState(r.Context()))
}

// SelectFlight handles POST /api/select-flight
func (h *Handler) SelectFlight(w http.ResponseWriter, r *http.Request) {
	var req models.SelectFlightRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	flight, err := h.bookingService.SelectFlight(r.Context(), req.FlightID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, models.StatusResponse{Status: models.StatusSuccess, Flight: flight})
}

// SelectSeat handles POST /api/select-seat
func (h *Handler) SelectSeat(w http.ResponseWriter, r *http.Request) {
	var req models.SelectSeatRequest
	if err := h.decodeRequest(w, r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	seat, err := h.bookingService.SelectSeat(r.Context(), req.SeatID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, models.StatusResponse{Status: models.StatusSuccess, Seat: seat})
}

// ConfirmReservation handles POST /api/confirm
func (h *Handler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	receipt, err := h.bookingService.ConfirmReservation(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, models.StatusResponse{Status: models.StatusSuccess, Receipt: receipt})
}

// ResetReservation handles POST /api/reset
func (h *Handler) ResetReservation(w http.ResponseWriter, r *http.Request) {
	h.bookingService.ResetReservation(r.Context())
	respondJSON(w, http.StatusOK, models.StatusResponse{Status: models.StatusSuccess})
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
