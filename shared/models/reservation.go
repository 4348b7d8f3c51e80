package models

import "time"

// Phase is the position of a reservation in the booking workflow
type Phase string

const (
	PhaseIdle           Phase = "idle"
	PhaseFlightSelected Phase = "flight_selected"
	PhaseSeatSelected   Phase = "seat_selected"
	PhaseConfirmed      Phase = "confirmed"
)

// ReservationState is a snapshot of the current selection
type ReservationState struct {
	Phase     Phase   `json:"phase"`
	Flight    *Flight `json:"flight,omitempty"`
	Seat      *Seat   `json:"seat,omitempty"`
	Confirmed bool    `json:"confirmed"`
}

// Receipt is the result of a successful confirmation
type Receipt struct {
	ID          string    `json:"id"`
	Flight      Flight    `json:"flight"`
	Seat        Seat      `json:"seat"`
	Total       float64   `json:"total"`
	ConfirmedAt time.Time `json:"confirmedAt"`
}

// SelectFlightRequest represents a request to select a flight
type SelectFlightRequest struct {
	FlightID string `json:"flightId" validate:"required,max=64"`
}

// SelectSeatRequest represents a request to select a seat
type SelectSeatRequest struct {
	SeatID string `json:"seatId" validate:"required,alphanum,max=8"`
}

// StatusResponse is the envelope returned by mutating API calls
type StatusResponse struct {
	Status  string   `json:"status"`
	Error   string   `json:"error,omitempty"`
	Flight  *Flight  `json:"flight,omitempty"`
	Seat    *Seat    `json:"seat,omitempty"`
	Receipt *Receipt `json:"receipt,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)
