package reservation

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
)

// Engine holds the single active selection and enforces the
// Idle -> FlightSelected -> SeatSelected -> Confirmed workflow over a
// Catalog and an Inventory.
//
// Selecting a flight discards any previous seat and confirmation. Selecting
// a seat does not touch availability; only Confirm takes the seat, so an
// abandoned selection never strands inventory.
type Engine struct {
	mu        sync.Mutex
	catalog   *Catalog
	inventory *Inventory

	flight    *models.Flight
	seat      *models.Seat
	confirmed bool

	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source used for receipts.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDGenerator sets the receipt id generator.
func WithIDGenerator(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithLogger sets the engine logger. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an Engine in the Idle phase.
func NewEngine(catalog *Catalog, inventory *Inventory, opts ...Option) *Engine {
	e := &Engine{
		catalog:   catalog,
		inventory: inventory,
		now:       time.Now,
		newID:     uuid.NewString,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ListFlights returns the catalog in insertion order.
func (e *Engine) ListFlights() []models.Flight {
	return e.catalog.List()
}

// ListSeats returns every seat, row-major then by letter.
func (e *Engine) ListSeats() []models.Seat {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inventory.List()
}

// SelectFlight makes id the active flight and clears any seat selection and
// confirmation. An unknown id leaves the state untouched.
func (e *Engine) SelectFlight(id string) (models.Flight, error) {
	flight, err := e.catalog.Find(id)
	if err != nil {
		return models.Flight{}, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.flight = &flight
	e.seat = nil
	e.confirmed = false

	e.logger.Info("flight selected", "flightId", flight.ID, "flightNumber", flight.FlightNumber)
	return flight, nil
}

// SelectSeat makes id the active seat for the selected flight. The seat must
// exist and be available; its availability is left unchanged.
func (e *Engine) SelectSeat(id string) (models.Seat, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.flight == nil {
		return models.Seat{}, fmt.Errorf("select a flight before a seat: %w", ErrInvalidState)
	}

	seat, err := e.inventory.Find(id)
	if err != nil {
		return models.Seat{}, err
	}
	if !seat.Available {
		return seat, fmt.Errorf("seat %q: %w", id, ErrSeatUnavailable)
	}

	e.seat = &seat
	e.confirmed = false

	e.logger.Info("seat selected", "flightId", e.flight.ID, "seatId", seat.ID, "price", seat.Price)
	return seat, nil
}

// Confirm takes the selected seat and returns the receipt.
func (e *Engine) Confirm() (models.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch {
	case e.flight == nil:
		return models.Receipt{}, fmt.Errorf("no flight selected: %w", ErrInvalidState)
	case e.seat == nil:
		return models.Receipt{}, fmt.Errorf("no seat selected: %w", ErrInvalidState)
	case e.confirmed:
		return models.Receipt{}, fmt.Errorf("reservation already confirmed: %w", ErrInvalidState)
	}

	seat, err := e.inventory.Reserve(e.seat.ID)
	if err != nil {
		return models.Receipt{}, err
	}

	e.seat = &seat
	e.confirmed = true

	receipt := models.Receipt{
		ID:          e.newID(),
		Flight:      *e.flight,
		Seat:        seat,
		Total:       seat.Price,
		ConfirmedAt: e.now(),
	}

	e.logger.Info("reservation confirmed",
		"receiptId", receipt.ID,
		"flightNumber", receipt.Flight.FlightNumber,
		"seatId", seat.ID,
		"total", receipt.Total,
	)
	return receipt, nil
}

// Reset clears the selection. Seats taken by Confirm stay taken.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.flight = nil
	e.seat = nil
	e.confirmed = false

	e.logger.Info("reservation reset")
}

// State returns a snapshot of the current selection.
func (e *Engine) State() models.ReservationState {
	e.mu.Lock()
	defer e.mu.Unlock()

	state := models.ReservationState{
		Phase:     e.phase(),
		Confirmed: e.confirmed,
	}
	if e.flight != nil {
		f := *e.flight
		state.Flight = &f
	}
	if e.seat != nil {
		s := *e.seat
		state.Seat = &s
	}
	return state
}

// FindSeat returns a copy of the seat with the given id.
func (e *Engine) FindSeat(id string) (models.Seat, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inventory.Find(id)
}

// AvailableSeats returns how many seats can still be selected.
func (e *Engine) AvailableSeats() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inventory.Available()
}

// Tiers returns the pricing table of the inventory.
func (e *Engine) Tiers() TierTable {
	return e.inventory.Tiers()
}

func (e *Engine) phase() models.Phase {
	switch {
	case e.confirmed:
		return models.PhaseConfirmed
	case e.seat != nil:
		return models.PhaseSeatSelected
	case e.flight != nil:
		return models.PhaseFlightSelected
	default:
		return models.PhaseIdle
	}
}
