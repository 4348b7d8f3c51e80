package service

import (
	"context"
	"io"
	"log/slog"

	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/reservation"
)

// BookingService defines the booking operations exposed to transports
type BookingService interface {
	GetFlights(ctx context.Context) []models.Flight
	GetSeats(ctx context.Context) []models.Seat
	SelectFlight(ctx context.Context, flightID string) (*models.Flight, error)
	SelectSeat(ctx context.Context, seatID string) (*models.Seat, error)
	ConfirmReservation(ctx context.Context) (*models.Receipt, error)
	ResetReservation(ctx context.Context)
	GetState(ctx context.Context) models.ReservationState
}

// SeatBroadcaster publishes reservation changes to live viewers
type SeatBroadcaster interface {
	BroadcastSelection(state models.ReservationState)
	BroadcastSeatBooked(receipt models.Receipt)
	BroadcastReset()
}

// Options configures a BookingService. Nil fields fall back to no-ops.
type Options struct {
	Notifier    ReceiptNotifier
	Broadcaster SeatBroadcaster
	Logger      *slog.Logger
}

// bookingServiceImpl implements BookingService on top of a reservation.Engine
type bookingServiceImpl struct {
	engine      *reservation.Engine
	notifier    ReceiptNotifier
	broadcaster SeatBroadcaster
	logger      *slog.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(engine *reservation.Engine, opts Options) BookingService {
	svc := &bookingServiceImpl{
		engine:      engine,
		notifier:    opts.Notifier,
		broadcaster: opts.Broadcaster,
		logger:      opts.Logger,
	}
	if svc.logger == nil {
		svc.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if svc.notifier == nil {
		svc.notifier = NewLogNotifier(svc.logger)
	}
	if svc.broadcaster == nil {
		svc.broadcaster = nopBroadcaster{}
	}
	return svc
}

func (s *bookingServiceImpl) GetFlights(ctx context.Context) []models.Flight {
	return s.engine.ListFlights()
}

func (s *bookingServiceImpl) GetSeats(ctx context.Context) []models.Seat {
	return s.engine.ListSeats()
}

func (s *bookingServiceImpl) SelectFlight(ctx context.Context, flightID string) (*models.Flight, error) {
	flight, err := s.engine.SelectFlight(flightID)
	if err != nil {
		return nil, err
	}
	s.broadcaster.BroadcastSelection(s.engine.State())
	return &flight, nil
}

func (s *bookingServiceImpl) SelectSeat(ctx context.Context, seatID string) (*models.Seat, error) {
	seat, err := s.engine.SelectSeat(seatID)
	if err != nil {
		return nil, err
	}
	s.broadcaster.BroadcastSelection(s.engine.State())
	return &seat, nil
}

func (s *bookingServiceImpl) ConfirmReservation(ctx context.Context) (*models.Receipt, error) {
	receipt, err := s.engine.Confirm()
	if err != nil {
		return nil, err
	}

	s.broadcaster.BroadcastSeatBooked(receipt)

	// The booking stands even if the confirmation cannot be dispatched.
	if err := s.notifier.NotifyConfirmed(ctx, receipt); err != nil {
		s.logger.ErrorContext(ctx, "failed to dispatch confirmation", "receiptId", receipt.ID, "error", err)
	}
	return &receipt, nil
}

func (s *bookingServiceImpl) ResetReservation(ctx context.Context) {
	s.engine.Reset()
	s.broadcaster.BroadcastReset()
}

func (s *bookingServiceImpl) GetState(ctx context.Context) models.ReservationState {
	return s.engine.State()
}

type nopBroadcaster struct{}

func (nopBroadcaster) BroadcastSelection(models.ReservationState) {}
func (nopBroadcaster) BroadcastSeatBooked(models.Receipt)         {}
func (nopBroadcaster) BroadcastReset()                            {}
