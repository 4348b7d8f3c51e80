package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
)

// MockBookingService is a mock implementation of BookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetFlights(ctx context.Context) []models.Flight {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Flight)
}

func (m *MockBookingService) GetSeats(ctx context.Context) []models.Seat {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]models.Seat)
}

func (m *MockBookingService) SelectFlight(ctx context.Context, flightID string) (*models.Flight, error) {
	args := m.Called(ctx, flightID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Flight), args.Error(1)
}

func (m *MockBookingService) SelectSeat(ctx context.Context, seatID string) (*models.Seat, error) {
	args := m.Called(ctx, seatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Seat), args.Error(1)
}

func (m *MockBookingService) ConfirmReservation(ctx context.Context) (*models.Receipt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Receipt), args.Error(1)
}

func (m *MockBookingService) ResetReservation(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockBookingService) GetState(ctx context.Context) models.ReservationState {
	args := m.Called(ctx)
	return args.Get(0).(models.ReservationState)
}

// MockReceiptNotifier is a mock implementation of ReceiptNotifier
type MockReceiptNotifier struct {
	mock.Mock
}

func (m *MockReceiptNotifier) NotifyConfirmed(ctx context.Context, receipt models.Receipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}
