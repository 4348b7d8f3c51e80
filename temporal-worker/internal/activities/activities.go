package activities

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
	"go.temporal.io/sdk/activity"
)

// Sender delivers a confirmation message for a receipt
type Sender interface {
	Send(ctx context.Context, receipt models.Receipt, message string) error
}

// LogSender writes confirmations to a structured logger
type LogSender struct {
	Logger *slog.Logger
}

// Send implements Sender
func (s LogSender) Send(ctx context.Context, receipt models.Receipt, message string) error {
	s.Logger.InfoContext(ctx, "confirmation sent",
		"receiptId", receipt.ID,
		"flightNumber", receipt.Flight.FlightNumber,
		"seatId", receipt.Seat.ID,
		"message", message,
	)
	return nil
}

// Activities holds the dependencies of the confirmation activities
type Activities struct {
	sender Sender
}

// NewActivities creates a new Activities instance
func NewActivities(sender Sender) *Activities {
	return &Activities{sender: sender}
}

// SendConfirmation activity - formats and delivers the confirmation for a receipt
func (a *Activities) SendConfirmation(ctx context.Context, input models.SendConfirmationInput) (*models.SendConfirmationOutput, error) {
	logger := activity.GetLogger(ctx)
	logger.Info("Sending confirmation", "receiptId", input.Receipt.ID)

	if input.Receipt.ID == "" {
		return nil, fmt.Errorf("receipt has no id")
	}

	message := FormatConfirmation(input.Receipt)
	if err := a.sender.Send(ctx, input.Receipt, message); err != nil {
		return nil, fmt.Errorf("failed to send confirmation %s: %w", input.Receipt.ID, err)
	}

	logger.Info("Confirmation sent", "receiptId", input.Receipt.ID)
	return &models.SendConfirmationOutput{Message: message}, nil
}

// FormatConfirmation renders the human-readable confirmation text
func FormatConfirmation(r models.Receipt) string {
	return fmt.Sprintf("Reservation %s confirmed: %s %s, %s -> %s, departs %s. Seat %s. Total $%.2f",
		r.ID,
		r.Flight.Airline,
		r.Flight.FlightNumber,
		r.Flight.Origin,
		r.Flight.Destination,
		r.Flight.DepartureTime,
		r.Seat.ID,
		r.Total,
	)
}
