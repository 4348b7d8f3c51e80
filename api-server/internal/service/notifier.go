package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
	"go.temporal.io/sdk/client"
)

// ReceiptNotifier dispatches the confirmation for a new receipt
type ReceiptNotifier interface {
	NotifyConfirmed(ctx context.Context, receipt models.Receipt) error
}

// TemporalNotifier starts a ConfirmationWorkflow per receipt
type TemporalNotifier struct {
	client    client.Client
	taskQueue string
}

// NewTemporalNotifier creates a notifier backed by a Temporal client
func NewTemporalNotifier(c client.Client, taskQueue string) *TemporalNotifier {
	return &TemporalNotifier{client: c, taskQueue: taskQueue}
}

// WorkflowID returns the workflow id used for a receipt
func WorkflowID(receiptID string) string {
	return "confirmation-" + receiptID
}

func (n *TemporalNotifier) NotifyConfirmed(ctx context.Context, receipt models.Receipt) error {
	workflowOptions := client.StartWorkflowOptions{
		ID:        WorkflowID(receipt.ID),
		TaskQueue: n.taskQueue,
	}

	_, err := n.client.ExecuteWorkflow(ctx, workflowOptions, models.ConfirmationWorkflowName, models.ConfirmationWorkflowInput{
		Receipt: receipt,
	})
	if err != nil {
		return fmt.Errorf("failed to start workflow: %w", err)
	}
	return nil
}

// LogNotifier records confirmations in the log when no workflow backend is configured
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyConfirmed(ctx context.Context, receipt models.Receipt) error {
	n.logger.InfoContext(ctx, "reservation receipt",
		"receiptId", receipt.ID,
		"flightNumber", receipt.Flight.FlightNumber,
		"seatId", receipt.Seat.ID,
		"total", receipt.Total,
	)
	return nil
}
