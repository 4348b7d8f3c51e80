package workflows

import (
	"time"

	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

const (
	// SendTimeout bounds a single confirmation delivery attempt
	SendTimeout = 30 * time.Second
	// MaxSendAttempts is the maximum number of delivery attempts
	MaxSendAttempts = 5
)

// ConfirmationWorkflow delivers the confirmation for a confirmed reservation
func ConfirmationWorkflow(ctx workflow.Context, input models.ConfirmationWorkflowInput) (*models.ConfirmationWorkflowResult, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("Confirmation workflow started", "receiptId", input.Receipt.ID)

	ctx = workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: SendTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    MaxSendAttempts,
		},
	})

	var out models.SendConfirmationOutput
	err := workflow.ExecuteActivity(ctx, models.SendConfirmationActivity, models.SendConfirmationInput{
		Receipt: input.Receipt,
	}).Get(ctx, &out)
	if err != nil {
		logger.Error("Confirmation delivery failed", "receiptId", input.Receipt.ID, "error", err)
		return nil, err
	}

	logger.Info("Confirmation delivered", "receiptId", input.Receipt.ID)
	return &models.ConfirmationWorkflowResult{
		ReceiptID: input.Receipt.ID,
		Delivered: true,
		Message:   out.Message,
	}, nil
}
