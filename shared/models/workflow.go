package models

// Workflow and activity names shared between the api-server and the worker
const (
	ConfirmationWorkflowName = "ConfirmationWorkflow"
	SendConfirmationActivity = "SendConfirmation"
	DefaultTaskQueue         = "flight-reservation-queue"
)

// ConfirmationWorkflowInput is the input for the confirmation workflow
type ConfirmationWorkflowInput struct {
	Receipt Receipt `json:"receipt"`
}

// ConfirmationWorkflowResult is the result of the confirmation workflow
type ConfirmationWorkflowResult struct {
	ReceiptID string `json:"receiptId"`
	Delivered bool   `json:"delivered"`
	Message   string `json:"message,omitempty"`
}

// SendConfirmationInput is the input for the SendConfirmation activity
type SendConfirmationInput struct {
	Receipt Receipt `json:"receipt"`
}

// SendConfirmationOutput is the output of the SendConfirmation activity
type SendConfirmationOutput struct {
	Message string `json:"message"`
}
