package activities

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
	"go.temporal.io/sdk/testsuite"
)

type recordingSender struct {
	sent []string
	err  error
}

func (s *recordingSender) Send(ctx context.Context, receipt models.Receipt, message string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, message)
	return nil
}

func testReceipt() models.Receipt {
	return models.Receipt{
		ID: "rcpt-42",
		Flight: models.Flight{
			ID:            "1",
			Airline:       "Sky Airlines",
			FlightNumber:  "SA123",
			Origin:        "New York (JFK)",
			Destination:   "Los Angeles (LAX)",
			DepartureTime: "08:00 AM",
		},
		Seat:  models.Seat{ID: "3C", Row: 3, Letter: "C", Price: 200},
		Total: 200,
	}
}

func TestFormatConfirmation(t *testing.T) {
	msg := FormatConfirmation(testReceipt())
	assert.Equal(t,
		"Reservation rcpt-42 confirmed: Sky Airlines SA123, New York (JFK) -> Los Angeles (LAX), departs 08:00 AM. Seat 3C. Total $200.00",
		msg)
}

func TestSendConfirmation_Success(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()

	sender := &recordingSender{}
	acts := NewActivities(sender)
	env.RegisterActivity(acts)

	val, err := env.ExecuteActivity(acts.SendConfirmation, models.SendConfirmationInput{Receipt: testReceipt()})
	require.NoError(t, err)

	var out models.SendConfirmationOutput
	require.NoError(t, val.Get(&out))
	assert.Contains(t, out.Message, "Seat 3C")
	assert.Equal(t, []string{out.Message}, sender.sent)
}

func TestSendConfirmation_SenderFails(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()

	acts := NewActivities(&recordingSender{err: errors.New("mailbox unavailable")})
	env.RegisterActivity(acts)

	_, err := env.ExecuteActivity(acts.SendConfirmation, models.SendConfirmationInput{Receipt: testReceipt()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mailbox unavailable")
}

func TestSendConfirmation_MissingReceiptID(t *testing.T) {
	var ts testsuite.WorkflowTestSuite
	env := ts.NewTestActivityEnvironment()

	sender := &recordingSender{}
	acts := NewActivities(sender)
	env.RegisterActivity(acts)

	_, err := env.ExecuteActivity(acts.SendConfirmation, models.SendConfirmationInput{})
	require.Error(t, err)
	assert.Empty(t, sender.sent)
}
