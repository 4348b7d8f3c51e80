package menu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/reservation"
)

func setupTestEngine(t *testing.T) *reservation.Engine {
	t.Helper()
	profile, err := reservation.LookupProfile(reservation.DefaultProfile)
	require.NoError(t, err)
	catalog, inventory, err := profile.Build()
	require.NoError(t, err)
	return reservation.NewEngine(catalog, inventory,
		reservation.WithIDGenerator(func() string { return "rcpt-1" }))
}

func runScript(t *testing.T, engine Engine, script string) string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, New(engine, strings.NewReader(script), &out).Run())
	return out.String()
}

func TestConsole_BookingFlow(t *testing.T) {
	engine := setupTestEngine(t)

	out := runScript(t, engine, "2\n1\n4\n3c\n5\n7\n0\n")

	assert.Contains(t, out, "Selected: Sky Airlines SA123: New York (JFK) -> Los Angeles (LAX)")
	assert.Contains(t, out, "Selected seat 3C (Price: $200.00)")
	assert.Contains(t, out, "Reservation confirmed for seat 3C on SA123. Total: $200.00 (receipt rcpt-1)")
	assert.Contains(t, out, "Phase: confirmed")
	assert.Contains(t, out, "Confirmed: true")
	assert.Contains(t, out, "Seats available: 56")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))

	seat, err := engine.FindSeat("3C")
	require.NoError(t, err)
	assert.False(t, seat.Available)
}

func TestConsole_Errors(t *testing.T) {
	tests := []struct {
		name     string
		script   string
		expected string
	}{
		{
			name:     "seat before flight",
			script:   "4\n",
			expected: "No flight selected. Choose a flight first.",
		},
		{
			name:     "seat map before flight",
			script:   "3\n",
			expected: "No flight selected. Choose a flight first.",
		},
		{
			name:     "confirm without selection",
			script:   "5\n",
			expected: "Error: no flight selected: invalid reservation state",
		},
		{
			name:     "flight index out of range",
			script:   "2\n9\n",
			expected: "Error: invalid selection",
		},
		{
			name:     "flight index not a number",
			script:   "2\nabc\n",
			expected: "Error: invalid selection",
		},
		{
			name:     "unavailable seat",
			script:   "2\n1\n4\n3b\n",
			expected: `Error: seat "3B": seat not available`,
		},
		{
			name:     "unknown option",
			script:   "42\n",
			expected: "Unknown option. Try again.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runScript(t, setupTestEngine(t), tt.script)
			assert.Contains(t, out, tt.expected)
		})
	}
}

func TestConsole_CancelPrompts(t *testing.T) {
	engine := setupTestEngine(t)

	runScript(t, engine, "2\n0\n")
	assert.Nil(t, engine.State().Flight)

	runScript(t, engine, "2\n2\n4\n0\n")
	state := engine.State()
	require.NotNil(t, state.Flight)
	assert.Equal(t, "2", state.Flight.ID)
	assert.Nil(t, state.Seat)
}

func TestConsole_Reset(t *testing.T) {
	engine := setupTestEngine(t)

	out := runScript(t, engine, "2\n1\n4\n1A\n6\n7\n")

	assert.Contains(t, out, "Reservation state reset.")
	assert.Contains(t, out, "Phase: idle")
	assert.Contains(t, out, "Flight: None")
	assert.Contains(t, out, "Seats available: 57")
	assert.Equal(t, models.PhaseIdle, engine.State().Phase)
}

func TestConsole_EOFExitsCleanly(t *testing.T) {
	out := runScript(t, setupTestEngine(t), "1\n")

	assert.Contains(t, out, "Available flights:")
	assert.Contains(t, out, "3) JetStream JS789")
	assert.NotContains(t, out, "Goodbye!")
}

func TestRenderSeatMap(t *testing.T) {
	engine := setupTestEngine(t)
	_, err := engine.SelectFlight("1")
	require.NoError(t, err)
	_, err = engine.SelectSeat("3C")
	require.NoError(t, err)

	c := New(engine, strings.NewReader(""), &bytes.Buffer{})
	lines := strings.Split(c.RenderSeatMap(engine.ListSeats(), "3C"), "\n")

	assert.Equal(t, "    A B C D E F ", lines[0])
	assert.Equal(t, " 1: O O O O O O ", lines[1])
	assert.Equal(t, " 3: O X S O O O ", lines[3])
	assert.Equal(t, " 5: O O X O O O ", lines[5])
	assert.Equal(t, " 7: X O O O O O ", lines[7])
	assert.Equal(t, "10: O O O O O O ", lines[10])
	assert.Equal(t, "Legend: O available  X unavailable  S selected  ? missing", lines[11])
}

func TestRenderSeatMap_MissingSeats(t *testing.T) {
	c := New(setupTestEngine(t), strings.NewReader(""), &bytes.Buffer{})
	seats := []models.Seat{
		{ID: "1A", Row: 1, Letter: "A", Available: true},
		{ID: "1B", Row: 1, Letter: "B", Available: false},
		{ID: "2B", Row: 2, Letter: "B", Available: true},
	}

	lines := strings.Split(c.RenderSeatMap(seats, ""), "\n")

	assert.Equal(t, "    A B ", lines[0])
	assert.Equal(t, " 1: O X ", lines[1])
	assert.Equal(t, " 2: ? O ", lines[2])
}
