package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
)

func setupTestHub(t *testing.T) (*Hub, *websocket.Conn) {
	t.Helper()

	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	hub.now = func() time.Time { return time.UnixMilli(1700000000000) }

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	srv := httptest.NewServer(http.HandlerFunc(hub.ServeWS))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)
	return hub, conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var msg Message
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func TestHub_BroadcastSelection(t *testing.T) {
	hub, conn := setupTestHub(t)

	hub.BroadcastSelection(models.ReservationState{
		Phase:  models.PhaseSeatSelected,
		Flight: &models.Flight{ID: "1"},
		Seat:   &models.Seat{ID: "3C", Row: 3, Letter: "C", Price: 200, Available: true},
	})

	msg := readMessage(t, conn)
	assert.Equal(t, MessageTypeSelectionChanged, msg.Type)
	assert.Equal(t, []SeatUpdate{{SeatID: "3C", Status: SeatStatusSelected}}, msg.Seats)
	require.NotNil(t, msg.State)
	assert.Equal(t, models.PhaseSeatSelected, msg.State.Phase)
	assert.Equal(t, int64(1700000000000), msg.Timestamp)
}

func TestHub_BroadcastSeatBooked(t *testing.T) {
	hub, conn := setupTestHub(t)

	hub.BroadcastSeatBooked(models.Receipt{ID: "r-1", Seat: models.Seat{ID: "9A"}})

	msg := readMessage(t, conn)
	assert.Equal(t, MessageTypeSeatsUpdated, msg.Type)
	assert.Equal(t, "r-1", msg.ReceiptID)
	assert.Equal(t, []SeatUpdate{{SeatID: "9A", Status: SeatStatusBooked}}, msg.Seats)
}

func TestHub_BroadcastReset(t *testing.T) {
	hub, conn := setupTestHub(t)

	hub.BroadcastReset()

	msg := readMessage(t, conn)
	assert.Equal(t, MessageTypeReservationReset, msg.Type)
	require.NotNil(t, msg.State)
	assert.Equal(t, models.PhaseIdle, msg.State.Phase)
	assert.Empty(t, msg.Seats)
}

func TestHub_UnregisterOnClose(t *testing.T) {
	hub, conn := setupTestHub(t)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_PublishWithoutRunDoesNotBlock(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))

	done := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			hub.BroadcastReset()
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked with no running hub")
	}
	assert.Len(t, hub.broadcast, 256)
}
