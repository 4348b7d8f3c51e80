package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// MessageType represents the type of WebSocket message
type MessageType string

const (
	MessageTypeSelectionChanged MessageType = "selection_changed"
	MessageTypeSeatsUpdated     MessageType = "seats_updated"
	MessageTypeReservationReset MessageType = "reservation_reset"
)

// Seat statuses carried in SeatUpdate
const (
	SeatStatusAvailable = "available"
	SeatStatusSelected  = "selected"
	SeatStatusBooked    = "booked"
)

// SeatUpdate represents a seat status change
type SeatUpdate struct {
	SeatID string `json:"seatId"`
	Status string `json:"status"`
}

// Message represents a WebSocket message
type Message struct {
	Type      MessageType              `json:"type"`
	Seats     []SeatUpdate             `json:"seats,omitempty"`
	State     *models.ReservationState `json:"state,omitempty"`
	ReceiptID string                   `json:"receiptId,omitempty"`
	Message   string                   `json:"message,omitempty"`
	Timestamp int64                    `json:"timestamp"`
}

// Client represents a WebSocket client connection
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// Hub fans reservation events out to every connected seat-map viewer
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
	done       chan struct{}
	mu         sync.RWMutex
	logger     *slog.Logger
	now        func() time.Time
}

// NewHub creates a new Hub
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 256),
		done:       make(chan struct{}),
		logger:     logger,
		now:        time.Now,
	}
}

// Run starts the hub's main loop and returns when ctx is done
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("websocket client registered", "clients", total)

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			total := len(h.clients)
			h.mu.Unlock()
			h.logger.Debug("websocket client unregistered", "clients", total)

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				h.logger.Error("failed to marshal websocket message", "error", err)
				continue
			}

			h.mu.Lock()
			h.logger.Debug("broadcasting", "type", message.Type, "clients", len(h.clients))
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					delete(h.clients, client)
					close(client.send)
				}
			}
			h.mu.Unlock()
		}
	}
}

// ServeWS upgrades the request and registers the connection with the hub
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 256),
	}
	select {
	case h.register <- client:
	case <-h.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

// BroadcastSelection publishes the current selection
func (h *Hub) BroadcastSelection(state models.ReservationState) {
	msg := &Message{
		Type:  MessageTypeSelectionChanged,
		State: &state,
	}
	if state.Seat != nil {
		msg.Seats = []SeatUpdate{{SeatID: state.Seat.ID, Status: SeatStatusSelected}}
	}
	h.publish(msg)
}

// BroadcastSeatBooked announces that a confirmation took a seat
func (h *Hub) BroadcastSeatBooked(receipt models.Receipt) {
	h.publish(&Message{
		Type:      MessageTypeSeatsUpdated,
		Seats:     []SeatUpdate{{SeatID: receipt.Seat.ID, Status: SeatStatusBooked}},
		ReceiptID: receipt.ID,
		Message:   "Seat has been booked",
	})
}

// BroadcastReset announces that the selection was cleared
func (h *Hub) BroadcastReset() {
	h.publish(&Message{
		Type:    MessageTypeReservationReset,
		State:   &models.ReservationState{Phase: models.PhaseIdle},
		Message: "Reservation reset",
	})
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) publish(msg *Message) {
	msg.Timestamp = h.now().UnixMilli()
	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("websocket broadcast queue full, dropping message", "type", msg.Type)
	}
}

// readPump drains the connection so control frames are processed
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket read error", "error", err)
			}
			return
		}
	}
}

// writePump pumps messages from the hub to the connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
