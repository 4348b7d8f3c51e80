package reservation

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
)

// SeatID builds the seat identifier for a row and letter, e.g. "3B".
func SeatID(row int, letter string) string {
	return strconv.Itoa(row) + letter
}

// Inventory manages seat state in memory. Availability only changes
// through Reserve and Release.
type Inventory struct {
	mu      sync.RWMutex
	seats   []*models.Seat          // row-major, letters in layout order
	index   map[string]*models.Seat // seatID -> Seat
	letters []string
	rows    int
	tiers   TierTable
}

// NewInventory generates rows x letters seats priced by tiers and marks the
// seeded ids unavailable.
func NewInventory(rows int, letters []string, tiers TierTable, unavailable []string) (*Inventory, error) {
	if rows <= 0 {
		return nil, fmt.Errorf("rows must be positive, got %d", rows)
	}
	if err := tiers.Validate(); err != nil {
		return nil, err
	}

	inv := &Inventory{
		seats:   make([]*models.Seat, 0, rows*len(letters)),
		index:   make(map[string]*models.Seat, rows*len(letters)),
		letters: append([]string(nil), letters...),
		rows:    rows,
		tiers:   tiers,
	}

	for row := 1; row <= rows; row++ {
		price, _ := tiers.PriceFor(row)
		for _, letter := range letters {
			seat := &models.Seat{
				ID:        SeatID(row, letter),
				Row:       row,
				Letter:    letter,
				Price:     price,
				Available: true,
			}
			if _, dup := inv.index[seat.ID]; dup {
				return nil, fmt.Errorf("duplicate seat id %q", seat.ID)
			}
			inv.seats = append(inv.seats, seat)
			inv.index[seat.ID] = seat
		}
	}

	for _, id := range unavailable {
		seat, ok := inv.index[id]
		if !ok {
			return nil, fmt.Errorf("seeded seat %q: %w", id, ErrNotFound)
		}
		seat.Available = false
	}

	return inv, nil
}

// List returns copies of all seats, row-major then by letter.
func (inv *Inventory) List() []models.Seat {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	out := make([]models.Seat, len(inv.seats))
	for i, s := range inv.seats {
		out[i] = *s
	}
	return out
}

// Find returns the seat with the given id.
func (inv *Inventory) Find(id string) (models.Seat, error) {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	seat, ok := inv.index[id]
	if !ok {
		return models.Seat{}, fmt.Errorf("seat %q: %w", id, ErrNotFound)
	}
	return *seat, nil
}

// Reserve marks an available seat as taken.
func (inv *Inventory) Reserve(id string) (models.Seat, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	seat, ok := inv.index[id]
	if !ok {
		return models.Seat{}, fmt.Errorf("seat %q: %w", id, ErrNotFound)
	}
	if !seat.Available {
		return *seat, fmt.Errorf("seat %q: %w", id, ErrSeatUnavailable)
	}
	seat.Available = false
	return *seat, nil
}

// Release makes a taken seat available again.
func (inv *Inventory) Release(id string) (models.Seat, error) {
	inv.mu.Lock()
	defer inv.mu.Unlock()

	seat, ok := inv.index[id]
	if !ok {
		return models.Seat{}, fmt.Errorf("seat %q: %w", id, ErrNotFound)
	}
	if seat.Available {
		return *seat, fmt.Errorf("seat %q is not taken: %w", id, ErrInvalidState)
	}
	seat.Available = true
	return *seat, nil
}

// Available returns the number of seats that can still be selected.
func (inv *Inventory) Available() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	n := 0
	for _, s := range inv.seats {
		if s.Available {
			n++
		}
	}
	return n
}

// Rows returns the number of rows in the layout.
func (inv *Inventory) Rows() int {
	return inv.rows
}

// Letters returns the seat letters in layout order.
func (inv *Inventory) Letters() []string {
	return append([]string(nil), inv.letters...)
}

// Tiers returns the pricing table the inventory was built with.
func (inv *Inventory) Tiers() TierTable {
	return append(TierTable(nil), inv.tiers...)
}
