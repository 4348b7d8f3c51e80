package reservation

import (
	"fmt"

	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
)

// Catalog is the read-only list of offered flights, kept in insertion order.
type Catalog struct {
	flights []models.Flight
	index   map[string]int
}

// NewCatalog creates a catalog from flights. Ids must be non-empty and unique.
func NewCatalog(flights []models.Flight) (*Catalog, error) {
	c := &Catalog{
		flights: make([]models.Flight, 0, len(flights)),
		index:   make(map[string]int, len(flights)),
	}
	for _, f := range flights {
		if f.ID == "" {
			return nil, fmt.Errorf("flight %s has no id", f.FlightNumber)
		}
		if _, dup := c.index[f.ID]; dup {
			return nil, fmt.Errorf("duplicate flight id %q", f.ID)
		}
		c.index[f.ID] = len(c.flights)
		c.flights = append(c.flights, f)
	}
	return c, nil
}

// List returns a copy of all flights.
func (c *Catalog) List() []models.Flight {
	out := make([]models.Flight, len(c.flights))
	copy(out, c.flights)
	return out
}

// Find returns the flight with the given id.
func (c *Catalog) Find(id string) (models.Flight, error) {
	i, ok := c.index[id]
	if !ok {
		return models.Flight{}, fmt.Errorf("flight %q: %w", id, ErrNotFound)
	}
	return c.flights[i], nil
}

// Len returns the number of flights.
func (c *Catalog) Len() int {
	return len(c.flights)
}
