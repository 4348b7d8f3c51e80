package reservation

import (
	"fmt"
	"sort"

	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
)

// DefaultProfile is the profile used when none is configured.
const DefaultProfile = "compact"

// DefaultLetters is the seat letter order of a single-aisle cabin.
var DefaultLetters = []string{"A", "B", "C", "D", "E", "F"}

// Profile bundles everything needed to build a catalog and an inventory
// for one deployment.
type Profile struct {
	Name        string          `yaml:"name"`
	Rows        int             `yaml:"rows"`
	Letters     []string        `yaml:"letters"`
	Tiers       TierTable       `yaml:"tiers"`
	Unavailable []string        `yaml:"unavailable"`
	Flights     []models.Flight `yaml:"flights"`
}

var profiles = map[string]Profile{
	"compact": {
		Name:    "compact",
		Rows:    10,
		Letters: DefaultLetters,
		Tiers: TierTable{
			{Name: "premium", MaxRow: 3, Price: 200},
			{Name: "standard", MaxRow: 7, Price: 150},
			{Name: "economy", Price: 100},
		},
		Unavailable: []string{"3B", "5C", "7A"},
		Flights: []models.Flight{
			{ID: "1", Airline: "Sky Airlines", FlightNumber: "SA123", Origin: "New York (JFK)", Destination: "Los Angeles (LAX)", DepartureTime: "08:00 AM", ArrivalTime: "11:30 AM"},
			{ID: "2", Airline: "Cloud Express", FlightNumber: "CE456", Origin: "Chicago (ORD)", Destination: "Miami (MIA)", DepartureTime: "02:15 PM", ArrivalTime: "05:45 PM"},
			{ID: "3", Airline: "JetStream", FlightNumber: "JS789", Origin: "San Francisco (SFO)", Destination: "Seattle (SEA)", DepartureTime: "06:30 AM", ArrivalTime: "08:15 AM"},
		},
	},
	"classic": {
		Name:    "classic",
		Rows:    10,
		Letters: DefaultLetters,
		Tiers: TierTable{
			{Name: "premium", MaxRow: 3, Price: 299},
			{Name: "standard", MaxRow: 7, Price: 199},
			{Name: "economy", Price: 149},
		},
		Unavailable: []string{"2C", "5A", "8E"},
		Flights: []models.Flight{
			{ID: "F1", Airline: "American Airlines", FlightNumber: "AA123", Origin: "New York", Destination: "Los Angeles", DepartureTime: "08:00 AM", ArrivalTime: "11:00 AM"},
			{ID: "F2", Airline: "Delta Airlines", FlightNumber: "DL456", Origin: "Chicago", Destination: "Miami", DepartureTime: "10:30 AM", ArrivalTime: "02:00 PM"},
			{ID: "F3", Airline: "United Airlines", FlightNumber: "UA789", Origin: "San Francisco", Destination: "Seattle", DepartureTime: "01:15 PM", ArrivalTime: "03:45 PM"},
			{ID: "F4", Airline: "Southwest", FlightNumber: "SW101", Origin: "Denver", Destination: "Las Vegas", DepartureTime: "04:20 PM", ArrivalTime: "06:00 PM"},
		},
	},
}

// LookupProfile returns a copy of a built-in profile.
func LookupProfile(name string) (Profile, error) {
	p, ok := profiles[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q: %w", name, ErrNotFound)
	}
	return p.clone(), nil
}

// ProfileNames lists the built-in profiles in name order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate reports the first structural problem with the profile.
func (p Profile) Validate() error {
	if p.Rows <= 0 {
		return fmt.Errorf("profile %q: rows must be positive", p.Name)
	}
	if len(p.Letters) == 0 {
		return fmt.Errorf("profile %q: no seat letters", p.Name)
	}
	seen := make(map[string]bool, len(p.Letters))
	for _, l := range p.Letters {
		if l == "" || seen[l] {
			return fmt.Errorf("profile %q: invalid or duplicate letter %q", p.Name, l)
		}
		seen[l] = true
	}
	if err := p.Tiers.Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return nil
}

// Build constructs the catalog and inventory described by the profile.
func (p Profile) Build() (*Catalog, *Inventory, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	catalog, err := NewCatalog(p.Flights)
	if err != nil {
		return nil, nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	inventory, err := NewInventory(p.Rows, p.Letters, p.Tiers, p.Unavailable)
	if err != nil {
		return nil, nil, fmt.Errorf("profile %q: %w", p.Name, err)
	}
	return catalog, inventory, nil
}

func (p Profile) clone() Profile {
	c := p
	c.Letters = append([]string(nil), p.Letters...)
	c.Tiers = append(TierTable(nil), p.Tiers...)
	c.Unavailable = append([]string(nil), p.Unavailable...)
	c.Flights = append([]models.Flight(nil), p.Flights...)
	return c
}
