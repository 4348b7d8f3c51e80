// Package menu implements the numbered text console over the reservation
// engine.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/reservation"
)

// Engine is the subset of reservation.Engine the console drives
type Engine interface {
	ListFlights() []models.Flight
	ListSeats() []models.Seat
	SelectFlight(id string) (models.Flight, error)
	SelectSeat(id string) (models.Seat, error)
	Confirm() (models.Receipt, error)
	Reset()
	State() models.ReservationState
	AvailableSeats() int
}

// Seat map symbols
const (
	SymbolAvailable   = "O"
	SymbolUnavailable = "X"
	SymbolSelected    = "S"
	SymbolMissing     = "?"
)

type styles struct {
	title       lipgloss.Style
	available   lipgloss.Style
	unavailable lipgloss.Style
	selected    lipgloss.Style
	missing     lipgloss.Style
	errText     lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:       r.NewStyle().Bold(true),
		available:   r.NewStyle().Foreground(lipgloss.Color("2")),
		unavailable: r.NewStyle().Foreground(lipgloss.Color("1")),
		selected:    r.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		missing:     r.NewStyle().Faint(true),
		errText:     r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Console reads menu choices from in and writes to out
type Console struct {
	engine Engine
	in     *bufio.Scanner
	out    io.Writer
	styles styles
}

// New creates a Console. Colours are only emitted when out is a terminal.
func New(engine Engine, in io.Reader, out io.Writer) *Console {
	return &Console{
		engine: engine,
		in:     bufio.NewScanner(in),
		out:    out,
		styles: newStyles(lipgloss.NewRenderer(out)),
	}
}

// Run loops over the menu until the user exits or input ends.
func (c *Console) Run() error {
	c.println(c.styles.title.Render("Welcome to the Airplane Reservation System"))

	for {
		c.printMenu()
		choice, ok := c.prompt("Choose an option: ")
		if !ok {
			c.println("")
			return c.in.Err()
		}

		switch choice {
		case "1":
			c.listFlights()
		case "2":
			c.chooseFlight()
		case "3":
			c.showSeatMap()
		case "4":
			c.chooseSeat()
		case "5":
			c.confirm()
		case "6":
			c.engine.Reset()
			c.println("Reservation state reset.")
		case "7":
			c.showStatus()
		case "0":
			c.println("Goodbye!")
			return nil
		default:
			c.println("Unknown option. Try again.")
		}
	}
}

func (c *Console) printMenu() {
	c.println("")
	c.println("1) List flights")
	c.println("2) Select flight")
	c.println("3) Show seat map")
	c.println("4) Select seat")
	c.println("5) Confirm reservation")
	c.println("6) Reset reservation")
	c.println("7) Show status")
	c.println("0) Exit")
}

func (c *Console) listFlights() []models.Flight {
	flights := c.engine.ListFlights()
	c.println("Available flights:")
	for i, f := range flights {
		c.printf("%d) %s\n", i+1, FormatFlight(f))
	}
	return flights
}

func (c *Console) chooseFlight() {
	flights := c.listFlights()
	line, ok := c.prompt("Enter flight number to select (or 0 to cancel): ")
	if !ok || line == "0" {
		return
	}

	idx, err := strconv.Atoi(line)
	if err != nil || idx < 1 || idx > len(flights) {
		c.printError(errors.New("invalid selection"))
		return
	}

	f, err := c.engine.SelectFlight(flights[idx-1].ID)
	if err != nil {
		c.printError(err)
		return
	}
	c.printf("Selected: %s\n", FormatFlight(f))
}

func (c *Console) showSeatMap() {
	state := c.engine.State()
	if state.Flight == nil {
		c.println("No flight selected. Choose a flight first.")
		return
	}
	c.printSeatMap(state)
	if state.Seat == nil {
		c.println("Currently selected seat: None")
	} else {
		c.printf("Currently selected seat: %s\n", state.Seat.ID)
	}
}

func (c *Console) chooseSeat() {
	state := c.engine.State()
	if state.Flight == nil {
		c.println("No flight selected. Choose a flight first.")
		return
	}
	c.printSeatMap(state)

	line, ok := c.prompt("Enter seat id to select (e.g. 3B) or 0 to cancel: ")
	if !ok || line == "0" {
		return
	}

	seat, err := c.engine.SelectSeat(strings.ToUpper(line))
	if err != nil {
		c.printError(err)
		return
	}
	c.printf("Selected seat %s (Price: $%.2f)\n", seat.ID, seat.Price)
}

func (c *Console) confirm() {
	receipt, err := c.engine.Confirm()
	if err != nil {
		c.printError(err)
		return
	}
	c.printf("Reservation confirmed for seat %s on %s. Total: $%.2f (receipt %s)\n",
		receipt.Seat.ID, receipt.Flight.FlightNumber, receipt.Total, receipt.ID)
}

func (c *Console) showStatus() {
	state := c.engine.State()
	c.printf("Phase: %s\n", state.Phase)
	if state.Flight != nil {
		c.printf("Flight: %s\n", FormatFlight(*state.Flight))
	} else {
		c.println("Flight: None")
	}
	if state.Seat != nil {
		c.printf("Seat: %s ($%.2f)\n", state.Seat.ID, state.Seat.Price)
	} else {
		c.println("Seat: None")
	}
	c.printf("Confirmed: %t\n", state.Confirmed)
	c.printf("Seats available: %d\n", c.engine.AvailableSeats())
}

func (c *Console) printSeatMap(state models.ReservationState) {
	selected := ""
	if state.Seat != nil {
		selected = state.Seat.ID
	}
	c.out.Write([]byte(c.RenderSeatMap(c.engine.ListSeats(), selected)))
}

// RenderSeatMap draws the seat grid, one row per line, followed by a legend.
// Columns follow the order letters first appear in seats. Grid positions with
// no seat are drawn as missing.
func (c *Console) RenderSeatMap(seats []models.Seat, selectedID string) string {
	byID := make(map[string]models.Seat, len(seats))
	seen := make(map[string]bool)
	var letters []string
	rows := 0
	for _, s := range seats {
		byID[s.ID] = s
		if !seen[s.Letter] {
			seen[s.Letter] = true
			letters = append(letters, s.Letter)
		}
		if s.Row > rows {
			rows = s.Row
		}
	}

	var b strings.Builder
	b.WriteString("    ")
	for _, l := range letters {
		b.WriteString(l + " ")
	}
	b.WriteString("\n")

	for row := 1; row <= rows; row++ {
		fmt.Fprintf(&b, "%2d: ", row)
		for _, l := range letters {
			b.WriteString(c.seatSymbol(byID, reservation.SeatID(row, l), selectedID) + " ")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Legend: %s available  %s unavailable  %s selected  %s missing\n",
		c.styles.available.Render(SymbolAvailable),
		c.styles.unavailable.Render(SymbolUnavailable),
		c.styles.selected.Render(SymbolSelected),
		c.styles.missing.Render(SymbolMissing))
	return b.String()
}

func (c *Console) seatSymbol(byID map[string]models.Seat, id, selectedID string) string {
	seat, ok := byID[id]
	switch {
	case !ok:
		return c.styles.missing.Render(SymbolMissing)
	case !seat.Available:
		return c.styles.unavailable.Render(SymbolUnavailable)
	case id == selectedID:
		return c.styles.selected.Render(SymbolSelected)
	default:
		return c.styles.available.Render(SymbolAvailable)
	}
}

// FormatFlight renders a flight as a single menu line.
func FormatFlight(f models.Flight) string {
	return fmt.Sprintf("%s %s: %s -> %s (%s - %s)",
		f.Airline, f.FlightNumber, f.Origin, f.Destination, f.DepartureTime, f.ArrivalTime)
}

func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) printError(err error) {
	c.println(c.styles.errText.Render("Error: " + err.Error()))
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
