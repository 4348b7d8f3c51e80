package database

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vishaal-oss/Airplane-Reservation-System/shared/models"
)

var (
	ErrEmptyCatalog = errors.New("flight catalog is empty")
)

// Schema creates the flights table read by GetAllFlights
//
//go:embed schema.sql
var Schema string

// Execer is the subset of pgxpool.Pool used to apply the schema
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// EnsureSchema creates the flights table if it does not exist yet
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}

// Querier is the subset of pgxpool.Pool used by the repository
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Repository loads the flight catalog from Postgres
type Repository struct {
	db Querier
}

// NewRepository creates a new repository
func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// Connect opens a connection pool and verifies it with a ping
func Connect(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return pool, nil
}

// --- Flight Operations ---

// GetAllFlights returns the offered flights in catalog order
func (r *Repository) GetAllFlights(ctx context.Context) ([]models.Flight, error) {
	query := `
		SELECT id, airline, flight_number, origin, destination, departure_time, arrival_time
		FROM flights
		ORDER BY position ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	var flights []models.Flight
	for rows.Next() {
		var f models.Flight
		err := rows.Scan(
			&f.ID, &f.Airline, &f.FlightNumber, &f.Origin,
			&f.Destination, &f.DepartureTime, &f.ArrivalTime,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		flights = append(flights, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read flights: %w", err)
	}

	if len(flights) == 0 {
		return nil, ErrEmptyCatalog
	}
	return flights, nil
}
