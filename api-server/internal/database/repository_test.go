package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRows struct {
	rows    [][]string
	pos     int
	scanErr error
	err     error
	closed  bool
}

func (f *fakeRows) Close()                                       { f.closed = true }
func (f *fakeRows) Err() error                                   { return f.err }
func (f *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (f *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (f *fakeRows) RawValues() [][]byte                          { return nil }
func (f *fakeRows) Conn() *pgx.Conn                              { return nil }

func (f *fakeRows) Next() bool {
	if f.pos >= len(f.rows) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeRows) Scan(dest ...any) error {
	if f.scanErr != nil {
		return f.scanErr
	}
	row := f.rows[f.pos-1]
	if len(dest) != len(row) {
		return fmt.Errorf("scan: got %d destinations for %d columns", len(dest), len(row))
	}
	for i, d := range dest {
		*(d.(*string)) = row[i]
	}
	return nil
}

func (f *fakeRows) Values() ([]any, error) {
	row := f.rows[f.pos-1]
	out := make([]any, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out, nil
}

type fakeQuerier struct {
	rows *fakeRows
	err  error
	sql  string
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.sql = sql
	if q.err != nil {
		return nil, q.err
	}
	return q.rows, nil
}

func TestRepository_GetAllFlights(t *testing.T) {
	rows := &fakeRows{rows: [][]string{
		{"1", "Sky Airlines", "SA123", "New York (JFK)", "Los Angeles (LAX)", "08:00 AM", "11:30 AM"},
		{"2", "Cloud Express", "CE456", "Chicago (ORD)", "Miami (MIA)", "02:15 PM", "05:45 PM"},
	}}
	q := &fakeQuerier{rows: rows}

	flights, err := NewRepository(q).GetAllFlights(context.Background())
	require.NoError(t, err)
	require.Len(t, flights, 2)
	assert.Equal(t, "SA123", flights[0].FlightNumber)
	assert.Equal(t, "Miami (MIA)", flights[1].Destination)
	assert.Equal(t, "05:45 PM", flights[1].ArrivalTime)
	assert.Contains(t, q.sql, "FROM flights")
	assert.True(t, rows.closed)
}

func TestRepository_GetAllFlights_Errors(t *testing.T) {
	queryErr := errors.New("connection refused")
	scanErr := errors.New("bad column")
	iterErr := errors.New("stream reset")
	oneRow := [][]string{{"1", "a", "b", "c", "d", "e", "f"}}

	tests := []struct {
		name    string
		querier *fakeQuerier
		wantErr error
	}{
		{"query fails", &fakeQuerier{err: queryErr}, queryErr},
		{"scan fails", &fakeQuerier{rows: &fakeRows{rows: oneRow, scanErr: scanErr}}, scanErr},
		{"iteration fails", &fakeQuerier{rows: &fakeRows{rows: oneRow, err: iterErr}}, iterErr},
		{"empty table", &fakeQuerier{rows: &fakeRows{}}, ErrEmptyCatalog},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRepository(tt.querier).GetAllFlights(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

type fakeExecer struct {
	err error
	sql string
}

func (e *fakeExecer) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	e.sql = sql
	return pgconn.CommandTag{}, e.err
}

func TestEnsureSchema(t *testing.T) {
	e := &fakeExecer{}
	require.NoError(t, EnsureSchema(context.Background(), e))
	assert.Equal(t, Schema, e.sql)
	assert.Contains(t, e.sql, "CREATE TABLE IF NOT EXISTS flights")

	failing := &fakeExecer{err: errors.New("permission denied")}
	err := EnsureSchema(context.Background(), failing)
	assert.ErrorIs(t, err, failing.err)
}

func TestSchema_CoversQueriedColumns(t *testing.T) {
	q := &fakeQuerier{rows: &fakeRows{}}
	_, _ = NewRepository(q).GetAllFlights(context.Background())

	for _, column := range []string{
		"id", "position", "airline", "flight_number", "origin",
		"destination", "departure_time", "arrival_time",
	} {
		assert.Contains(t, q.sql, column)
		assert.True(t, strings.Contains(Schema, column+" "), "schema lacks column %s", column)
	}
}
