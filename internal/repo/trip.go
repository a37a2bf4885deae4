// Package repo contains all database access logic for the travel planner.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
//
// Expenses and itinerary are jsonb columns on the trip row and are replaced
// wholesale — there is no per-expense or per-day row to update.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// List returns all trips ordered by created_at descending.
	List(ctx context.Context) ([]domain.Trip, error)

	// Update overwrites the scalar fields of an existing trip and returns the
	// updated record. The expenses and itinerary columns are untouched.
	// Returns domain.ErrNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// ReplaceExpenses overwrites the trip's stored expense list and returns
	// the updated record. Returns domain.ErrNotFound if the trip is gone.
	ReplaceExpenses(ctx context.Context, id uuid.UUID, expenses []domain.Expense) (domain.Trip, error)

	// ReplaceItinerary overwrites the trip's stored itinerary and returns
	// the updated record. Returns domain.ErrNotFound if the trip is gone.
	ReplaceItinerary(ctx context.Context, id uuid.UUID, itinerary []domain.TripDay) (domain.Trip, error)

	// Delete removes a trip by ID, discarding its nested expenses and
	// itinerary with the row. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, destination, country, country_code, start_date, end_date,
		status, budget, currency, expenses, itinerary, notes, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (destination, country, country_code, start_date, end_date,
		                   status, budget, currency, expenses, itinerary, notes)
		VALUES (@destination, @country, @country_code, @start_date, @end_date,
		        @status, @budget, @currency, @expenses, @itinerary, @notes)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"destination":  trip.Destination,
		"country":      trip.Country,
		"country_code": trip.CountryCode,
		"start_date":   trip.StartDate,
		"end_date":     trip.EndDate,
		"status":       string(trip.Status),
		"budget":       trip.Budget,
		"currency":     trip.Currency,
		"expenses":     notNil(trip.Expenses),
		"itinerary":    notNil(trip.Itinerary),
		"notes":        trip.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all trips ordered by created_at descending (newest first),
// matching the order the dashboard presents them in.
func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

// Update overwrites the scalar fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination  = @destination,
		    country      = @country,
		    country_code = @country_code,
		    start_date   = @start_date,
		    end_date     = @end_date,
		    status       = @status,
		    budget       = @budget,
		    currency     = @currency,
		    notes        = @notes,
		    updated_at   = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":           trip.ID,
		"destination":  trip.Destination,
		"country":      trip.Country,
		"country_code": trip.CountryCode,
		"start_date":   trip.StartDate,
		"end_date":     trip.EndDate,
		"status":       string(trip.Status),
		"budget":       trip.Budget,
		"currency":     trip.Currency,
		"notes":        trip.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}
	return result, nil
}

// ReplaceExpenses overwrites the expenses jsonb column for one trip.
func (r *pgTripRepo) ReplaceExpenses(ctx context.Context, id uuid.UUID, expenses []domain.Expense) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET expenses   = @expenses,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "expenses": notNil(expenses)})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.ReplaceExpenses: %w", err)
	}
	return result, nil
}

// ReplaceItinerary overwrites the itinerary jsonb column for one trip.
func (r *pgTripRepo) ReplaceItinerary(ctx context.Context, id uuid.UUID, itinerary []domain.TripDay) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET itinerary  = @itinerary,
		    updated_at = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "itinerary": notNil(itinerary)})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.ReplaceItinerary: %w", err)
	}
	return result, nil
}

// Delete removes a trip by primary key.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip.
// The expenses and itinerary jsonb columns unmarshal straight into the
// domain slices; unknown enum values stored in them fail the scan because
// the enum types reject them in UnmarshalText.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		id        pgtype.UUID
		startDate pgtype.Date
		endDate   pgtype.Date
	)

	err := s.Scan(&id, &t.Destination, &t.Country, &t.CountryCode, &startDate, &endDate,
		&t.Status, &t.Budget, &t.Currency, &t.Expenses, &t.Itinerary, &t.Notes,
		&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	t.StartDate = startDate.Time
	t.EndDate = endDate.Time
	if t.Expenses == nil {
		t.Expenses = []domain.Expense{}
	}
	if t.Itinerary == nil {
		t.Itinerary = []domain.TripDay{}
	}

	return t, nil
}

// notNil maps a nil slice to an empty one so the jsonb column stores [],
// never SQL NULL or json null.
func notNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
