package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/travel-planner/internal/domain"
)

// DestinationRepo defines the persistence operations for wishlist entries.
type DestinationRepo interface {
	// Create inserts a new destination and returns the persisted record.
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)

	// GetByID retrieves a single destination by its UUID primary key.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)

	// List returns all destinations ordered by created_at descending.
	List(ctx context.Context) ([]domain.Destination, error)

	// Update overwrites the mutable fields of an existing destination and
	// returns the updated record. Returns domain.ErrNotFound if it is gone.
	Update(ctx context.Context, dest domain.Destination) (domain.Destination, error)

	// Delete removes a destination by ID. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

const destinationColumns = `id, name, country, country_code, image_url, notes, created_at, updated_at`

// Create inserts a new wishlist row and returns the full persisted record.
func (r *pgDestinationRepo) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	const q = `
		INSERT INTO wishlist (name, country, country_code, image_url, notes)
		VALUES (@name, @country, @country_code, @image_url, @notes)
		RETURNING ` + destinationColumns

	args := pgx.NamedArgs{
		"name":         dest.Name,
		"country":      dest.Country,
		"country_code": dest.CountryCode,
		"image_url":    dest.ImageURL,
		"notes":        dest.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a destination by primary key.
func (r *pgDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	const q = `SELECT ` + destinationColumns + ` FROM wishlist WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all destinations ordered by created_at descending.
func (r *pgDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	const q = `SELECT ` + destinationColumns + ` FROM wishlist ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	defer rows.Close()

	var dests []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.List: scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: rows: %w", err)
	}

	return dests, nil
}

// Update overwrites the mutable fields of a destination and returns the
// updated record.
func (r *pgDestinationRepo) Update(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	const q = `
		UPDATE wishlist
		SET name         = @name,
		    country      = @country,
		    country_code = @country_code,
		    image_url    = @image_url,
		    notes        = @notes,
		    updated_at   = now()
		WHERE id = @id
		RETURNING ` + destinationColumns

	args := pgx.NamedArgs{
		"id":           dest.ID,
		"name":         dest.Name,
		"country":      dest.Country,
		"country_code": dest.CountryCode,
		"image_url":    dest.ImageURL,
		"notes":        dest.Notes,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a destination by primary key.
func (r *pgDestinationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM wishlist WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanDestination maps a single database row into a domain.Destination.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d  domain.Destination
		id pgtype.UUID
	)

	err := s.Scan(&id, &d.Name, &d.Country, &d.CountryCode, &d.ImageURL, &d.Notes,
		&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}

	d.ID = uuid.UUID(id.Bytes)
	return d, nil
}
