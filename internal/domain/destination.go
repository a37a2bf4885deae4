package domain

import (
	"time"

	"github.com/google/uuid"
)

// Destination is a wishlist entry: a place of interest not yet tied to any
// concrete trip. Destinations are independent of trips — deleting either
// side never touches the other.
type Destination struct {
	ID          uuid.UUID
	Name        string
	Country     string
	CountryCode string
	ImageURL    string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
