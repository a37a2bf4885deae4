// Package domain contains the core data types for the travel planner.
// This package has no dependencies beyond uuid and is imported by every
// other internal package (repo, service, handler).
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a planned trip.
type TripStatus string

const (
	StatusPlanning  TripStatus = "planning"
	StatusBooked    TripStatus = "booked"
	StatusCompleted TripStatus = "completed"
)

// Statuses lists all valid trip statuses in display order.
var Statuses = []TripStatus{StatusPlanning, StatusBooked, StatusCompleted}

// Valid reports whether s is one of the known trip statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case StatusPlanning, StatusBooked, StatusCompleted:
		return true
	}
	return false
}

// UnmarshalText implements encoding.TextUnmarshaler so that JSON decoding —
// request bodies and jsonb column scans alike — rejects unknown status
// values at the boundary instead of letting them leak into the domain.
func (s *TripStatus) UnmarshalText(text []byte) error {
	v := TripStatus(text)
	if !v.Valid() {
		return fmt.Errorf("%w: unknown trip status %q", ErrValidation, string(text))
	}
	*s = v
	return nil
}

// Trip represents a single planned journey.
// A trip is the top-level aggregate; expenses and itinerary days belong to
// the trip and are stored inside the trip row, not as separate tables.
type Trip struct {
	ID          uuid.UUID
	Destination string
	Country     string
	CountryCode string // optional ISO-3166 alpha-2 code
	StartDate   time.Time
	EndDate     time.Time
	Status      TripStatus
	Budget      float64
	Currency    string
	Expenses    []Expense
	Itinerary   []TripDay
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TotalExpenses sums all expense amounts recorded against the trip.
func (t Trip) TotalExpenses() float64 {
	var sum float64
	for _, e := range t.Expenses {
		sum += e.Amount
	}
	return sum
}

// Remaining is the trip budget minus all recorded expenses.
// Goes negative when the trip is over budget.
func (t Trip) Remaining() float64 {
	return t.Budget - t.TotalExpenses()
}
