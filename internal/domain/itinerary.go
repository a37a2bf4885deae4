package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Period is the part of the day an activity is planned for.
type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// Valid reports whether p is one of the known day periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodMorning, PeriodAfternoon, PeriodEvening:
		return true
	}
	return false
}

// UnmarshalText rejects unknown period values at the decode boundary.
func (p *Period) UnmarshalText(text []byte) error {
	v := Period(text)
	if !v.Valid() {
		return fmt.Errorf("%w: unknown period %q", ErrValidation, string(text))
	}
	*p = v
	return nil
}

// TripDay is one calendar day of a trip's itinerary.
//
// The stored itinerary is indexed positionally against the trip's date range
// and may be sparse or stale; the full day-by-day sequence is derived on
// read, not trusted from storage. Day IDs are therefore not stable across
// reads. Both TripDay and DayActivity carry json tags because they are
// persisted inside the trip row's jsonb column.
type TripDay struct {
	ID         uuid.UUID     `json:"id"`
	Date       time.Time     `json:"date"`
	Activities []DayActivity `json:"activities"`
}

// DayActivity is a single planned event within a day.
type DayActivity struct {
	ID          uuid.UUID `json:"id"`
	Period      Period    `json:"period"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	Time        string    `json:"time,omitempty"` // free-text "15:30" style, not validated
}
