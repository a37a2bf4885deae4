package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
)

// ExpandItinerary reconciles a trip's stored itinerary against its date
// range, producing one TripDay per calendar day from start to end inclusive.
//
// Day i (0-based) gets the date start + i days and the activities of
// persisted[i] when that entry exists; missing entries become empty days and
// entries beyond the date range are dropped. Stored day IDs are not trusted
// (the stored array is positional and may be stale after a date change), so
// every day gets a fresh ID. Expanding twice therefore yields identical
// dates and activities, just different IDs.
//
// Returns domain.ErrValidation when end is before start — a negative-length
// itinerary is a data integrity problem, never silently clamped.
func ExpandItinerary(start, end time.Time, persisted []domain.TripDay) ([]domain.TripDay, error) {
	start = dateOnly(start)
	end = dateOnly(end)

	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date %s before start date %s",
			domain.ErrValidation, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	count := int(end.Sub(start).Hours()/24) + 1
	days := make([]domain.TripDay, count)
	for i := range days {
		day := domain.TripDay{
			ID:         uuid.New(),
			Date:       start.AddDate(0, 0, i),
			Activities: []domain.DayActivity{},
		}
		if i < len(persisted) && persisted[i].Activities != nil {
			day.Activities = persisted[i].Activities
		}
		days[i] = day
	}

	return days, nil
}

// dateOnly truncates t to UTC midnight, discarding the clock time.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
