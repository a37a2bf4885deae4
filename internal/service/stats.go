package service

import (
	"time"

	"github.com/pkordes/travel-planner/internal/domain"
)

// TripStats is the dashboard summary derived from the full trip collection.
type TripStats struct {
	TotalTrips      int
	TotalBudget     float64
	TotalExpenses   float64
	AvailableBudget float64
	UpcomingTrips   int
	ByStatus        StatusCounts
}

// StatusCounts holds the number of trips per status. Statuses with no trips
// stay at zero.
type StatusCounts struct {
	Planning  int
	Booked    int
	Completed int
}

// Total is the sum of all per-status counts; always equals TotalTrips.
func (c StatusCounts) Total() int {
	return c.Planning + c.Booked + c.Completed
}

// ComputeTripStats reduces a trip collection to its dashboard figures.
// It is a pure function of trips and now: no caching, no mutation of the
// input. An empty collection yields the zero value. A trip counts as
// upcoming when it is booked and starts strictly after now.
//
// Amounts are summed as-is; negative budgets or expense amounts pass
// through unchanged (input validation is the caller's concern).
func ComputeTripStats(trips []domain.Trip, now time.Time) TripStats {
	var stats TripStats
	stats.TotalTrips = len(trips)

	for _, t := range trips {
		stats.TotalBudget += t.Budget
		stats.TotalExpenses += t.TotalExpenses()

		if t.Status == domain.StatusBooked && t.StartDate.After(now) {
			stats.UpcomingTrips++
		}

		switch t.Status {
		case domain.StatusPlanning:
			stats.ByStatus.Planning++
		case domain.StatusBooked:
			stats.ByStatus.Booked++
		case domain.StatusCompleted:
			stats.ByStatus.Completed++
		}
	}

	stats.AvailableBudget = stats.TotalBudget - stats.TotalExpenses
	return stats
}

// CategoryTotal is one slice of the per-category expense breakdown.
type CategoryTotal struct {
	Category domain.ExpenseCategory
	Amount   float64
}

// ExpenseBreakdown groups expense amounts by category.
// Categories holds only categories with at least one expense, ordered by
// first occurrence across the input; Total is the grand total and always
// equals the sum over Categories.
type ExpenseBreakdown struct {
	Categories []CategoryTotal
	Total      float64
}

// ExpensesByCategory sums all expense amounts across trips, grouped by
// category. Pure; no rounding is applied — formatting is a presentation
// concern.
func ExpensesByCategory(trips []domain.Trip) ExpenseBreakdown {
	var out ExpenseBreakdown
	index := make(map[domain.ExpenseCategory]int)

	for _, t := range trips {
		for _, e := range t.Expenses {
			i, ok := index[e.Category]
			if !ok {
				i = len(out.Categories)
				index[e.Category] = i
				out.Categories = append(out.Categories, CategoryTotal{Category: e.Category})
			}
			out.Categories[i].Amount += e.Amount
			out.Total += e.Amount
		}
	}

	return out
}
