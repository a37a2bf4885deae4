// Package service contains the business logic for the travel planner.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
//
// The pure reducers (ComputeTripStats, ExpensesByCategory, ExpandItinerary)
// also live here; they take plain domain values and never touch the repo.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
)

// defaultCurrency is used when a trip is created without one.
const defaultCurrency = "EUR"

// TripService implements business logic for Trip operations, including the
// nested expense and itinerary mutations.
//
// The service holds no state of its own: every mutation loads the current
// row, writes the modified list back, and returns the row the database
// confirmed. A failed write therefore never leaves a phantom expense or
// activity behind — there is nothing local to diverge.
type TripService struct {
	repo repo.TripRepo
	now  func() time.Time // injectable for tests
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(r repo.TripRepo) *TripService {
	return &TripService{repo: r, now: time.Now}
}

// Create validates and persists a new trip.
// New trips always start with empty expense and itinerary lists; an empty
// status defaults to planning and an empty currency to EUR.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if trip.Status == "" {
		trip.Status = domain.StatusPlanning
	}
	if trip.Currency == "" {
		trip.Currency = defaultCurrency
	}
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	trip.Expenses = []domain.Expense{}
	trip.Itinerary = []domain.TripDay{}

	result, err := s.repo.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip with its itinerary expanded to cover every
// calendar day of the trip, reconciling the stored (possibly sparse) list
// against the date range.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}

	days, err := ExpandItinerary(trip.StartDate, trip.EndDate, trip.Itinerary)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	trip.Itinerary = days

	return trip, nil
}

// List returns all trips, newest first.
// Always returns a non-nil slice so callers can safely range over it.
// Itineraries are returned as stored; use GetByID for the expanded view.
func (s *TripService) List(ctx context.Context) ([]domain.Trip, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update validates and persists changes to a trip's scalar fields.
// The nested expense and itinerary lists are not touched here; the stored
// itinerary is re-reconciled against the (possibly changed) date range on
// the next read.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.repo.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID. Its expenses and itinerary go with the row.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Stats reduces the full trip collection to the dashboard summary.
func (s *TripService) Stats(ctx context.Context) (TripStats, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return TripStats{}, fmt.Errorf("service.TripService.Stats: %w", err)
	}
	return ComputeTripStats(trips, s.now()), nil
}

// ExpenseStats returns the per-category expense breakdown across all trips.
func (s *TripService) ExpenseStats(ctx context.Context) (ExpenseBreakdown, error) {
	trips, err := s.repo.List(ctx)
	if err != nil {
		return ExpenseBreakdown{}, fmt.Errorf("service.TripService.ExpenseStats: %w", err)
	}
	return ExpensesByCategory(trips), nil
}

// ExpenseInput carries the caller-supplied fields of a new expense.
// ID and date are assigned by the service.
type ExpenseInput struct {
	Category    domain.ExpenseCategory
	Description string
	Amount      float64
	Currency    string
}

// AddExpense appends a new expense to the trip's list and writes the whole
// list back. The returned trip is the confirmed post-write record.
// Returns domain.ErrNotFound if the trip does not exist and
// domain.ErrValidation for bad input.
func (s *TripService) AddExpense(ctx context.Context, tripID uuid.UUID, in ExpenseInput) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddExpense: %w", err)
	}
	if err := validateExpenseInput(in); err != nil {
		return domain.Trip{}, err
	}

	if in.Currency == "" {
		in.Currency = trip.Currency
	}
	expense := domain.Expense{
		ID:          uuid.New(),
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Currency:    in.Currency,
		Date:        s.now().UTC(),
	}

	updated := append(append([]domain.Expense{}, trip.Expenses...), expense)

	result, err := s.repo.ReplaceExpenses(ctx, tripID, updated)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddExpense: %w", err)
	}
	return result, nil
}

// RemoveExpense filters the expense with the given ID out of the trip's list
// and writes the remainder back. Removing an ID that is not present is a
// no-op success (idempotent delete) — no write is issued.
func (s *TripService) RemoveExpense(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Trip, error) {
	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveExpense: %w", err)
	}

	updated := make([]domain.Expense, 0, len(trip.Expenses))
	for _, e := range trip.Expenses {
		if e.ID != expenseID {
			updated = append(updated, e)
		}
	}
	if len(updated) == len(trip.Expenses) {
		return trip, nil
	}

	result, err := s.repo.ReplaceExpenses(ctx, tripID, updated)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveExpense: %w", err)
	}
	return result, nil
}

// ActivityInput carries the caller-supplied fields of a new day activity.
// The ID is assigned by the service.
type ActivityInput struct {
	Period      domain.Period
	Title       string
	Description string
	Location    string
	Time        string
}

// AddActivity appends an activity to the day at dayIndex in the trip's
// expanded itinerary and persists the full expanded list. The stored
// itinerary is positional, so the expansion is what gets written —
// gaps become explicit empty days.
//
// Returns domain.ErrValidation when dayIndex is outside [0, dayCount) or
// the activity fields are invalid; domain.ErrNotFound when the trip is gone.
func (s *TripService) AddActivity(ctx context.Context, tripID uuid.UUID, dayIndex int, in ActivityInput) (domain.Trip, error) {
	_, days, err := s.expandedItinerary(ctx, tripID, dayIndex)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddActivity: %w", err)
	}
	if err := validateActivityInput(in); err != nil {
		return domain.Trip{}, err
	}

	activity := domain.DayActivity{
		ID:          uuid.New(),
		Period:      in.Period,
		Title:       in.Title,
		Description: in.Description,
		Location:    in.Location,
		Time:        in.Time,
	}
	days[dayIndex].Activities = append(days[dayIndex].Activities, activity)

	result, err := s.repo.ReplaceItinerary(ctx, tripID, days)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.AddActivity: %w", err)
	}
	return result, nil
}

// RemoveActivity filters the activity with the given ID out of the day at
// dayIndex and persists the full expanded itinerary. An unknown activity ID
// within a valid day is a no-op success; an out-of-range dayIndex is a
// validation error.
func (s *TripService) RemoveActivity(ctx context.Context, tripID uuid.UUID, dayIndex int, activityID uuid.UUID) (domain.Trip, error) {
	trip, days, err := s.expandedItinerary(ctx, tripID, dayIndex)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveActivity: %w", err)
	}

	day := days[dayIndex]
	updated := make([]domain.DayActivity, 0, len(day.Activities))
	for _, a := range day.Activities {
		if a.ID != activityID {
			updated = append(updated, a)
		}
	}
	if len(updated) == len(day.Activities) {
		trip.Itinerary = days
		return trip, nil
	}
	days[dayIndex].Activities = updated

	result, err := s.repo.ReplaceItinerary(ctx, tripID, days)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.RemoveActivity: %w", err)
	}
	return result, nil
}

// expandedItinerary loads a trip, expands its itinerary, and bounds-checks
// dayIndex against the expanded length.
func (s *TripService) expandedItinerary(ctx context.Context, tripID uuid.UUID, dayIndex int) (domain.Trip, []domain.TripDay, error) {
	trip, err := s.repo.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, nil, err
	}

	days, err := ExpandItinerary(trip.StartDate, trip.EndDate, trip.Itinerary)
	if err != nil {
		return domain.Trip{}, nil, err
	}

	if dayIndex < 0 || dayIndex >= len(days) {
		return domain.Trip{}, nil, fmt.Errorf("%w: day index %d out of range [0, %d)",
			domain.ErrValidation, dayIndex, len(days))
	}

	return trip, days, nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Destination and country must be non-empty (whitespace-only rejected).
//   - EndDate must not be before StartDate.
//   - Status must be a known value.
//   - Budget must not be negative.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	if strings.TrimSpace(trip.Country) == "" {
		return fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	if !trip.Status.Valid() {
		return fmt.Errorf("%w: unknown trip status %q", domain.ErrValidation, trip.Status)
	}
	if trip.Budget < 0 {
		return fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	return nil
}

// validateExpenseInput enforces rules for new expenses.
func validateExpenseInput(in ExpenseInput) error {
	if !in.Category.Valid() {
		return fmt.Errorf("%w: unknown expense category %q", domain.ErrValidation, in.Category)
	}
	if strings.TrimSpace(in.Description) == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if in.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", domain.ErrValidation)
	}
	return nil
}

// validateActivityInput enforces rules for new day activities.
func validateActivityInput(in ActivityInput) error {
	if !in.Period.Valid() {
		return fmt.Errorf("%w: unknown period %q", domain.ErrValidation, in.Period)
	}
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	return nil
}
