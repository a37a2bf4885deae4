package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/repo"
	"github.com/pkordes/travel-planner/internal/service"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field — set only the ones your test needs.
// This is idiomatic Go: no mock generation library required for simple cases.
type mockTripRepo struct {
	create           func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID          func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	list             func(ctx context.Context) ([]domain.Trip, error)
	update           func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	replaceExpenses  func(ctx context.Context, id uuid.UUID, expenses []domain.Expense) (domain.Trip, error)
	replaceItinerary func(ctx context.Context, id uuid.UUID, itinerary []domain.TripDay) (domain.Trip, error)
	delete           func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	return m.list(ctx)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) ReplaceExpenses(ctx context.Context, id uuid.UUID, expenses []domain.Expense) (domain.Trip, error) {
	return m.replaceExpenses(ctx, id, expenses)
}
func (m *mockTripRepo) ReplaceItinerary(ctx context.Context, id uuid.UUID, itinerary []domain.TripDay) (domain.Trip, error) {
	return m.replaceItinerary(ctx, id, itinerary)
}
func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func validTrip() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Destination: "Lisbon",
		Country:     "Portugal",
		StartDate:   time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC),
		Status:      domain.StatusPlanning,
		Budget:      2500,
		Currency:    "EUR",
		Expenses:    []domain.Expense{},
		Itinerary:   []domain.TripDay{},
	}
}

func echoRepo() *mockTripRepo {
	// A repo that echoes whatever it receives back — useful for Create/Update
	// tests that only care about validation logic, not what the DB returns.
	return &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
		update: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
	}
}

// storeRepo simulates the persistence round trip for the nested mutations:
// GetByID serves the given trip, and the Replace methods write the new list
// into it before echoing the row back.
func storeRepo(trip *domain.Trip) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			if id != trip.ID {
				return domain.Trip{}, domain.ErrNotFound
			}
			return *trip, nil
		},
		replaceExpenses: func(_ context.Context, id uuid.UUID, expenses []domain.Expense) (domain.Trip, error) {
			trip.Expenses = expenses
			return *trip, nil
		},
		replaceItinerary: func(_ context.Context, id uuid.UUID, itinerary []domain.TripDay) (domain.Trip, error) {
			trip.Itinerary = itinerary
			return *trip, nil
		},
	}
}

// ---- Create / Update -------------------------------------------------------

func TestTripService_Create_Valid(t *testing.T) {
	svc := service.NewTripService(echoRepo())

	got, err := svc.Create(context.Background(), validTrip())

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", got.Destination)
}

func TestTripService_Create_Defaults(t *testing.T) {
	svc := service.NewTripService(echoRepo())

	trip := validTrip()
	trip.Status = ""
	trip.Currency = ""
	trip.Expenses = []domain.Expense{{Amount: 99}} // must be discarded

	got, err := svc.Create(context.Background(), trip)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlanning, got.Status)
	assert.Equal(t, "EUR", got.Currency)
	assert.Empty(t, got.Expenses, "new trips start with no expenses")
	assert.Empty(t, got.Itinerary, "new trips start with no itinerary")
}

func TestTripService_Create_MissingDestination(t *testing.T) {
	svc := service.NewTripService(echoRepo())

	trip := validTrip()
	trip.Destination = "   " // whitespace-only should be treated as empty

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_EndDateBeforeStartDate(t *testing.T) {
	svc := service.NewTripService(echoRepo())

	trip := validTrip()
	trip.EndDate = trip.StartDate.AddDate(0, 0, -1)

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Create_SameDayTrip(t *testing.T) {
	svc := service.NewTripService(echoRepo())

	trip := validTrip()
	trip.EndDate = trip.StartDate

	_, err := svc.Create(context.Background(), trip)

	assert.NoError(t, err)
}

func TestTripService_Create_NegativeBudget(t *testing.T) {
	svc := service.NewTripService(echoRepo())

	trip := validTrip()
	trip.Budget = -100

	_, err := svc.Create(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Update_UnknownStatus(t *testing.T) {
	svc := service.NewTripService(echoRepo())

	trip := validTrip()
	trip.Status = "cancelled"

	_, err := svc.Update(context.Background(), trip)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

// ---- GetByID / List --------------------------------------------------------

func TestTripService_GetByID_ExpandsItinerary(t *testing.T) {
	trip := validTrip() // 8 days, nothing persisted
	svc := service.NewTripService(storeRepo(&trip))

	got, err := svc.GetByID(context.Background(), trip.ID)

	require.NoError(t, err)
	require.Len(t, got.Itinerary, 8)
	assert.True(t, got.Itinerary[0].Date.Equal(trip.StartDate))
	assert.True(t, got.Itinerary[7].Date.Equal(trip.EndDate))
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	trip := validTrip()
	svc := service.NewTripService(storeRepo(&trip))

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_List_NilBecomesEmpty(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{
		list: func(context.Context) ([]domain.Trip, error) { return nil, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- Expense mutations -----------------------------------------------------

func TestTripService_AddExpense(t *testing.T) {
	trip := validTrip()
	svc := service.NewTripService(storeRepo(&trip))

	got, err := svc.AddExpense(context.Background(), trip.ID, service.ExpenseInput{
		Category:    domain.CategoryFood,
		Description: "Dinner",
		Amount:      42.50,
	})

	require.NoError(t, err)
	require.Len(t, got.Expenses, 1)
	e := got.Expenses[0]
	assert.NotEqual(t, uuid.Nil, e.ID, "expense should get a fresh ID")
	assert.Equal(t, domain.CategoryFood, e.Category)
	assert.Equal(t, 42.50, e.Amount)
	assert.Equal(t, "EUR", e.Currency, "currency should default to the trip's")
	assert.False(t, e.Date.IsZero(), "expense date should be set")
}

func TestTripService_AddExpense_TripNotFound(t *testing.T) {
	trip := validTrip()
	svc := service.NewTripService(storeRepo(&trip))

	_, err := svc.AddExpense(context.Background(), uuid.New(), service.ExpenseInput{
		Category:    domain.CategoryFood,
		Description: "Dinner",
		Amount:      10,
	})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_AddExpense_InvalidCategory(t *testing.T) {
	trip := validTrip()
	svc := service.NewTripService(storeRepo(&trip))

	_, err := svc.AddExpense(context.Background(), trip.ID, service.ExpenseInput{
		Category:    "souvenirs",
		Description: "Magnet",
		Amount:      5,
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, trip.Expenses, "nothing should be written on validation failure")
}

func TestTripService_AddExpense_WriteFails(t *testing.T) {
	trip := validTrip()
	boom := errors.New("connection reset")
	r := storeRepo(&trip)
	r.replaceExpenses = func(context.Context, uuid.UUID, []domain.Expense) (domain.Trip, error) {
		return domain.Trip{}, boom
	}
	svc := service.NewTripService(r)

	_, err := svc.AddExpense(context.Background(), trip.ID, service.ExpenseInput{
		Category:    domain.CategoryFood,
		Description: "Dinner",
		Amount:      10,
	})

	// The failure propagates and the stored trip is untouched — no phantom
	// expense survives the failed write.
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, trip.Expenses)
}

func TestTripService_RemoveExpense(t *testing.T) {
	trip := validTrip()
	target := domain.Expense{ID: uuid.New(), Category: domain.CategoryFood, Amount: 10}
	keep := domain.Expense{ID: uuid.New(), Category: domain.CategoryOther, Amount: 20}
	trip.Expenses = []domain.Expense{target, keep}
	svc := service.NewTripService(storeRepo(&trip))

	got, err := svc.RemoveExpense(context.Background(), trip.ID, target.ID)

	require.NoError(t, err)
	require.Len(t, got.Expenses, 1)
	assert.Equal(t, keep.ID, got.Expenses[0].ID)
}

func TestTripService_RemoveExpense_UnknownIDIsNoOp(t *testing.T) {
	trip := validTrip()
	trip.Expenses = []domain.Expense{{ID: uuid.New(), Category: domain.CategoryFood, Amount: 10}}
	r := storeRepo(&trip)
	writes := 0
	inner := r.replaceExpenses
	r.replaceExpenses = func(ctx context.Context, id uuid.UUID, e []domain.Expense) (domain.Trip, error) {
		writes++
		return inner(ctx, id, e)
	}
	svc := service.NewTripService(r)

	got, err := svc.RemoveExpense(context.Background(), trip.ID, uuid.New())

	require.NoError(t, err)
	assert.Len(t, got.Expenses, 1, "expense list should be unchanged")
	assert.Zero(t, writes, "no write should be issued for a no-op removal")
}

// ---- Activity mutations ----------------------------------------------------

func TestTripService_AddActivity(t *testing.T) {
	trip := validTrip() // 8-day trip, empty stored itinerary
	svc := service.NewTripService(storeRepo(&trip))

	got, err := svc.AddActivity(context.Background(), trip.ID, 2, service.ActivityInput{
		Period: domain.PeriodAfternoon,
		Title:  "Tram 28",
	})

	require.NoError(t, err)
	// The stored itinerary is the full expansion, with the activity at day 2.
	require.Len(t, got.Itinerary, 8)
	require.Len(t, got.Itinerary[2].Activities, 1)
	assert.Equal(t, "Tram 28", got.Itinerary[2].Activities[0].Title)
	assert.NotEqual(t, uuid.Nil, got.Itinerary[2].Activities[0].ID)
	assert.Empty(t, got.Itinerary[1].Activities)
}

func TestTripService_AddActivity_DayIndexOutOfRange(t *testing.T) {
	trip := validTrip() // 8 days: valid indices are 0..7
	svc := service.NewTripService(storeRepo(&trip))

	_, err := svc.AddActivity(context.Background(), trip.ID, 8, service.ActivityInput{
		Period: domain.PeriodMorning,
		Title:  "Too late",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, trip.Itinerary, "nothing should be written for an invalid index")
}

func TestTripService_AddActivity_InvalidPeriod(t *testing.T) {
	trip := validTrip()
	svc := service.NewTripService(storeRepo(&trip))

	_, err := svc.AddActivity(context.Background(), trip.ID, 0, service.ActivityInput{
		Period: "night",
		Title:  "Bar",
	})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_RemoveActivity(t *testing.T) {
	trip := validTrip()
	target := domain.DayActivity{ID: uuid.New(), Period: domain.PeriodMorning, Title: "Museum"}
	trip.Itinerary = []domain.TripDay{
		{ID: uuid.New(), Date: trip.StartDate, Activities: []domain.DayActivity{target}},
	}
	svc := service.NewTripService(storeRepo(&trip))

	got, err := svc.RemoveActivity(context.Background(), trip.ID, 0, target.ID)

	require.NoError(t, err)
	require.Len(t, got.Itinerary, 8)
	assert.Empty(t, got.Itinerary[0].Activities)
}

func TestTripService_RemoveActivity_UnknownIDIsNoOp(t *testing.T) {
	trip := validTrip()
	existing := domain.DayActivity{ID: uuid.New(), Period: domain.PeriodMorning, Title: "Museum"}
	trip.Itinerary = []domain.TripDay{
		{Activities: []domain.DayActivity{existing}},
	}
	r := storeRepo(&trip)
	writes := 0
	inner := r.replaceItinerary
	r.replaceItinerary = func(ctx context.Context, id uuid.UUID, days []domain.TripDay) (domain.Trip, error) {
		writes++
		return inner(ctx, id, days)
	}
	svc := service.NewTripService(r)

	got, err := svc.RemoveActivity(context.Background(), trip.ID, 0, uuid.New())

	require.NoError(t, err)
	require.Len(t, got.Itinerary, 8)
	assert.Len(t, got.Itinerary[0].Activities, 1)
	assert.Zero(t, writes, "no write should be issued for a no-op removal")
}

// ---- Stats -----------------------------------------------------------------

func TestTripService_Stats(t *testing.T) {
	a := validTrip()
	a.Expenses = []domain.Expense{{Category: domain.CategoryFood, Amount: 300}}
	svc := service.NewTripService(&mockTripRepo{
		list: func(context.Context) ([]domain.Trip, error) { return []domain.Trip{a}, nil },
	})

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalTrips)
	assert.Equal(t, 2500.0, stats.TotalBudget)
	assert.Equal(t, 300.0, stats.TotalExpenses)
	assert.Equal(t, 2200.0, stats.AvailableBudget)
}

func TestTripService_Stats_RepoError(t *testing.T) {
	boom := errors.New("db down")
	svc := service.NewTripService(&mockTripRepo{
		list: func(context.Context) ([]domain.Trip, error) { return nil, boom },
	})

	_, err := svc.Stats(context.Background())

	assert.ErrorIs(t, err, boom)
}
