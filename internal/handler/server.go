// Package handler implements the HTTP handlers for the travel planner API.
// All handlers are methods on Server. Methods are split into resource files
// (trip.go, expense.go, activity.go, wishlist.go, stats.go) but all share
// the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	List(ctx context.Context) ([]domain.Trip, error)
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Stats(ctx context.Context) (service.TripStats, error)
	ExpenseStats(ctx context.Context) (service.ExpenseBreakdown, error)

	AddExpense(ctx context.Context, tripID uuid.UUID, in service.ExpenseInput) (domain.Trip, error)
	RemoveExpense(ctx context.Context, tripID, expenseID uuid.UUID) (domain.Trip, error)
	AddActivity(ctx context.Context, tripID uuid.UUID, dayIndex int, in service.ActivityInput) (domain.Trip, error)
	RemoveActivity(ctx context.Context, tripID uuid.UUID, dayIndex int, activityID uuid.UUID) (domain.Trip, error)
}

// WishlistServicer defines the business operations the wishlist handlers
// depend on.
type WishlistServicer interface {
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error)
	List(ctx context.Context) ([]domain.Destination, error)
	Update(ctx context.Context, dest domain.Destination) (domain.Destination, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Server holds the dependencies shared by all HTTP handlers.
type Server struct {
	trips    TripServicer
	wishlist WishlistServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, wishlist WishlistServicer) *Server {
	return &Server{trips: trips, wishlist: wishlist}
}

// Register mounts every API route on the provided router.
func (s *Server) Register(r chi.Router) {
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get("/stats", s.GetStats)
	r.Get("/stats/expenses", s.GetExpenseStats)

	r.Route("/trips", func(r chi.Router) {
		r.Get("/", s.ListTrips)
		r.Post("/", s.CreateTrip)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)

			r.Post("/expenses", s.AddExpense)
			r.Delete("/expenses/{expenseId}", s.RemoveExpense)

			r.Post("/days/{dayIndex}/activities", s.AddActivity)
			r.Delete("/days/{dayIndex}/activities/{activityId}", s.RemoveActivity)
		})
	})

	r.Route("/wishlist", func(r chi.Router) {
		r.Get("/", s.ListWishlist)
		r.Post("/", s.CreateDestination)
		r.Put("/{id}", s.UpdateDestination)
		r.Delete("/{id}", s.DeleteDestination)
	})
}
