package handler

import (
	"net/http"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/service"
)

// statsResponse is the wire form of the dashboard trip summary.
type statsResponse struct {
	TotalTrips      int                  `json:"total_trips"`
	TotalBudget     float64              `json:"total_budget"`
	TotalExpenses   float64              `json:"total_expenses"`
	AvailableBudget float64              `json:"available_budget"`
	UpcomingTrips   int                  `json:"upcoming_trips"`
	TripsByStatus   statusCountsResponse `json:"trips_by_status"`
}

type statusCountsResponse struct {
	Planning  int `json:"planning"`
	Booked    int `json:"booked"`
	Completed int `json:"completed"`
}

// expenseStatsResponse is the wire form of the per-category breakdown,
// ordered by first occurrence across the stored trips.
type expenseStatsResponse struct {
	Categories []categoryTotalResponse `json:"categories"`
	Total      float64                 `json:"total"`
}

type categoryTotalResponse struct {
	Category domain.ExpenseCategory `json:"category"`
	Amount   float64                `json:"amount"`
}

// GetStats handles GET /stats.
func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.trips.Stats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, statsResponse{
		TotalTrips:      stats.TotalTrips,
		TotalBudget:     stats.TotalBudget,
		TotalExpenses:   stats.TotalExpenses,
		AvailableBudget: stats.AvailableBudget,
		UpcomingTrips:   stats.UpcomingTrips,
		TripsByStatus: statusCountsResponse{
			Planning:  stats.ByStatus.Planning,
			Booked:    stats.ByStatus.Booked,
			Completed: stats.ByStatus.Completed,
		},
	})
}

// GetExpenseStats handles GET /stats/expenses.
func (s *Server) GetExpenseStats(w http.ResponseWriter, r *http.Request) {
	breakdown, err := s.trips.ExpenseStats(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, breakdownToResponse(breakdown))
}

func breakdownToResponse(b service.ExpenseBreakdown) expenseStatsResponse {
	resp := expenseStatsResponse{
		Categories: make([]categoryTotalResponse, len(b.Categories)),
		Total:      b.Total,
	}
	for i, c := range b.Categories {
		resp.Categories[i] = categoryTotalResponse{Category: c.Category, Amount: c.Amount}
	}
	return resp
}
