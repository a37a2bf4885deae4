package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/service"
)

// expenseRequest is the JSON body for POST /trips/{id}/expenses.
// The expense ID and date are assigned server-side; currency falls back to
// the trip's currency when omitted.
type expenseRequest struct {
	Category    domain.ExpenseCategory `json:"category"`
	Description string                 `json:"description"`
	Amount      float64                `json:"amount"`
	Currency    string                 `json:"currency"`
}

// AddExpense handles POST /trips/{id}/expenses.
// Responds with the full trip detail so the client sees the confirmed
// post-write state, never an optimistic local one.
func (s *Server) AddExpense(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "id")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	var body expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondValidation(w, unwrapMessage(err))
		return
	}

	trip, err := s.trips.AddExpense(r.Context(), tripID, service.ExpenseInput{
		Category:    body.Category,
		Description: body.Description,
		Amount:      body.Amount,
		Currency:    body.Currency,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToDetail(trip))
}

// RemoveExpense handles DELETE /trips/{id}/expenses/{expenseId}.
// Removing an expense that does not exist is a success (idempotent delete).
func (s *Server) RemoveExpense(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "id")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}
	expenseID, err := uuidParam(r, "expenseId")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	trip, err := s.trips.RemoveExpense(r.Context(), tripID, expenseID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToDetail(trip))
}
