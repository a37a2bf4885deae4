package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/travel-planner/internal/domain"
)

// tripRequest is the JSON body for both POST /trips and PUT /trips/{id}.
// Date fields use the date-only "2006-01-02" wire format; status and the
// nested enums reject unknown values during decoding.
type tripRequest struct {
	Destination string             `json:"destination"`
	Country     string             `json:"country"`
	CountryCode string             `json:"country_code"`
	StartDate   openapi_types.Date `json:"start_date"`
	EndDate     openapi_types.Date `json:"end_date"`
	Status      domain.TripStatus  `json:"status"`
	Budget      float64            `json:"budget"`
	Currency    string             `json:"currency"`
	Notes       string             `json:"notes"`
}

// tripSummary is the list/summary wire form of a trip: scalar fields plus
// derived totals, without the nested expense and itinerary lists.
type tripSummary struct {
	ID            uuid.UUID          `json:"id"`
	Destination   string             `json:"destination"`
	Country       string             `json:"country"`
	CountryCode   string             `json:"country_code,omitempty"`
	StartDate     openapi_types.Date `json:"start_date"`
	EndDate       openapi_types.Date `json:"end_date"`
	Status        domain.TripStatus  `json:"status"`
	Budget        float64            `json:"budget"`
	Currency      string             `json:"currency"`
	Notes         string             `json:"notes,omitempty"`
	TotalExpenses float64            `json:"total_expenses"`
	Remaining     float64            `json:"remaining"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// tripDetail is the full wire form returned by GET /trips/{id} and by the
// nested mutation endpoints: the summary plus expenses and the expanded
// itinerary.
type tripDetail struct {
	tripSummary
	Expenses  []expenseResponse `json:"expenses"`
	Itinerary []dayResponse     `json:"itinerary"`
}

type expenseResponse struct {
	ID          uuid.UUID              `json:"id"`
	Category    domain.ExpenseCategory `json:"category"`
	Description string                 `json:"description"`
	Amount      float64                `json:"amount"`
	Currency    string                 `json:"currency"`
	Date        time.Time              `json:"date"`
}

type dayResponse struct {
	ID         uuid.UUID          `json:"id"`
	Date       openapi_types.Date `json:"date"`
	Activities []activityResponse `json:"activities"`
}

type activityResponse struct {
	ID          uuid.UUID     `json:"id"`
	Period      domain.Period `json:"period"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Location    string        `json:"location,omitempty"`
	Time        string        `json:"time,omitempty"`
}

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondValidation(w, unwrapMessage(err))
		return
	}

	created, err := s.trips.Create(r.Context(), requestToTrip(uuid.Nil, body))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToDetail(created))
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	data := make([]tripSummary, len(trips))
	for i, t := range trips {
		data[i] = tripToSummary(t)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// GetTrip handles GET /trips/{id}.
// The response carries the itinerary expanded to one entry per calendar day.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToDetail(trip))
}

// UpdateTrip handles PUT /trips/{id}. Only scalar fields are updated;
// expenses and itinerary change through their own endpoints.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondValidation(w, unwrapMessage(err))
		return
	}

	updated, err := s.trips.Update(r.Context(), requestToTrip(id, body))
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToSummary(updated))
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a tripRequest body into a domain.Trip.
// The zero UUID is used for creates; updates carry the path ID.
func requestToTrip(id uuid.UUID, body tripRequest) domain.Trip {
	return domain.Trip{
		ID:          id,
		Destination: body.Destination,
		Country:     body.Country,
		CountryCode: body.CountryCode,
		StartDate:   body.StartDate.Time,
		EndDate:     body.EndDate.Time,
		Status:      body.Status,
		Budget:      body.Budget,
		Currency:    body.Currency,
		Notes:       body.Notes,
	}
}

func tripToSummary(t domain.Trip) tripSummary {
	return tripSummary{
		ID:            t.ID,
		Destination:   t.Destination,
		Country:       t.Country,
		CountryCode:   t.CountryCode,
		StartDate:     openapi_types.Date{Time: t.StartDate},
		EndDate:       openapi_types.Date{Time: t.EndDate},
		Status:        t.Status,
		Budget:        t.Budget,
		Currency:      t.Currency,
		Notes:         t.Notes,
		TotalExpenses: t.TotalExpenses(),
		Remaining:     t.Remaining(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

func tripToDetail(t domain.Trip) tripDetail {
	d := tripDetail{
		tripSummary: tripToSummary(t),
		Expenses:    make([]expenseResponse, len(t.Expenses)),
		Itinerary:   make([]dayResponse, len(t.Itinerary)),
	}
	for i, e := range t.Expenses {
		d.Expenses[i] = expenseResponse(e)
	}
	for i, day := range t.Itinerary {
		dr := dayResponse{
			ID:         day.ID,
			Date:       openapi_types.Date{Time: day.Date},
			Activities: make([]activityResponse, len(day.Activities)),
		}
		for j, a := range day.Activities {
			dr.Activities[j] = activityResponse(a)
		}
		d.Itinerary[i] = dr
	}
	return d
}

// uuidParam parses a UUID path parameter, returning a caller-facing error
// naming the parameter on failure.
func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
