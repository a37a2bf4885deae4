package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/travel-planner/internal/domain"
	"github.com/pkordes/travel-planner/internal/service"
)

// activityRequest is the JSON body for POST /trips/{id}/days/{dayIndex}/activities.
type activityRequest struct {
	Period      domain.Period `json:"period"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Location    string        `json:"location"`
	Time        string        `json:"time"`
}

// AddActivity handles POST /trips/{id}/days/{dayIndex}/activities.
// dayIndex addresses the expanded itinerary positionally, 0-based from the
// trip's start date; an out-of-range index is a validation error.
func (s *Server) AddActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "id")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}
	dayIndex, err := dayIndexParam(r)
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	var body activityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondValidation(w, unwrapMessage(err))
		return
	}

	trip, err := s.trips.AddActivity(r.Context(), tripID, dayIndex, service.ActivityInput{
		Period:      body.Period,
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		Time:        body.Time,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tripToDetail(trip))
}

// RemoveActivity handles DELETE /trips/{id}/days/{dayIndex}/activities/{activityId}.
// An unknown activity ID within a valid day is a success (idempotent delete);
// an out-of-range dayIndex is a validation error.
func (s *Server) RemoveActivity(w http.ResponseWriter, r *http.Request) {
	tripID, err := uuidParam(r, "id")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}
	dayIndex, err := dayIndexParam(r)
	if err != nil {
		respondValidation(w, err.Error())
		return
	}
	activityID, err := uuidParam(r, "activityId")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	trip, err := s.trips.RemoveActivity(r.Context(), tripID, dayIndex, activityID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tripToDetail(trip))
}

// dayIndexParam parses the {dayIndex} path parameter as a non-negative int.
// Range checking against the trip's day count happens in the service.
func dayIndexParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "dayIndex")
	i, err := strconv.Atoi(raw)
	if err != nil || i < 0 {
		return 0, errors.New("invalid day index")
	}
	return i, nil
}
