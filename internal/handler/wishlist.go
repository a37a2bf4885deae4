package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/travel-planner/internal/domain"
)

// destinationRequest is the JSON body for POST /wishlist.
type destinationRequest struct {
	Name        string `json:"name"`
	Country     string `json:"country"`
	CountryCode string `json:"country_code"`
	ImageURL    string `json:"image_url"`
	Notes       string `json:"notes"`
}

// destinationPatch is the JSON body for PUT /wishlist/{id}. Absent fields
// keep their stored values, so clients can send only what changed.
type destinationPatch struct {
	Name        *string `json:"name"`
	Country     *string `json:"country"`
	CountryCode *string `json:"country_code"`
	ImageURL    *string `json:"image_url"`
	Notes       *string `json:"notes"`
}

type destinationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Country     string    `json:"country"`
	CountryCode string    `json:"country_code,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListWishlist handles GET /wishlist.
func (s *Server) ListWishlist(w http.ResponseWriter, r *http.Request) {
	dests, err := s.wishlist.List(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	data := make([]destinationResponse, len(dests))
	for i, d := range dests {
		data[i] = destinationToResponse(d)
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

// CreateDestination handles POST /wishlist.
func (s *Server) CreateDestination(w http.ResponseWriter, r *http.Request) {
	var body destinationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondValidation(w, unwrapMessage(err))
		return
	}

	created, err := s.wishlist.Create(r.Context(), domain.Destination{
		Name:        body.Name,
		Country:     body.Country,
		CountryCode: body.CountryCode,
		ImageURL:    body.ImageURL,
		Notes:       body.Notes,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, destinationToResponse(created))
}

// UpdateDestination handles PUT /wishlist/{id}.
// The stored record is fetched first and the patch merged over it, so a
// partial body never blanks untouched fields.
func (s *Server) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	var body destinationPatch
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondValidation(w, unwrapMessage(err))
		return
	}

	dest, err := s.wishlist.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}
	applyPatch(&dest, body)

	updated, err := s.wishlist.Update(r.Context(), dest)
	if err != nil {
		respondError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, destinationToResponse(updated))
}

// DeleteDestination handles DELETE /wishlist/{id}.
func (s *Server) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondValidation(w, err.Error())
		return
	}

	if err := s.wishlist.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func applyPatch(dest *domain.Destination, patch destinationPatch) {
	if patch.Name != nil {
		dest.Name = *patch.Name
	}
	if patch.Country != nil {
		dest.Country = *patch.Country
	}
	if patch.CountryCode != nil {
		dest.CountryCode = *patch.CountryCode
	}
	if patch.ImageURL != nil {
		dest.ImageURL = *patch.ImageURL
	}
	if patch.Notes != nil {
		dest.Notes = *patch.Notes
	}
}

func destinationToResponse(d domain.Destination) destinationResponse {
	return destinationResponse{
		ID:          d.ID,
		Name:        d.Name,
		Country:     d.Country,
		CountryCode: d.CountryCode,
		ImageURL:    d.ImageURL,
		Notes:       d.Notes,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
