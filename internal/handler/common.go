// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fieldworks/territory/internal/domain"
	"github.com/fieldworks/territory/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	BaseResponse
	Error string `json:"error"`
}

type BaseResponse struct {
	Ok bool `json:"ok"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// companyFromRequest pulls the caller's company id out of the request
// context. The auth middleware guarantees it for protected routes.
func companyFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	companyID, ok := middleware.CompanyIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusForbidden, "No company in request context")
		return uuid.Nil, false
	}
	return companyID, true
}

func uuidParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

var notFoundErrors = []error{
	domain.ErrNotFound,
	domain.ErrAccountNotFound,
	domain.ErrContactNotFound,
	domain.ErrProductNotFound,
	domain.ErrCallNoteNotFound,
	domain.ErrShippingLocationNotFound,
	domain.ErrCompanyNotFound,
	domain.ErrProfileNotFound,
}

// respondWithDomainError maps service errors onto HTTP status codes.
func respondWithDomainError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			respondWithError(w, http.StatusNotFound, err.Error())
			return
		}
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		respondWithError(w, http.StatusForbidden, err.Error())
		return
	}
	respondWithError(w, http.StatusInternalServerError, "Internal server error")
}
