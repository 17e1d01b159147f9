// internal/handler/shipping_location.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fieldworks/territory/internal/service"
)

type ShippingLocationHandler struct {
	locations *service.ShippingLocationService
}

func NewShippingLocationHandler(locations *service.ShippingLocationService) *ShippingLocationHandler {
	return &ShippingLocationHandler{locations: locations}
}

func (h *ShippingLocationHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyFromRequest(w, r)
	if !ok {
		return
	}

	var input service.ShippingLocationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	location, err := h.locations.Create(r.Context(), companyID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, location)
}

func (h *ShippingLocationHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	location, err := h.locations.Get(r.Context(), companyID, id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, location)
}

func (h *ShippingLocationHandler) ListByAccountHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyFromRequest(w, r)
	if !ok {
		return
	}
	accountID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	locations, err := h.locations.ListByAccount(r.Context(), companyID, accountID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, locations)
}

func (h *ShippingLocationHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.locations.Delete(r.Context(), companyID, id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
