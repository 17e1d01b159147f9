// internal/handler/call_note.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fieldworks/territory/internal/service"
)

type CallNoteHandler struct {
	notes *service.CallNoteService
}

func NewCallNoteHandler(notes *service.CallNoteService) *CallNoteHandler {
	return &CallNoteHandler{notes: notes}
}

func (h *CallNoteHandler) CreateHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyFromRequest(w, r)
	if !ok {
		return
	}

	var input service.CallNoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	note, err := h.notes.Create(r.Context(), companyID, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, note)
}

func (h *CallNoteHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	note, err := h.notes.Get(r.Context(), companyID, id)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, note)
}

func (h *CallNoteHandler) ListByAccountHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyFromRequest(w, r)
	if !ok {
		return
	}
	accountID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	notes, err := h.notes.ListByAccount(r.Context(), companyID, accountID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, notes)
}

func (h *CallNoteHandler) UpdateHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	var input service.CallNoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	note, err := h.notes.Update(r.Context(), companyID, id, input)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, note)
}

func (h *CallNoteHandler) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	companyID, ok := companyFromRequest(w, r)
	if !ok {
		return
	}
	id, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.notes.Delete(r.Context(), companyID, id); err != nil {
		respondWithDomainError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
