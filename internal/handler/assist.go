// internal/handler/assist.go
package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/fieldworks/territory/internal/assist"
	"github.com/fieldworks/territory/internal/service"
)

// AssistHandler serves the AI-backed helper endpoints. Account data is
// loaded tenant-scoped first, so the model only ever sees the caller's own
// records.
type AssistHandler struct {
	assist   *assist.Service
	accounts *service.AccountService
	notes    *service.CallNoteService
}

func NewAssistHandler(assistService *assist.Service, accounts *service.AccountService, notes *service.CallNoteService) *AssistHandler {
	return &AssistHandler{
		assist:   assistService,
		accounts: accounts,
		notes:    notes,
	}
}

func (h *AssistHandler) SummarizeAccountHandler(w http.ResponseWriter, r *http.Request) {
	if h.assist == nil {
		respondWithError(w, http.StatusServiceUnavailable, "AI assist is not configured")
		return
	}

	companyID, ok := companyFromRequest(w, r)
	if !ok {
		return
	}
	accountID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	account, err := h.accounts.Get(r.Context(), companyID, accountID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	callNotes, err := h.notes.ListByAccount(r.Context(), companyID, accountID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	noteTexts := make([]string, 0, len(callNotes))
	for _, n := range callNotes {
		noteTexts = append(noteTexts, n.Note)
	}

	summary, err := h.assist.SummarizeAccount(r.Context(), assist.SummarizeInput{
		AccountName: account.Name,
		Notes:       noteTexts,
	})
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Summarization failed")
		return
	}

	respondWithJSON(w, http.StatusOK, summary)
}

func (h *AssistHandler) SuggestActionsHandler(w http.ResponseWriter, r *http.Request) {
	if h.assist == nil {
		respondWithError(w, http.StatusServiceUnavailable, "AI assist is not configured")
		return
	}

	companyID, ok := companyFromRequest(w, r)
	if !ok {
		return
	}
	accountID, ok := uuidParam(w, r, "id")
	if !ok {
		return
	}

	account, err := h.accounts.Get(r.Context(), companyID, accountID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	callNotes, err := h.notes.ListByAccount(r.Context(), companyID, accountID)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}

	// Notes come back newest first; keep the five most recent.
	const maxRecentNotes = 5
	recent := make([]string, 0, maxRecentNotes)
	for _, n := range callNotes {
		if len(recent) == maxRecentNotes {
			break
		}
		recent = append(recent, n.Note)
	}

	suggestions, err := h.assist.SuggestActions(r.Context(), assist.SuggestInput{
		AccountName: account.Name,
		Status:      string(account.Status),
		RecentNotes: recent,
	})
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Suggestion failed")
		return
	}

	respondWithJSON(w, http.StatusOK, suggestions)
}

// maxDictationBytes caps a dictated voice memo at 10MB.
const maxDictationBytes = 10 << 20

// TranscribeHandler accepts raw audio in the request body and returns the
// transcribed call-note text. The Content-Type header names the audio format.
func (h *AssistHandler) TranscribeHandler(w http.ResponseWriter, r *http.Request) {
	if h.assist == nil {
		respondWithError(w, http.StatusServiceUnavailable, "AI assist is not configured")
		return
	}

	mimeType := r.Header.Get("Content-Type")
	if mimeType == "" {
		respondWithError(w, http.StatusBadRequest, "Content-Type header is required")
		return
	}

	audio, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDictationBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			respondWithError(w, http.StatusRequestEntityTooLarge, "Audio exceeds the size limit")
			return
		}
		respondWithError(w, http.StatusBadRequest, "Failed to read audio")
		return
	}
	if len(audio) == 0 {
		respondWithError(w, http.StatusBadRequest, "Request body is empty")
		return
	}

	transcript, err := h.assist.TranscribeCallNote(r.Context(), assist.TranscribeInput{
		Audio:    audio,
		MIMEType: mimeType,
	})
	if err != nil {
		respondWithError(w, http.StatusBadGateway, "Transcription failed")
		return
	}

	respondWithJSON(w, http.StatusOK, transcript)
}
