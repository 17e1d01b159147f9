// internal/handler/admin.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/fieldworks/territory/internal/service"
)

// AdminHandler exposes operator-only endpoints. The backfill migrates legacy
// records without a company id into the given company; it is safe to re-run.
type AdminHandler struct {
	backfill *service.BackfillService
}

func NewAdminHandler(backfill *service.BackfillService) *AdminHandler {
	return &AdminHandler{backfill: backfill}
}

func (h *AdminHandler) BackfillHandler(w http.ResponseWriter, r *http.Request) {
	var input service.BackfillInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	result := h.backfill.Backfill(r.Context(), input)
	if !result.Success {
		slog.ErrorContext(r.Context(), "backfill failed", "message", result.Message, "updated", result.Updated)
		respondWithJSON(w, http.StatusUnprocessableEntity, result)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
