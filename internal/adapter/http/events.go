package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"atlas-ads/internal/core/port"
)

// handleLogAdEvents ingests a batch of ad events. Data-quality problems
// never fail the request; the response always carries disposition
// counts. Only request-shape violations (bad JSON, events not an array,
// over-limit batch) produce HTTP 400.
func (h *Handler) handleLogAdEvents(w http.ResponseWriter, r *http.Request) {
	var req port.LogEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.LogAdEvents(r.Context(), req)
	if err != nil {
		h.writeError(w, "log ad events", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
