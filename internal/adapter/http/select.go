package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"atlas-ads/internal/core/port"
)

// handleSelectAds returns ranked ads for a placement and optional user
// context. Malformed fields produce HTTP 400 with a reason; an empty
// result is a normal 200 with an empty list.
func (h *Handler) handleSelectAds(w http.ResponseWriter, r *http.Request) {
	var req port.SelectAdsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	resp, err := h.svc.SelectAds(r.Context(), req)
	if err != nil {
		h.writeError(w, "select ads", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
