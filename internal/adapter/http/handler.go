package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"atlas-ads/internal/core/port"
)

// Handler is the inbound HTTP adapter. It holds the engine's inbound
// port and a structured logger; routes are registered on a chi.Router.
// Both endpoints serve unauthenticated traffic: ads must render and
// count for guests.
type Handler struct {
	svc    port.AdUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.AdUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ads/select", h.handleSelectAds)
		r.Post("/ads/events", h.handleLogAdEvents)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeError maps engine errors onto HTTP statuses: ClientError becomes
// 400 carrying its reason, everything else a logged 500.
func (h *Handler) writeError(w http.ResponseWriter, op string, err error) {
	var clientErr *port.ClientError
	if errors.As(err, &clientErr) {
		http.Error(w, clientErr.Reason, http.StatusBadRequest)
		return
	}
	h.logger.Error(op+" error", slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
