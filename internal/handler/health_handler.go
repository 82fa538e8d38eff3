package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/yusufkecer/vitalia-backend/internal/logging"
)

const healthTimeout = 2 * time.Second

type profileStore interface {
	Ping(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type healthResponse struct {
	Status   string `json:"status"`
	Profiles *int64 `json:"profiles,omitempty"`
}

type HealthHandler struct {
	store profileStore
	log   logging.Logger
}

func NewHealthHandler(store profileStore, log logging.Logger) *HealthHandler {
	return &HealthHandler{store: store, log: log}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	log := logging.FromContext(r.Context(), h.log)

	if err := h.store.Ping(ctx); err != nil {
		log.Warn(ctx, "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	n, err := h.store.Count(ctx)
	if err != nil {
		log.Warn(ctx, "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
		return
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Profiles: &n})
}
