package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/yusufkecer/vitalia-backend/internal/logging"
)

type statusResponse struct {
	Status string `json:"status"`
}

// ProfileHandler acknowledges submitted profiles. Persistence is not wired
// yet: the body is checked for JSON syntax only and nothing is stored.
type ProfileHandler struct {
	log logging.Logger
}

func NewProfileHandler(log logging.Logger) *ProfileHandler {
	return &ProfileHandler{log: log}
}

func (h *ProfileHandler) Save(w http.ResponseWriter, r *http.Request) {
	log := logging.FromContext(r.Context(), h.log)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if !json.Valid(body) {
		log.Debug(r.Context(), "rejected profile payload", "reason", "malformed json", "bytes", len(body))
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	log.Debug(r.Context(), "profile received", "bytes", len(body))
	writeJSON(w, http.StatusOK, statusResponse{Status: "success"})
}
