package api

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("write response", slog.Any("err", err))
	}
}

// serviceUnavailable converts an infrastructure failure into the generic
// response the boundary owes the client; the cause is already logged by the
// core.
func serviceUnavailable(w http.ResponseWriter) {
	http.Error(w, "Service unavailable", http.StatusServiceUnavailable)
}
