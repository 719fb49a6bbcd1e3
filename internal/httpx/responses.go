package httpx

import (
	"encoding/json"
	"net/http"

	"bookagent/internal/logger"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON writes v with the given status.
func JSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.For(r.Context()).WithError(err).Warn("encode response")
	}
}

// JSONError writes {"error": message}.
func JSONError(w http.ResponseWriter, r *http.Request, status int, message string) {
	JSON(w, r, status, ErrorResponse{Error: message})
}
