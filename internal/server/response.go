package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/cpusched/schedsim/sim"
)

// requestID generates a unique request identifier.
func requestID() string {
	return "req_" + uuid.New().String()[:8]
}

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, r *http.Request, status int, err error) {
	respondJSON(w, status, errorResponse{Error: err.Error(), RequestID: RequestIDFromContext(r.Context())})
}

// statusFor maps engine errors to HTTP status codes: bad input is the
// client's fault, an incomplete schedule is ours.
func statusFor(err error) int {
	switch {
	case errors.Is(err, sim.ErrInvalidConfig), errors.Is(err, sim.ErrInvalidProcessSet):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
