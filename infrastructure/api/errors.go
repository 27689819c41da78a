package api

import (
	"encoding/json"
	"net/http"

	"message-board/errors"
)

// errorResponse is the stable error shape sent to external callers.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFromCategory maps each failure category 1:1 to an HTTP status.
func statusFromCategory(category errors.StatusCategory) int {
	switch category {
	case errors.StatusNotFound:
		return http.StatusNotFound
	case errors.StatusConflict:
		return http.StatusConflict
	case errors.StatusBadRequest:
		return http.StatusBadRequest
	case errors.StatusUnauthorized:
		return http.StatusUnauthorized
	case errors.StatusForbidden:
		return http.StatusForbidden
	case errors.StatusTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// respondError translates a failure into its transport status. Domain
// messages are safe to expose; unclassified failures are logged and
// degraded to a generic body so internals never leak.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	category := errors.Category(err)
	status := statusFromCategory(category)
	if status == http.StatusInternalServerError {
		s.log.Error("unclassified failure", "error", err)
		respondJSON(w, status, errorResponse{Code: string(errors.StatusInternal), Message: "internal server error"})
		return
	}
	respondJSON(w, status, errorResponse{Code: string(category), Message: err.Error()})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
