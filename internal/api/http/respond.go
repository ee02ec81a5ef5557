package http

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"strings"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

// FieldError is one entry of a 400 validation response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			logger.Error("Failed to encode response", "error", err)
		}
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeValidationErrors(w http.ResponseWriter, fields []FieldError) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields})
}

// businessErrors map to 400 with their own message.
var businessErrors = []error{
	domain.ErrVehicleUnavailable,
	domain.ErrVehicleNotAtPickup,
	domain.ErrNotEligible,
	domain.ErrInvalidTransition,
	domain.ErrRentalCompleted,
	domain.ErrBusinessRule,
}

// respondError maps service errors onto the HTTP taxonomy: 404 for missing
// entities, 400 for business-rule rejections, 403 for permission failures and
// 500 (with an action-log entry) for everything else.
func (a *auditor) respondError(w http.ResponseWriter, r *http.Request, action string, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if errors.Is(err, domain.ErrForbidden) {
		writeError(w, http.StatusForbidden, err.Error())
		return
	}
	for _, be := range businessErrors {
		if errors.Is(err, be) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	a.logFailure(r, action, err)
	writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.Split(fwd, ",")[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
