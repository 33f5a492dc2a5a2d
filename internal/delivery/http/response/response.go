package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"patient-service/internal/converter"
	"patient-service/internal/usecase"

	"github.com/sirupsen/logrus"
)

// ErrorResponse is the stable error body contract.
type ErrorResponse struct {
	Timestamp time.Time         `json:"timestamp"`
	Status    int               `json:"status"`
	Error     string            `json:"error"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	logrus.Warnf("Request failed: %d %s", statusCode, message)
	writeError(w, statusCode, message, nil)
}

func ValidationFailed(w http.ResponseWriter, details map[string]string) {
	logrus.Warnf("Validation error: %v", details)
	writeError(w, http.StatusBadRequest, "Validation failed", details)
}

// FromError translates a usecase error into the wire response. This is the
// only place service errors are mapped to HTTP statuses.
func FromError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, usecase.ErrPatientNotFound):
		logrus.Warnf("Patient not found: %v", err)
		writeError(w, http.StatusNotFound, "Patient not found", nil)
	case errors.Is(err, usecase.ErrEmailExists):
		logrus.Warnf("Email already exists: %v", err)
		writeError(w, http.StatusConflict, "Email address already exists", nil)
	case errors.Is(err, converter.ErrInvalidDate):
		logrus.Warnf("Date parsing error: %v", err)
		writeError(w, http.StatusBadRequest, "Invalid date format. Dates must be in yyyy-MM-dd format", nil)
	default:
		// Full cause stays server-side
		logrus.WithError(err).Error("Unhandled error")
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string, details map[string]string) {
	JSON(w, statusCode, ErrorResponse{
		Timestamp: time.Now().UTC(),
		Status:    statusCode,
		Error:     http.StatusText(statusCode),
		Message:   message,
		Details:   details,
	})
}
