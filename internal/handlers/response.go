package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"shopease/internal/models"
)

// Response is the envelope every endpoint answers with
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// respondData writes a successful envelope carrying data
func respondData(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, Response{Success: true, Message: message, Data: data})
}

// respondMessage writes a successful envelope with no data payload
func respondMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: true, Message: message})
}

func respondError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Success: false, Message: message})
}

// respondServiceError maps service-layer errors onto HTTP statuses.
// Domain errors carry their own client-facing messages; anything
// unrecognized is logged and answered with a generic 500 so internal
// details never leak.
func respondServiceError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	if validationErrs, ok := models.AsValidationErrors(err); ok {
		writeJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Message: "Validation failed",
			Errors:  validationErrs,
		})
		return
	}

	switch {
	case errors.Is(err, models.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "Item not found")
	case errors.Is(err, models.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, models.ErrInvalidID):
		respondError(w, http.StatusBadRequest, "Invalid item ID format")
	case errors.Is(err, models.ErrInsufficientStock):
		respondError(w, http.StatusBadRequest, "Item is out of stock or insufficient quantity available")
	case errors.Is(err, models.ErrEmailExists):
		respondError(w, http.StatusBadRequest, "User with this email already exists")
	case errors.Is(err, models.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, models.ErrCartConflict):
		respondError(w, http.StatusConflict, "Cart was modified concurrently, please retry")
	default:
		logger.Error().Err(err).Msg("request failed")
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// decodeJSON parses a request body into dst, rejecting unknown fields
func decodeJSON(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return models.ValidationErrors{"invalid request body"}
	}
	return nil
}
